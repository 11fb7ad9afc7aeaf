package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/navigation"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List course sections in reading order",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		outline, _ := cmd.Flags().GetBool("outline")

		cat, err := curriculum.Default()
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}

		rows := sectionRows(cat, outline)
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		printSections(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	sectionsCmd.Flags().Bool("json", false, "Emit JSON")
	sectionsCmd.Flags().Bool("outline", false, "Include each section's heading outline")
}

type sectionRow struct {
	Index    int                  `json:"index"`
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Progress float64              `json:"progress_percent"`
	Charts   int                  `json:"charts,omitempty"`
	Outline  []curriculum.Heading `json:"outline,omitempty"`
}

func sectionRows(cat *curriculum.Catalog, withOutline bool) []sectionRow {
	secs := cat.Sections()
	rows := make([]sectionRow, 0, len(secs))
	for i, sec := range secs {
		row := sectionRow{
			Index:    i + 1,
			ID:       string(sec.ID),
			Title:    sec.Title,
			Progress: navigation.ProgressAt(i, len(secs)),
			Charts:   len(sec.Charts),
		}
		if withOutline {
			row.Outline = curriculum.Outline(sec)
		}
		rows = append(rows, row)
	}
	return rows
}

func printSections(w io.Writer, rows []sectionRow) {
	fmt.Fprintf(w, "%3s  %-10s  %6s  %s\n", "#", "ID", "Prog.", "Title")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, r := range rows {
		fmt.Fprintf(w, "%3d  %-10s  %5.0f%%  %s\n", r.Index, r.ID, r.Progress, r.Title)
		for _, h := range r.Outline {
			if h.Level < 2 {
				continue
			}
			fmt.Fprintf(w, "%25s%s- %s\n", "", strings.Repeat("  ", h.Level-2), h.Text)
		}
	}
	fmt.Fprintf(w, "\n%d sections\n", len(rows))
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
