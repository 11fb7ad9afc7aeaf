package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/abhisek/edulanding/internal/checklist"
	"github.com/abhisek/edulanding/internal/curriculum"
	"github.com/abhisek/edulanding/internal/session"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Print the pre-launch checklist, or walk through it interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		interactive, _ := cmd.Flags().GetBool("interactive")

		cat, err := curriculum.Default()
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}
		sess := session.New(cat, nil)

		if interactive {
			if !isTerminal(os.Stdin) {
				return errNotTerminal
			}
			selected, err := askChecklist(sess.ByCategory())
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("checklist form: %w", err)
			}
			applySelections(sess, selected)
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), checklistReport(sess))
		}
		printChecklist(cmd.OutOrStdout(), sess)
		return nil
	},
}

func init() {
	checklistCmd.Flags().Bool("json", false, "Emit JSON")
	checklistCmd.Flags().BoolP("interactive", "i", false, "Tick items in a form and report completion")
}

// askChecklist shows one multi-select per category and returns the ticked
// item ids.
func askChecklist(groups []checklist.Group) ([]string, error) {
	picks := make([][]string, len(groups))
	fields := make([]*huh.Group, 0, len(groups))
	for i, g := range groups {
		opts := make([]huh.Option[string], 0, len(g.Items))
		for _, it := range g.Items {
			opts = append(opts, huh.NewOption(it.Text, it.ID))
		}
		fields = append(fields, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(g.Category).
				Description("space to tick, enter to continue").
				Options(opts...).
				Value(&picks[i]),
		))
	}

	form := huh.NewForm(fields...).WithTheme(huh.ThemeBase()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, err
	}

	var out []string
	for _, p := range picks {
		out = append(out, p...)
	}
	return out, nil
}

// applySelections ticks each id once. Unknown ids are skipped by the session.
func applySelections(sess *session.Session, ids []string) {
	for _, id := range ids {
		if !sess.Checked(id) {
			sess.Toggle(id)
		}
	}
}

type checklistItemJSON struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
	Checked  bool   `json:"checked"`
}

type checklistJSON struct {
	Percent  int                 `json:"percent"`
	Checked  int                 `json:"checked"`
	Total    int                 `json:"total"`
	Items    []checklistItemJSON `json:"items"`
	Template string              `json:"template"`
}

func checklistReport(sess *session.Session) checklistJSON {
	items := sess.ChecklistItems()
	out := checklistJSON{
		Percent:  sess.CompletionPercent(),
		Checked:  sess.CheckedCount(),
		Total:    len(items),
		Items:    make([]checklistItemJSON, 0, len(items)),
		Template: sess.Catalog().ChecklistTemplate(),
	}
	for _, it := range items {
		out.Items = append(out.Items, checklistItemJSON{
			ID:       it.ID,
			Category: it.Category,
			Text:     it.Text,
			Checked:  sess.Checked(it.ID),
		})
	}
	return out
}

func printChecklist(w io.Writer, sess *session.Session) {
	for i, g := range sess.ByCategory() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.Category)
		for _, it := range g.Items {
			box := "[ ]"
			if sess.Checked(it.ID) {
				box = "[x]"
			}
			fmt.Fprintf(w, "  %s %-3s %s\n", box, it.ID, it.Text)
		}
	}
	fmt.Fprintf(w, "\n%d/%d checked (%d%%)\n", sess.CheckedCount(), len(sess.ChecklistItems()), sess.CompletionPercent())
}
