package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/edulanding/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "edulanding",
	Short: "Landing page masterclass for educators",
	Long: "EduLanding: a terminal course on building high-converting landing pages " +
		"for education products, with a pre-launch checklist.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides "+config.EnvConfigPath+" env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file chosen by --config (highest priority),
// then the EDULANDING_CONFIG env var, then the default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flagValue, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFrom(config.ResolvePath(flagValue))
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
