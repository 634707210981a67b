package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargeplan/config"
	"github.com/kilianp07/chargeplan/core/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Print the input profiles the planner would use as CSV",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if path := cfg.Profiles.CSVPath; path != "" {
		series, err := profile.ReadCSVFile(path)
		if err != nil {
			return fmt.Errorf("read profiles: %w", err)
		}
		return profile.WriteCSV(cmd.OutOrStdout(), series)
	}

	gen := profile.NewGenerator(cfg.Profiles)
	series := gen.Series(cfg.Planner.HorizonSteps, cfg.Planner.StepHours)
	return profile.WriteCSV(cmd.OutOrStdout(), series)
}
