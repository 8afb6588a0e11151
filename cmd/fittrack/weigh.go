package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/fittrack/internal/domain"
)

func NewWeighCommand() *cobra.Command {
	var (
		unitFlag string
		skip     bool
	)

	cmd := &cobra.Command{
		Use:   "weigh VALUE",
		Short: "Log today's weight",
		Long: `Log a weight for the day. VALUE must be a number greater than 0.

Use --skip to dismiss the day's check-in without logging anything.`,
		Example: `  fittrack weigh 72.5
  fittrack weigh 160 --unit lbs
  fittrack weigh --skip`,
		Args: func(cmd *cobra.Command, args []string) error {
			if skip {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if skip {
				if err := a.tracker.SkipCheckIn(ctx, a.day); err != nil {
					return err
				}
				fmt.Fprintf(out, "Skipped check-in for %s\n", a.day)
				return nil
			}

			unit := domain.WeightUnit(a.cfg.CheckIn.DefaultUnit)
			if unitFlag != "" {
				parsed, ok := domain.ParseWeightUnit(unitFlag)
				if !ok {
					return fmt.Errorf("unit %q: %w", unitFlag, domain.ErrInvalidUnit)
				}
				unit = parsed
			}

			entry, err := a.tracker.LogWeightText(ctx, a.day, args[0], unit)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Logged %g %s for %s\n", entry.Value, entry.Unit, entry.Day)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitFlag, "unit", "u", "", "unit, kg or lbs (default from config)")
	cmd.Flags().BoolVar(&skip, "skip", false, "skip today's check-in")
	return cmd
}

func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged weights, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.tracker.WeightHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No weights logged yet")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %g %s\n", e.Day, e.Value, e.Unit)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 14, "how many entries to show")
	return cmd
}
