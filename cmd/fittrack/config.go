package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/fittrack/internal/adapter"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write the default config to ~/.config/fittrack/config.yaml",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := adapter.SaveConfig(adapter.DefaultConfig()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote default config")
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Load and validate the config",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := adapter.LoadConfig(configPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Config OK: %d exercises, %d meals, %d cards per page\n",
					len(cfg.Plan.Exercises), len(cfg.Plan.Meals), cfg.Pagination.PerPage)
				return nil
			},
		},
	)

	return cmd
}
