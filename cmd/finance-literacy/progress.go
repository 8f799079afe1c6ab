package main

import (
	"github.com/iwvelando/finance-literacy/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, closer, err := openStore(cmd.Context(), conf.Storage)
		if err != nil {
			return err
		}
		defer closeStore(closer)

		current := progress.NewTracker(store, logger).Load(cmd.Context())
		r, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.Progress(current)
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
