package main

import (
	"github.com/iwvelando/finance-literacy/pkg/tips"
	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show financial tips",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.Tips(tips.All())
	},
}

func init() {
	rootCmd.AddCommand(tipsCmd)
}
