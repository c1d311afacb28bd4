package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	resetConfirm string
	resetTimeout int
)

func init() {
	rootCmd.AddCommand(cmdReset)
	cmdReset.Flags().StringVar(&resetConfirm, "confirm", "", `Type "RESET" to acknowledge registry wipe`)
	cmdReset.Flags().IntVar(&resetTimeout, "timeout", 5, "Timeout in seconds for reset RPC")
}

var cmdReset = &cobra.Command{
	Use:   "reset",
	Short: "Forget every tracked process and reset IDs",
	Long:  "Removes every tracked process, clears indexes and resets ID counters. Processes keep running. Requires --confirm RESET.",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(resetTimeout)
		if err != nil {
			return err
		}
		removed, err := controller().Reset(cmd.Context(), app.ResetParams{
			Timeout:   timeout,
			Confirmed: strings.TrimSpace(resetConfirm) == "RESET",
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registry cleared (%d entries removed) and IDs reset\n", removed)
		return nil
	},
}
