package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	rmSel     selectorFlags
	rmAll     bool
	rmDead    bool
	rmTimeout int
)

func init() {
	rootCmd.AddCommand(cmdRm)
	rmSel.bind(cmdRm)
	cmdRm.Flags().BoolVar(&rmAll, "all", false, "Remove every process that matches the selector")
	cmdRm.Flags().BoolVar(&rmDead, "dead", false, "Only remove entries whose process has exited")
	cmdRm.Flags().IntVar(&rmTimeout, "timeout", 3, "Timeout in seconds for list/remove operations")
}

var cmdRm = &cobra.Command{
	Use:   "rm",
	Short: "Stop tracking processes without signalling them",
	Long: `Forgets the selected registry entries. Use --identity pid@create_time_ms to
drop one entry when several share a pid; "rm --dead --all" prunes every
exited process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(rmTimeout)
		if err != nil {
			return err
		}
		filters, err := rmSel.filters()
		if err != nil {
			return err
		}
		filters.DeadOnly = rmDead
		res, err := controller().Remove(cmd.Context(), app.RemoveParams{
			Filters:         filters,
			AllowAll:        rmAll,
			Timeout:         timeout,
			RequireSelector: true,
		})
		if err != nil {
			return err
		}
		if res.Message != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		}
		for _, p := range res.Removed {
			fmt.Fprint(cmd.OutOrStdout(), "Removed ")
			printProcess(cmd.OutOrStdout(), p)
		}
		return nil
	},
}
