package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	runTags    []string
	runGroups  []string
	runName    string
	runCwd     string
	runTimeout int
)

func init() {
	rootCmd.AddCommand(cmdRun)
	cmdRun.Flags().StringSliceVar(&runTags, "tag", nil, "Tag to assign to the tracked process (repeatable)")
	cmdRun.Flags().StringSliceVar(&runGroups, "group", nil, "Group to assign to the tracked process (repeatable)")
	cmdRun.Flags().StringVar(&runName, "name", "", "Optional unique name for the tracked process")
	cmdRun.Flags().StringVar(&runCwd, "cwd", "", "Working directory for the command")
	cmdRun.Flags().IntVar(&runTimeout, "timeout", 3, "Timeout in seconds for contacting the daemon")
}

var cmdRun = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Launch a new command and register it with the daemon",
	Long:  "Starts the provided command detached from this terminal, registers its identity with the daemon, and exits while the process keeps running.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(runTimeout)
		if err != nil {
			return err
		}
		res, err := controller().Run(cmd.Context(), app.RunParams{
			Argv:    args,
			Cwd:     runCwd,
			Tags:    runTags,
			Groups:  runGroups,
			Name:    runName,
			Timeout: timeout,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Started %s registry id=%d at %s\n", res.Identity, res.ID, res.Identity.CreatedAt().Format(time.DateTime))
		return nil
	},
}
