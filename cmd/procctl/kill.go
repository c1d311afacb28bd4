package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	killSel        selectorFlags
	killAll        bool
	killAfter      string
	killBackground bool
	killTimeout    int
)

func init() {
	rootCmd.AddCommand(cmdKill)
	killSel.bind(cmdKill)
	cmdKill.Flags().BoolVar(&killAll, "all", false, "Kill every process that matches the selector")
	cmdKill.Flags().StringVar(&killAfter, "after", "", "Schedule termination after this delay (e.g. 30s, 5m)")
	cmdKill.Flags().BoolVar(&killBackground, "background", false, "Let a scheduled termination outlive a daemon shutdown")
	cmdKill.Flags().IntVar(&killTimeout, "timeout", 15, "Timeout in seconds for kill/remove operations")
}

var cmdKill = &cobra.Command{
	Use:   "kill",
	Short: "Terminate processes tracked by the daemon",
	Long: `Selects processes via the same filters as list. Each one gets SIGTERM, then
SIGKILL if it is still alive after the daemon's grace period, and is removed
from the registry. With --after the termination is scheduled instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(killTimeout)
		if err != nil {
			return err
		}
		after, err := parseDelay(killAfter)
		if err != nil {
			return err
		}
		filters, err := killSel.filters()
		if err != nil {
			return err
		}

		var res app.KillResult
		err = interruptible(cmd.Context(), func() error {
			var kerr error
			res, kerr = controller().Kill(cmd.Context(), app.KillParams{
				Filters:         filters,
				AllowAll:        killAll,
				Timeout:         timeout,
				RequireSelector: true,
				After:           after,
				Background:      killBackground,
			})
			return kerr
		})
		printKillResult(cmd, res, after)
		return err
	},
}

func printKillResult(cmd *cobra.Command, res app.KillResult, after time.Duration) {
	out := cmd.OutOrStdout()
	if res.Message != "" {
		fmt.Fprintln(out, res.Message)
	}
	for _, event := range res.Events {
		p := event.Proc
		switch event.Kind {
		case "success":
			fmt.Fprintf(out, "Killed and removed [id=%d] %s name=%s\n", p.ID, p.Identity, dash(p.Name))
		case "scheduled":
			fmt.Fprintf(out, "Scheduled termination of [id=%d] %s name=%s in %s\n", p.ID, p.Identity, dash(p.Name), after)
		case "kill_failure", "schedule_failure":
			fmt.Fprintf(out, "Failed to kill [id=%d] %s name=%s: %v\n", p.ID, p.Identity, dash(p.Name), event.Err)
		case "remove_failure":
			fmt.Fprintf(out, "Killed [id=%d] %s name=%s but failed to remove from registry: %v\n", p.ID, p.Identity, dash(p.Name), event.Err)
		}
	}
}
