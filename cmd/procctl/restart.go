package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	restartSel     selectorFlags
	restartTimeout int
)

func init() {
	rootCmd.AddCommand(cmdRestart)
	restartSel.bind(cmdRestart)
	cmdRestart.Flags().IntVar(&restartTimeout, "timeout", 30, "Timeout in seconds for the restart")
}

var cmdRestart = &cobra.Command{
	Use:   "restart",
	Short: "Terminate a tracked process and start its command again",
	Long:  "Selects exactly one tracked process, terminates it, and relaunches the same command line in the same working directory. The registry entry follows the new process.",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(restartTimeout)
		if err != nil {
			return err
		}
		filters, err := restartSel.filters()
		if err != nil {
			return err
		}
		spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		spin.Suffix = " Restarting..."
		spin.Start()
		var res app.RestartResult
		err = interruptible(cmd.Context(), func() error {
			var rerr error
			res, rerr = controller().Restart(cmd.Context(), app.RestartParams{Filters: filters, Timeout: timeout})
			return rerr
		})
		spin.Stop()
		if err != nil {
			return err
		}
		fmt.Fprintf(
			cmd.OutOrStdout(),
			"Restarted [id=%d] %s -> %s started=%s\n",
			res.After.ID,
			res.Before.Identity,
			res.After.Identity,
			res.After.Started().Format(time.DateTime),
		)
		return nil
	},
}
