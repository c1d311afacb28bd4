package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pingTimeoutSeconds int

func init() {
	rootCmd.AddCommand(cmdPing)
	cmdPing.Flags().IntVarP(&pingTimeoutSeconds, "timeout", "t", 2, "Timeout in seconds for daemon ping")
}

// cmdPing health-checks the daemon and prints its reply.
var cmdPing = &cobra.Command{
	Use:   "ping",
	Short: "Check daemon availability (expects 'pong')",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := controller().Ping(cmd.Context(), time.Duration(pingTimeoutSeconds)*time.Second)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s rtt=%s daemon pid=%d uptime=%s\n",
			res.Reply, res.RTT.Round(time.Microsecond), res.DaemonPID, res.Uptime.Truncate(time.Second))
		return nil
	},
}
