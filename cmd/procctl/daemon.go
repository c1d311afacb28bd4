package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"procctl/internal/app"
	"procctl/internal/daemon"
)

var (
	daemonForceRestart bool
	daemonStopForce    bool
	daemonStopTimeout  time.Duration
)

func init() {
	rootCmd.AddCommand(cmdDaemon)
	cmdDaemon.AddCommand(cmdDaemonStatus, cmdDaemonStop)
	cmdDaemon.Flags().BoolVarP(&daemonForceRestart, "force", "f", false, "Restart the daemon if it is already running")
	cmdDaemonStop.Flags().BoolVarP(&daemonStopForce, "force", "f", false, "Send SIGKILL once --timeout passes")
	cmdDaemonStop.Flags().DurationVar(&daemonStopTimeout, "timeout", daemon.DefaultStopTimeout, "How long to wait for the daemon to exit")
}

var cmdDaemon = &cobra.Command{
	Use:   "daemon",
	Short: "Run the daemon in the foreground",
	Long:  `The daemon owns the registry, keeps liveness up to date and carries out terminations and restarts. If a daemon is already running nothing happens unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		out := cmd.OutOrStdout()
		status, err := ctrl.Status()
		if err != nil {
			log.Warn("daemon status check failed", "err", err)
		}
		if status.Running {
			if !daemonForceRestart {
				if status.PID != 0 {
					fmt.Fprintf(out, "Daemon is already running (pid %d). Stop it manually or re-run with --force.\n", status.PID)
				} else {
					fmt.Fprintln(out, "Daemon is already running. Stop it manually or re-run with --force.")
				}
				return nil
			}
			fmt.Fprintln(out, "Stopping existing daemon process...")
			if err := ctrl.StopDaemon(app.StopParams{Force: true}); err != nil {
				return err
			}
		}

		handle, err := ctrl.StartDaemon()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Daemon started (pid %d)\n", os.Getpid())
		runSpin := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(out))
		runSpin.Suffix = " Running..."
		runSpin.Start()

		sigc := make(chan os.Signal, 2)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		<-sigc
		runSpin.Stop()
		fmt.Fprintln(out, "Stopping daemon...")
		return handle.Close()
	},
}

var cmdDaemonStatus = &cobra.Command{
	Use:   "status",
	Short: "Report whether the daemon is running",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := controller().Status()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !status.Running {
			fmt.Fprintln(out, "Daemon is not running")
			return nil
		}
		if status.PID > 0 {
			fmt.Fprintf(out, "Daemon is running (pid %d)\n", status.PID)
		} else {
			fmt.Fprintln(out, "Daemon is running")
		}
		fmt.Fprintf(out, "uptime=%s socket=%s\n", status.Uptime.Truncate(time.Second), status.Socket)
		return nil
	},
}

var cmdDaemonStop = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	Long: `Sends SIGTERM and waits up to --timeout for the daemon to exit. A stopping
daemon first carries out its pending scheduled terminations (kill --after),
so the wait can last as long as the longest remaining delay. Terminations
scheduled with --background are not waited for and die with the daemon.
With --force the daemon is killed once the timeout passes, dropping whatever
terminations are still pending.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if daemonStopTimeout <= 0 {
			return errors.New("timeout must be greater than 0")
		}
		if err := controller().StopDaemon(app.StopParams{Force: daemonStopForce, Timeout: daemonStopTimeout}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Daemon stopped")
		return nil
	},
}
