package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"procctl/internal/daemon"
)

var (
	configPath  string
	force       bool
	stopTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "procctl-daemon",
	Short:        "Run the procctl daemon in the foreground",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := daemon.DefaultPaths()
		if daemon.IsRunning() {
			if !force {
				pid, err := paths.ReadPID()
				if err != nil {
					return err
				}
				log.Info("daemon is already running, use --force to restart", "pid", pid, "socket", paths.Socket)
				return nil
			}
			log.Info("stopping existing daemon", "timeout", stopTimeout)
			if err := daemon.Stop(paths, daemon.StopOptions{Force: true, Timeout: stopTimeout}); err != nil {
				return err
			}
		}

		srv, err := daemon.StartDaemon(paths, configPath)
		if err != nil {
			return err
		}
		log.Info("daemon started, press Ctrl+C to stop", "pid", os.Getpid())

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigc
		log.Info("stopping daemon", "signal", sig.String())
		if err := srv.Close(); err != nil {
			return err
		}
		log.Info("daemon stopped")
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to the daemon config file (yaml/json/toml)")
	rootCmd.Flags().BoolVar(&force, "force", false, "Stop an existing daemon before starting")
	rootCmd.Flags().DurationVar(&stopTimeout, "stop-timeout", daemon.DefaultStopTimeout, "How long --force waits for the old daemon to finish scheduled terminations before killing it")
	log.SetPrefix("procctl-daemon")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
