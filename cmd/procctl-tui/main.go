package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"procctl/internal/app"
	"procctl/internal/tui"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "procctl-tui",
	Short:        "Interactive terminal UI for procctl",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(app.New(app.Options{ConfigPath: configPath}))
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to the daemon config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("tui exited with error", "err", err)
	}
}
