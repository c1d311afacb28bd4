package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	statsSel     selectorFlags
	statsCPU     string
	statsTimeout int
)

func init() {
	rootCmd.AddCommand(cmdStats)
	statsSel.bind(cmdStats)
	cmdStats.Flags().StringVar(&statsCPU, "cpu-interval", "", "CPU sampling window (default from daemon config)")
	cmdStats.Flags().IntVar(&statsTimeout, "timeout", 5, "Timeout in seconds for the stats RPC")
}

var cmdStats = &cobra.Command{
	Use:   "stats",
	Short: "Show CPU, memory and runtime of tracked processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(statsTimeout)
		if err != nil {
			return err
		}
		interval, err := parseDelay(statsCPU)
		if err != nil {
			return err
		}
		filters, err := statsSel.filters()
		if err != nil {
			return err
		}
		stats, err := controller().Stats(cmd.Context(), app.StatsParams{
			Filters:     filters,
			CPUInterval: interval,
			Timeout:     timeout,
		})
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No processes registered")
			return nil
		}

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "IDENTITY", "NAME", "RUNNING", "CPU%", "MEM(MB)", "RUNTIME")
		for _, st := range stats {
			cpu, mem, runtime := "n/a", "n/a", "-"
			if st.CPUKnown {
				cpu = fmt.Sprintf("%.2f", st.CPUPercent)
			}
			if st.MemoryKnown {
				mem = fmt.Sprintf("%.2f", st.MemoryMB)
			}
			if st.Running {
				runtime = st.Runtime.Truncate(time.Second).String()
			}
			tbl.Row(
				strconv.FormatUint(st.ID, 10),
				st.Identity.String(),
				dash(st.Name),
				strconv.FormatBool(st.Running),
				cpu,
				mem,
				runtime,
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
		return nil
	},
}
