package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	listSel       selectorFlags
	listTagsAll   []string
	listGroupsAll []string
	listAliveOnly bool
	listDeadOnly  bool
	listTimeout   int
)

func init() {
	rootCmd.AddCommand(cmdList)
	listSel.bind(cmdList)
	cmdList.Flags().StringSliceVar(&listTagsAll, "tag-all", nil, "Require every one of these tags")
	cmdList.Flags().StringSliceVar(&listGroupsAll, "group-all", nil, "Require every one of these groups")
	cmdList.Flags().BoolVar(&listAliveOnly, "alive", false, "Only show processes that are still running")
	cmdList.Flags().BoolVar(&listDeadOnly, "dead", false, "Only show processes that have exited")
	cmdList.Flags().IntVar(&listTimeout, "timeout", 2, "Timeout in seconds for the list RPC")
	cmdList.MarkFlagsMutuallyExclusive("alive", "dead")
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List processes tracked by the daemon",
	Long: `Prints every registry entry matching the selectors. Entries are shown by
identity (pid@create_time_ms), so a pid reused by a new process appears as a
separate entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(listTimeout)
		if err != nil {
			return err
		}
		filters, err := listSel.filters()
		if err != nil {
			return err
		}
		filters.TagsAll = listTagsAll
		filters.GroupsAll = listGroupsAll
		filters.AliveOnly = listAliveOnly
		filters.DeadOnly = listDeadOnly

		procs, err := controller().List(cmd.Context(), app.ListParams{Filters: filters, Timeout: timeout})
		if err != nil {
			return err
		}
		if len(procs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No processes registered")
			return nil
		}
		for _, p := range procs {
			printProcess(cmd.OutOrStdout(), p)
		}
		return nil
	},
}
