package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

func init() {
	rootCmd.AddCommand(labelCommand(app.KindTag), labelCommand(app.KindGroup))
}

// labelCommand builds the tag or group command tree: add, rm, rename, ls.
func labelCommand(kind app.LabelKind) *cobra.Command {
	root := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Manage the %ss of tracked processes", kind),
	}
	root.AddCommand(
		relabelCommand(kind, true),
		relabelCommand(kind, false),
		renameCommand(kind),
		listLabelCommand(kind),
	)
	return root
}

func relabelCommand(kind app.LabelKind, add bool) *cobra.Command {
	var (
		sel     selectorFlags
		all     bool
		timeout int
	)
	verb, short := "add", fmt.Sprintf("Add %ss to the selected processes", kind)
	if !add {
		verb, short = "rm", fmt.Sprintf("Remove %ss from the selected processes", kind)
	}
	cmd := &cobra.Command{
		Use:   verb + " <" + string(kind) + ">...",
		Short: short,
		Long: fmt.Sprintf(`Selects processes with the list selectors and changes their %ss. When
several entries share a pid, select one with --identity pid@create_time_ms.`, kind),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := seconds(timeout)
			if err != nil {
				return err
			}
			filters, err := sel.filters()
			if err != nil {
				return err
			}
			params := app.LabelParams{Filters: filters, AllowAll: all, Timeout: d}
			switch {
			case kind == app.KindTag && add:
				params.AddTags = args
			case kind == app.KindTag:
				params.RemoveTags = args
			case add:
				params.AddGroups = args
			default:
				params.RemoveGroups = args
			}
			res, err := controller().Label(cmd.Context(), params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
			}
			for _, p := range res.Updated {
				fmt.Fprint(out, "Updated ")
				printProcess(out, p)
			}
			return nil
		},
	}
	sel.bind(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Change every process that matches the selector")
	cmd.Flags().IntVar(&timeout, "timeout", 3, "Timeout in seconds for daemon requests")
	return cmd
}

func renameCommand(kind app.LabelKind) *cobra.Command {
	var timeout int
	cmd := &cobra.Command{
		Use:   "rename <from> <to>",
		Short: fmt.Sprintf("Rename a %s on every tracked process", kind),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := seconds(timeout)
			if err != nil {
				return err
			}
			res, err := controller().RenameLabel(cmd.Context(), app.RenameParams{Kind: kind, From: args[0], To: args[1], Timeout: d})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Renamed %s %q -> %q on %d process(es)\n", kind, args[0], args[1], res.Updated)
			for _, p := range res.Processes {
				printProcess(out, p)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&timeout, "timeout", 3, "Timeout in seconds for daemon requests")
	return cmd
}

func listLabelCommand(kind app.LabelKind) *cobra.Command {
	var timeout int
	cmd := &cobra.Command{
		Use:   "ls <" + string(kind) + ">",
		Short: fmt.Sprintf("List processes carrying the given %s", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := seconds(timeout)
			if err != nil {
				return err
			}
			var filters app.ListFilters
			if kind == app.KindTag {
				filters.TagsAll = args
			} else {
				filters.GroupsAll = args
			}
			procs, err := controller().List(cmd.Context(), app.ListParams{Filters: filters, Timeout: d})
			if err != nil {
				return err
			}
			if len(procs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No processes with %s %q\n", kind, args[0])
				return nil
			}
			for _, p := range procs {
				printProcess(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&timeout, "timeout", 3, "Timeout in seconds for daemon requests")
	return cmd
}
