package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	addTags    []string
	addGroups  []string
	addName    string
	addCreated int64
	addTimeout int
)

func init() {
	rootCmd.AddCommand(cmdAdd)
	cmdAdd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag to assign (repeatable)")
	cmdAdd.Flags().StringSliceVar(&addGroups, "group", nil, "Group to assign (repeatable)")
	cmdAdd.Flags().StringVar(&addName, "name", "", "Optional unique name")
	cmdAdd.Flags().Int64Var(&addCreated, "create-time", 0, "Expected start time in ms since epoch; rejects a reused PID")
	cmdAdd.Flags().IntVar(&addTimeout, "timeout", 3, "Timeout in seconds for contacting the daemon")
}

var cmdAdd = &cobra.Command{
	Use:   "add <pid>",
	Short: "Track a running process by PID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid pid %q", args[0])
		}
		if addCreated < 0 {
			return errors.New("create-time must be non-negative")
		}
		timeout, err := seconds(addTimeout)
		if err != nil {
			return err
		}
		res, err := controller().Add(cmd.Context(), app.AddParams{
			PID:        pid,
			CreateTime: addCreated,
			Tags:       addTags,
			Groups:     addGroups,
			Name:       addName,
			Timeout:    timeout,
		})
		if err != nil {
			return err
		}
		if res.AlreadyExists {
			fmt.Fprintln(cmd.OutOrStdout(), res.ExistingReason)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tracking %s registry id=%d\n", res.Identity, res.ID)
		return nil
	},
}
