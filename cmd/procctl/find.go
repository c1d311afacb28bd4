package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

var (
	findPID     int
	findName    string
	findUser    string
	findCwd     string
	findArgv    []string
	findSearch  string
	findRemote  bool
	findTrack   bool
	findTags    []string
	findGroups  []string
	findTimeout int
)

func init() {
	rootCmd.AddCommand(cmdFind)
	cmdFind.Flags().IntVar(&findPID, "pid", 0, "Exact PID")
	cmdFind.Flags().StringVar(&findName, "name", "", "Exact process name")
	cmdFind.Flags().StringVar(&findUser, "user", "", "Exact owning user")
	cmdFind.Flags().StringVar(&findCwd, "cwd", "", "Exact working directory")
	cmdFind.Flags().StringArrayVar(&findArgv, "argv", nil, "Exact argument vector, one --argv per argument")
	cmdFind.Flags().StringVar(&findSearch, "search", "", "Substring of the command line")
	cmdFind.Flags().BoolVar(&findRemote, "remote", false, "Search from the daemon instead of this process")
	cmdFind.Flags().BoolVar(&findTrack, "track", false, "Register every match with the daemon")
	cmdFind.Flags().StringSliceVar(&findTags, "tag", nil, "Tag to assign to tracked matches (repeatable)")
	cmdFind.Flags().StringSliceVar(&findGroups, "group", nil, "Group to assign to tracked matches (repeatable)")
	cmdFind.Flags().IntVar(&findTimeout, "timeout", 5, "Timeout in seconds for daemon requests")
}

var cmdFind = &cobra.Command{
	Use:   "find",
	Short: "Search every visible process, tracked or not",
	Long: `Enumerates the processes visible to the caller and prints those matching all
given criteria. Attributes the OS refuses to reveal never match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := seconds(findTimeout)
		if err != nil {
			return err
		}
		res, err := controller().Find(cmd.Context(), app.FindParams{
			PID:     findPID,
			Name:    findName,
			User:    findUser,
			Cwd:     findCwd,
			Argv:    findArgv,
			Search:  findSearch,
			Remote:  findRemote,
			Track:   findTrack,
			Tags:    findTags,
			Groups:  findGroups,
			Timeout: timeout,
		})
		out := cmd.OutOrStdout()
		for _, m := range res.Matches {
			line := fmt.Sprintf("%s name=%s user=%s started=%s cwd=%s cmd=%s",
				m.Identity, dash(m.Name), dash(m.User), m.Identity.CreatedAt().Format(time.DateTime), dash(m.Cwd), strings.Join(m.Cmdline, " "))
			switch {
			case m.TrackedID != 0:
				line += fmt.Sprintf(" tracked=%d", m.TrackedID)
			case m.TrackNote != "":
				line += " (" + m.TrackNote + ")"
			}
			fmt.Fprintln(out, line)
		}
		if err != nil {
			return err
		}
		if len(res.Matches) == 0 {
			fmt.Fprintln(out, "No matching processes")
		} else if findTrack {
			fmt.Fprintf(out, "Tracked %d of %d match(es)\n", res.Tracked, len(res.Matches))
		}
		return nil
	},
}
