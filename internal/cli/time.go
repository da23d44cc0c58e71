package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/osuosl/climesync/internal/command"
)

var (
	ctDateWorked string
	ctIssueURI   string
	ctNotes      string
)

var createTimeCmd = &cobra.Command{
	Use:   "create-time <duration> <project> <activities>...",
	Short: "Submit a new time entry",
	Long:  `Submit a time entry for the authenticated user.`,
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{
			"duration":    args[0],
			"project":     args[1],
			"activities":  strings.Join(args[2:], ","),
			"date_worked": ctDateWorked,
		}}
		setArg(inv.Args, "issue_uri", ctIssueURI)
		setArg(inv.Args, "notes", ctNotes)

		return runScripted("create-time", inv)
	},
}

var (
	utDuration   string
	utProject    string
	utUser       string
	utActivities string
	utDateWorked string
	utIssueURI   string
	utNotes      string
)

var updateTimeCmd = &cobra.Command{
	Use:   "update-time <uuid>",
	Short: "Update an existing time entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Target: args[0], Args: map[string]string{}}
		setArg(inv.Args, "duration", utDuration)
		setArg(inv.Args, "project", utProject)
		setArg(inv.Args, "user", utUser)
		setArg(inv.Args, "activities", listArg(utActivities))
		setArg(inv.Args, "date_worked", utDateWorked)
		setArg(inv.Args, "issue_uri", utIssueURI)
		setArg(inv.Args, "notes", utNotes)

		return runScripted("update-time", inv)
	},
}

var (
	gtUser             string
	gtProject          string
	gtActivity         string
	gtStart            string
	gtEnd              string
	gtUUID             string
	gtIncludeRevisions string
	gtIncludeDeleted   string
	gtCSV              bool
)

var getTimesCmd = &cobra.Command{
	Use:   "get-times",
	Short: "Query time entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{}, CSV: gtCSV}
		setArg(inv.Args, "user", listArg(gtUser))
		setArg(inv.Args, "project", listArg(gtProject))
		setArg(inv.Args, "activity", listArg(gtActivity))
		setArg(inv.Args, "start", gtStart)
		setArg(inv.Args, "end", gtEnd)
		setArg(inv.Args, "uuid", gtUUID)
		setArg(inv.Args, "include_revisions", gtIncludeRevisions)
		setArg(inv.Args, "include_deleted", gtIncludeDeleted)

		return runScripted("get-times", inv)
	},
}

var (
	stStart string
	stEnd   string
)

var sumTimesCmd = &cobra.Command{
	Use:   "sum-times <project>...",
	Short: "Sum time spent on projects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{
			"project": strings.Join(args, ","),
		}}
		setArg(inv.Args, "start", stStart)
		setArg(inv.Args, "end", stEnd)

		return runScripted("sum-times", inv)
	},
}

var deleteTimeCmd = &cobra.Command{
	Use:   "delete-time <uuid>",
	Short: "Delete a time entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScripted("delete-time", command.Invocation{Target: args[0]})
	},
}

func init() {
	createTimeCmd.Flags().StringVar(&ctDateWorked, "date-worked", "today", "date of the entry (yyyy-mm-dd)")
	createTimeCmd.Flags().StringVar(&ctIssueURI, "issue-uri", "", "URI of the issue on an issue tracker")
	createTimeCmd.Flags().StringVar(&ctNotes, "notes", "", "additional notes")

	updateTimeCmd.Flags().StringVar(&utDuration, "duration", "", "duration of the time entry")
	updateTimeCmd.Flags().StringVar(&utProject, "project", "", "slug of the project worked on")
	updateTimeCmd.Flags().StringVar(&utUser, "user", "", "new time owner")
	updateTimeCmd.Flags().StringVar(&utActivities, "activities", "", "slugs of the activities worked on")
	updateTimeCmd.Flags().StringVar(&utDateWorked, "date-worked", "", "date of the entry (yyyy-mm-dd)")
	updateTimeCmd.Flags().StringVar(&utIssueURI, "issue-uri", "", "URI of the issue on an issue tracker")
	updateTimeCmd.Flags().StringVar(&utNotes, "notes", "", "additional notes")

	getTimesCmd.Flags().StringVar(&gtUser, "user", "", "filter by a list of users")
	getTimesCmd.Flags().StringVar(&gtProject, "project", "", "filter by a list of project slugs")
	getTimesCmd.Flags().StringVar(&gtActivity, "activity", "", "filter by a list of activity slugs")
	getTimesCmd.Flags().StringVar(&gtStart, "start", "", "filter by start date")
	getTimesCmd.Flags().StringVar(&gtEnd, "end", "", "filter by end date")
	getTimesCmd.Flags().StringVar(&gtUUID, "uuid", "", "get a specific time by uuid")
	getTimesCmd.Flags().StringVar(&gtIncludeRevisions, "include-revisions", "", "whether to include all time revisions")
	getTimesCmd.Flags().StringVar(&gtIncludeDeleted, "include-deleted", "", "whether to include deleted times")
	getTimesCmd.Flags().BoolVar(&gtCSV, "csv", false, "output the result in CSV format")

	sumTimesCmd.Flags().StringVar(&stStart, "start", "", "start of the date range")
	sumTimesCmd.Flags().StringVar(&stEnd, "end", "", "end of the date range")
}
