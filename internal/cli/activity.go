package cli

import (
	"github.com/spf13/cobra"

	"github.com/osuosl/climesync/internal/command"
)

var createActivityCmd = &cobra.Command{
	Use:   "create-activity <name> <slug>",
	Short: "Create a new activity (site admins only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScripted("create-activity", command.Invocation{Args: map[string]string{
			"name": args[0],
			"slug": args[1],
		}})
	},
}

var (
	uaName string
	uaSlug string
)

var updateActivityCmd = &cobra.Command{
	Use:   "update-activity <old_slug>",
	Short: "Update an existing activity (site admins only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Target: args[0], Args: map[string]string{}}
		setArg(inv.Args, "name", uaName)
		setArg(inv.Args, "slug", uaSlug)

		return runScripted("update-activity", inv)
	},
}

var (
	gaIncludeRevisions string
	gaIncludeDeleted   string
	gaSlug             string
	gaCSV              bool
)

var getActivitiesCmd = &cobra.Command{
	Use:   "get-activities",
	Short: "Query activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{}, CSV: gaCSV}
		setArg(inv.Args, "include_revisions", gaIncludeRevisions)
		setArg(inv.Args, "include_deleted", gaIncludeDeleted)
		setArg(inv.Args, "slug", gaSlug)

		return runScripted("get-activities", inv)
	},
}

var deleteActivityCmd = &cobra.Command{
	Use:   "delete-activity <slug>",
	Short: "Delete an activity (site admins only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScripted("delete-activity", command.Invocation{Target: args[0]})
	},
}

func init() {
	updateActivityCmd.Flags().StringVar(&uaName, "name", "", "updated activity name")
	updateActivityCmd.Flags().StringVar(&uaSlug, "slug", "", "updated activity slug")

	getActivitiesCmd.Flags().StringVar(&gaIncludeRevisions, "include-revisions", "", "whether to include revised entries")
	getActivitiesCmd.Flags().StringVar(&gaIncludeDeleted, "include-deleted", "", "whether to include deleted entries")
	getActivitiesCmd.Flags().StringVar(&gaSlug, "slug", "", "filter by activity slug")
	getActivitiesCmd.Flags().BoolVar(&gaCSV, "csv", false, "output the result in CSV format")
}
