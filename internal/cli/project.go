package cli

import (
	"github.com/spf13/cobra"

	"github.com/osuosl/climesync/internal/command"
)

var (
	cpURI             string
	cpDefaultActivity string
)

var createProjectCmd = &cobra.Command{
	Use:   "create-project <name> <slugs> [(<username> <access_mode>)...]",
	Short: "Create a new project (site admins only)",
	Long: `Create a project with the given name and slugs.

Trailing (username access_mode) pairs grant users access to the project. An
access mode is three binary digits in <member><spectator><manager> order, so
101 grants member and manager but not spectator.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := accessPairs(args[2:])
		if err != nil {
			return err
		}

		inv := command.Invocation{
			Args: map[string]string{
				"name":  args[0],
				"slugs": listArg(args[1]),
			},
			AccessCodes: codes,
		}
		setArg(inv.Args, "uri", cpURI)
		setArg(inv.Args, "default_activity", cpDefaultActivity)

		return runScripted("create-project", inv)
	},
}

var (
	upName            string
	upSlugs           string
	upURI             string
	upDefaultActivity string
)

var updateProjectCmd = &cobra.Command{
	Use:   "update-project <slug> [(<username> <access_mode>)...]",
	Short: "Update an existing project (site admins only)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := accessPairs(args[1:])
		if err != nil {
			return err
		}

		inv := command.Invocation{
			Target:      args[0],
			Args:        map[string]string{},
			AccessCodes: codes,
		}
		setArg(inv.Args, "name", upName)
		setArg(inv.Args, "slugs", listArg(upSlugs))
		setArg(inv.Args, "uri", upURI)
		setArg(inv.Args, "default_activity", upDefaultActivity)

		return runScripted("update-project", inv)
	},
}

var (
	gpIncludeRevisions string
	gpIncludeDeleted   string
	gpSlug             string
	gpCSV              bool
)

var getProjectsCmd = &cobra.Command{
	Use:   "get-projects",
	Short: "Query projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{}, CSV: gpCSV}
		setArg(inv.Args, "include_revisions", gpIncludeRevisions)
		setArg(inv.Args, "include_deleted", gpIncludeDeleted)
		setArg(inv.Args, "slug", gpSlug)

		return runScripted("get-projects", inv)
	},
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete-project <slug>",
	Short: "Delete a project (site admins only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScripted("delete-project", command.Invocation{Target: args[0]})
	},
}

func init() {
	createProjectCmd.Flags().StringVar(&cpURI, "uri", "", "the project's URI")
	createProjectCmd.Flags().StringVar(&cpDefaultActivity, "default-activity", "", "slug of the project's default activity")

	updateProjectCmd.Flags().StringVar(&upName, "name", "", "updated project name")
	updateProjectCmd.Flags().StringVar(&upSlugs, "slugs", "", "updated list of project slugs")
	updateProjectCmd.Flags().StringVar(&upURI, "uri", "", "updated project URI")
	updateProjectCmd.Flags().StringVar(&upDefaultActivity, "default-activity", "", "updated slug of the project's default activity")

	getProjectsCmd.Flags().StringVar(&gpIncludeRevisions, "include-revisions", "", "whether to include revised entries")
	getProjectsCmd.Flags().StringVar(&gpIncludeDeleted, "include-deleted", "", "whether to include deleted entries")
	getProjectsCmd.Flags().StringVar(&gpSlug, "slug", "", "filter by project slug")
	getProjectsCmd.Flags().BoolVar(&gpCSV, "csv", false, "output the result in CSV format")
}
