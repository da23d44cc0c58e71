package cli

import (
	"github.com/spf13/cobra"

	"github.com/osuosl/climesync/internal/command"
)

var (
	cuDisplayName   string
	cuEmail         string
	cuSiteAdmin     string
	cuSiteManager   string
	cuSiteSpectator string
	cuMeta          string
	cuActive        string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user <username> <password>",
	Short: "Create a new user (site admins only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{
			"username": args[0],
			"password": args[1],
		}}
		setArg(inv.Args, "display_name", cuDisplayName)
		setArg(inv.Args, "email", cuEmail)
		setArg(inv.Args, "site_admin", cuSiteAdmin)
		setArg(inv.Args, "site_manager", cuSiteManager)
		setArg(inv.Args, "site_spectator", cuSiteSpectator)
		setArg(inv.Args, "meta", cuMeta)
		setArg(inv.Args, "active", cuActive)

		return runScripted("create-user", inv)
	},
}

var (
	uuUsername      string
	uuPassword      string
	uuDisplayName   string
	uuEmail         string
	uuSiteAdmin     string
	uuSiteManager   string
	uuSiteSpectator string
	uuMeta          string
	uuActive        string
)

var updateUserCmd = &cobra.Command{
	Use:   "update-user <old_username>",
	Short: "Update an existing user (site admins only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Target: args[0], Args: map[string]string{}}
		setArg(inv.Args, "username", uuUsername)
		setArg(inv.Args, "password", uuPassword)
		setArg(inv.Args, "display_name", uuDisplayName)
		setArg(inv.Args, "email", uuEmail)
		setArg(inv.Args, "site_admin", uuSiteAdmin)
		setArg(inv.Args, "site_manager", uuSiteManager)
		setArg(inv.Args, "site_spectator", uuSiteSpectator)
		setArg(inv.Args, "meta", uuMeta)
		setArg(inv.Args, "active", uuActive)

		return runScripted("update-user", inv)
	},
}

var guCSV bool

var getUsersCmd = &cobra.Command{
	Use:   "get-users [<username>]",
	Short: "Query users",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := command.Invocation{Args: map[string]string{}, CSV: guCSV}
		if len(args) == 1 {
			inv.Args["username"] = args[0]
		}

		return runScripted("get-users", inv)
	},
}

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <username>",
	Short: "Delete a user (site admins only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScripted("delete-user", command.Invocation{Target: args[0]})
	},
}

func init() {
	createUserCmd.Flags().StringVar(&cuDisplayName, "display-name", "", "display name of the new user")
	createUserCmd.Flags().StringVar(&cuEmail, "email", "", "email address of the new user")
	createUserCmd.Flags().StringVar(&cuSiteAdmin, "site-admin", "", "whether the new user is a site admin")
	createUserCmd.Flags().StringVar(&cuSiteManager, "site-manager", "", "whether the new user is a site manager")
	createUserCmd.Flags().StringVar(&cuSiteSpectator, "site-spectator", "", "whether the new user is a site spectator")
	createUserCmd.Flags().StringVar(&cuMeta, "meta", "", "extra user metainformation")
	createUserCmd.Flags().StringVar(&cuActive, "active", "", "whether the new user is active")

	updateUserCmd.Flags().StringVar(&uuUsername, "username", "", "updated username")
	updateUserCmd.Flags().StringVar(&uuPassword, "password", "", "updated password")
	updateUserCmd.Flags().StringVar(&uuDisplayName, "display-name", "", "updated display name")
	updateUserCmd.Flags().StringVar(&uuEmail, "email", "", "updated email address")
	updateUserCmd.Flags().StringVar(&uuSiteAdmin, "site-admin", "", "whether the user is a site admin")
	updateUserCmd.Flags().StringVar(&uuSiteManager, "site-manager", "", "whether the user is a site manager")
	updateUserCmd.Flags().StringVar(&uuSiteSpectator, "site-spectator", "", "whether the user is a site spectator")
	updateUserCmd.Flags().StringVar(&uuMeta, "meta", "", "new metainformation")
	updateUserCmd.Flags().StringVar(&uuActive, "active", "", "whether the user is active")

	getUsersCmd.Flags().BoolVar(&guCSV, "csv", false, "output the result in CSV format")
}
