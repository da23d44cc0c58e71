// Package cli is the climesync command surface: the cobra sub-commands for
// scripted use and the interactive menu loop the bare binary drops into.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/osuosl/climesync/internal/command"
)

var appInstance *command.App

var (
	connectURL string
	username   string
	password   string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "climesync",
	Short: "A CLI to interact with a TimeSync server",
	Long: `Climesync submits and queries time entries on a remote TimeSync server.

By default, running climesync without arguments starts the interactive menu.
Use subcommands for scripted operations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		appInstance.Test = testMode
		if debug {
			return appInstance.EnableDebug()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		runMenu()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *command.App) {
	appInstance = a
}

var testMode bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&connectURL, "connect", "c", "", "URL of the TimeSync server")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "TimeSync username")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "TimeSync password")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every request to the server")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test", false, "run against a simulated server")
	rootCmd.PersistentFlags().MarkHidden("test")

	// Add all subcommands
	rootCmd.AddCommand(createTimeCmd)
	rootCmd.AddCommand(updateTimeCmd)
	rootCmd.AddCommand(getTimesCmd)
	rootCmd.AddCommand(sumTimesCmd)
	rootCmd.AddCommand(deleteTimeCmd)
	rootCmd.AddCommand(createProjectCmd)
	rootCmd.AddCommand(updateProjectCmd)
	rootCmd.AddCommand(getProjectsCmd)
	rootCmd.AddCommand(deleteProjectCmd)
	rootCmd.AddCommand(createActivityCmd)
	rootCmd.AddCommand(updateActivityCmd)
	rootCmd.AddCommand(getActivitiesCmd)
	rootCmd.AddCommand(deleteActivityCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(updateUserCmd)
	rootCmd.AddCommand(getUsersCmd)
	rootCmd.AddCommand(deleteUserCmd)
}
