package command

import "github.com/osuosl/climesync/internal/field"

// Invocation is one request to run a command.
type Invocation struct {
	// Interactive invocations gather their fields by prompting; scripted
	// ones carry everything below and never prompt.
	Interactive bool

	// Target is the pre-supplied selector value (uuid, slug, username).
	Target string
	// Args maps field names to raw textual values from parsed flags.
	Args map[string]string
	// AccessCodes maps usernames to 3-bit project access codes for the
	// project commands.
	AccessCodes map[string]string
	// CSV requests CSV output on standard output for the get-* commands.
	CSV bool
}

// Descriptor declares one command: how the dispatcher names it, which
// fields it collects, and the handler that runs it. The menu loop and the
// scripted CLI both consult the same table, so a command cannot behave
// differently between the two beyond the interactive/scripted split itself.
type Descriptor struct {
	// Name is the sub-command name, e.g. "create-time".
	Name string
	// Token is the interactive menu mnemonic, e.g. "ct".
	Token string
	Short string

	// Selector names the target-identifier argument, nil when the
	// command has none.
	Selector *field.Field
	// Fields is the payload field specification.
	Fields []field.Field

	// Auth marks commands that talk to the server with a token and so
	// are subject to the interactive expiration check.
	Auth bool
	// Confirm marks destructive commands that interactively ask before
	// running.
	Confirm bool
	// Entity is the CSV entity type for the get-* commands, empty
	// otherwise.
	Entity string

	Run func(a *App, inv Invocation) Result
}

func strField(name, prompt string) *field.Field {
	return &field.Field{Name: name, Prompt: prompt, Kind: field.String}
}

// Registry lists every command in menu order.
var Registry = []Descriptor{
	{
		Name: "connect", Token: "c", Short: "connect",
		Run: func(a *App, inv Invocation) Result {
			return Connect(a, "", inv.Interactive)
		},
	},
	{
		Name: "disconnect", Token: "dc", Short: "disconnect",
		Run: func(a *App, inv Invocation) Result {
			return Disconnect(a)
		},
	},
	{
		Name: "sign-in", Token: "s", Short: "sign in",
		Run: func(a *App, inv Invocation) Result {
			return SignIn(a, "", "", inv.Interactive)
		},
	},
	{
		Name: "sign-out", Token: "so", Short: "sign out/reset credentials",
		Run: func(a *App, inv Invocation) Result {
			return SignOut(a)
		},
	},

	{
		Name: "create-time", Token: "ct", Short: "submit time",
		Fields: createTimeFields, Auth: true, Run: createTime,
	},
	{
		Name: "update-time", Token: "ut", Short: "update time",
		Selector: strField("uuid", "UUID of time to update"),
		Fields:   updateTimeFields, Auth: true, Run: updateTime,
	},
	{
		Name: "get-times", Token: "gt", Short: "get times",
		Fields: getTimesFields, Auth: true, Entity: "time", Run: getTimes,
	},
	{
		Name: "sum-times", Token: "st", Short: "sum times",
		Fields: sumTimesFields, Auth: true, Run: sumTimes,
	},
	{
		Name: "delete-time", Token: "dt", Short: "delete time",
		Selector: strField("uuid", "Time UUID"),
		Auth:     true, Confirm: true, Run: deleteTime,
	},

	{
		Name: "create-project", Token: "cp", Short: "create project",
		Fields: createProjectFields, Auth: true, Run: createProject,
	},
	{
		Name: "update-project", Token: "up", Short: "update project",
		Selector: strField("slug", "Slug of project to update"),
		Fields:   updateProjectFields, Auth: true, Run: updateProject,
	},
	{
		Name: "get-projects", Token: "gp", Short: "get projects",
		Fields: getProjectsFields, Auth: true, Entity: "project", Run: getProjects,
	},
	{
		Name: "delete-project", Token: "dp", Short: "delete project",
		Selector: strField("slug", "Project slug"),
		Auth:     true, Confirm: true, Run: deleteProject,
	},

	{
		Name: "create-activity", Token: "ca", Short: "create activity",
		Fields: createActivityFields, Auth: true, Run: createActivity,
	},
	{
		Name: "update-activity", Token: "ua", Short: "update activity",
		Selector: strField("old_slug", "Slug of activity to update"),
		Fields:   updateActivityFields, Auth: true, Run: updateActivity,
	},
	{
		Name: "get-activities", Token: "ga", Short: "get activities",
		Fields: getActivitiesFields, Auth: true, Entity: "activity", Run: getActivities,
	},
	{
		Name: "delete-activity", Token: "da", Short: "delete activity",
		Selector: strField("slug", "Activity slug"),
		Auth:     true, Confirm: true, Run: deleteActivity,
	},

	{
		Name: "create-user", Token: "cu", Short: "create user",
		Fields: createUserFields, Auth: true, Run: createUser,
	},
	{
		Name: "update-user", Token: "uu", Short: "update user",
		Selector: strField("old_username", "Username of user to update"),
		Fields:   updateUserFields, Auth: true, Run: updateUser,
	},
	{
		Name: "get-users", Token: "gu", Short: "get users",
		Fields: getUsersFields, Auth: true, Entity: "user", Run: getUsers,
	},
	{
		Name: "delete-user", Token: "du", Short: "delete user",
		Selector: strField("username", "Username"),
		Auth:     true, Confirm: true, Run: deleteUser,
	},
}

// Lookup finds a descriptor by sub-command name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range Registry {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ByToken finds a descriptor by its menu mnemonic.
func ByToken(token string) (Descriptor, bool) {
	for _, d := range Registry {
		if d.Token == token {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Execute runs one command. Interactive invocations of authenticated
// commands are first checked against token expiration so a long-running
// session fails with a clear message instead of a server 401.
func Execute(a *App, d Descriptor, inv Invocation) Result {
	if inv.Interactive && d.Auth && a.Session != nil && a.Session.Client.Token() != "" {
		expired, err := a.Session.Client.TokenExpired()
		if err == nil && expired {
			return Errf(ErrAuth, "Your token has expired. Please sign in again")
		}
	}

	return d.Run(a, inv)
}
