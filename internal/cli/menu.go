package cli

import (
	"io"

	"github.com/osuosl/climesync/internal/command"
	"github.com/osuosl/climesync/internal/render"
)

const menuOptions = `
===============================================================
 climesync - CLI to interact with TimeSync
===============================================================

What do you want to do?
c - connect
dc - disconnect
s - sign in
so - sign out/reset credentials

ct - submit time
ut - update time
gt - get times
st - sum times
dt - delete time

cp - create project
up - update project
gp - get projects
dp - delete project

ca - create activity
ua - update activity
ga - get activities
da - delete activity

cu - create user
uu - update user
gu - get users
du - delete user

h - print this menu
q - exit
`

// runMenu is the interactive driver: connect and sign in up front, then
// read menu tokens until quit or end of input.
func runMenu() {
	a := appInstance

	printResult(command.Connect(a, connectURL, true))
	printResult(command.SignIn(a, username, password, true))

	for {
		choice, err := a.Prompt.Line("(h for help) $ ")
		if err != nil {
			if err != io.EOF {
				render.Error(a.Out, "error", err.Error())
			}
			return
		}

		switch choice {
		case "":
			continue
		case "h":
			a.Prompt.Say("%s", render.Title(menuOptions))
			continue
		case "q":
			return
		}

		d, ok := command.ByToken(choice)
		if !ok {
			a.Prompt.Say("Unknown option %q", choice)
			continue
		}

		printResult(command.Execute(a, d, command.Invocation{Interactive: true}))
	}
}
