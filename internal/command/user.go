package command

import "github.com/osuosl/climesync/internal/field"

var createUserFields = []field.Field{
	{Name: "username", Prompt: "New user username", Kind: field.String},
	{Name: "password", Prompt: "New user password", Kind: field.Secret},
	{Name: "display_name", Prompt: "New display name", Kind: field.String, Optional: true},
	{Name: "email", Prompt: "New user email", Kind: field.String, Optional: true},
	{Name: "site_admin", Prompt: "Site admin?", Kind: field.Bool, Optional: true},
	{Name: "site_manager", Prompt: "Site manager?", Kind: field.Bool, Optional: true},
	{Name: "site_spectator", Prompt: "Site spectator?", Kind: field.Bool, Optional: true},
	{Name: "meta", Prompt: "Extra meta-information", Kind: field.String, Optional: true},
	{Name: "active", Prompt: "Is the new user active?", Kind: field.Bool, Optional: true},
}

func createUser(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, createUserFields)
	if r != nil {
		return *r
	}

	records, err := a.Session.Client.CreateUser(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var updateUserFields = []field.Field{
	{Name: "username", Prompt: "Updated username", Kind: field.String, Optional: true},
	{Name: "password", Prompt: "Updated password", Kind: field.Secret, Optional: true},
	{Name: "display_name", Prompt: "Updated display name", Kind: field.String, Optional: true},
	{Name: "email", Prompt: "Updated email", Kind: field.String, Optional: true},
	{Name: "site_admin", Prompt: "Site admin?", Kind: field.Bool, Optional: true},
	{Name: "site_manager", Prompt: "Site manager?", Kind: field.Bool, Optional: true},
	{Name: "site_spectator", Prompt: "Site spectator?", Kind: field.Bool, Optional: true},
	{Name: "meta", Prompt: "New metainformation", Kind: field.String, Optional: true},
	{Name: "active", Prompt: "Is the user active?", Kind: field.Bool, Optional: true},
}

func updateUser(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	username, r := a.selectorValue(inv, field.Field{
		Name:   "old_username",
		Prompt: "Username of user to update",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	payload, r := a.gather(inv, updateUserFields)
	if r != nil {
		return *r
	}

	records, err := a.Session.Client.UpdateUser(a.Context(), username, Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var getUsersFields = []field.Field{
	{Name: "username", Prompt: "Username", Kind: field.String, Optional: true},
}

func getUsers(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, getUsersFields)
	if r != nil {
		return *r
	}

	username, _ := payload["username"].(string)

	users, err := a.Session.Client.GetUsers(a.Context(), username)
	if err != nil {
		return remoteErr(err)
	}

	return a.finishGet(inv, "user", users)
}

func deleteUser(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	username, r := a.selectorValue(inv, field.Field{
		Name:   "username",
		Prompt: "Username",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	really, r := a.confirmDelete(inv, username)
	if r != nil {
		return *r
	}
	if !really {
		return Empty()
	}

	records, err := a.Session.Client.DeleteUser(a.Context(), username)
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}
