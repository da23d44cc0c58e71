package command

import (
	"github.com/osuosl/climesync/internal/field"
	"github.com/osuosl/climesync/internal/permission"
)

var createProjectFields = []field.Field{
	{Name: "name", Prompt: "Project name", Kind: field.String},
	{Name: "slugs", Prompt: "Project slugs", Kind: field.List},
	{Name: "uri", Prompt: "Project URI", Kind: field.String, Optional: true},
	{Name: "users", Prompt: "Users", Kind: field.List, Optional: true},
	{Name: "default_activity", Prompt: "Default activity", Kind: field.String, Optional: true},
}

func createProject(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, createProjectFields)
	if r != nil {
		return *r
	}

	if r := a.resolveUsers(inv, payload); r != nil {
		return *r
	}
	singletonList(payload, "slugs")

	records, err := a.Session.Client.CreateProject(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var updateProjectFields = []field.Field{
	{Name: "name", Prompt: "Updated project name", Kind: field.String, Optional: true},
	{Name: "slugs", Prompt: "Updated project slugs", Kind: field.List, Optional: true},
	{Name: "uri", Prompt: "Updated project URI", Kind: field.String, Optional: true},
	{Name: "users", Prompt: "Updated users", Kind: field.List, Optional: true},
	{Name: "default_activity", Prompt: "Updated default activity", Kind: field.String, Optional: true},
}

func updateProject(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	slug, r := a.selectorValue(inv, field.Field{
		Name:   "slug",
		Prompt: "Slug of project to update",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	payload, r := a.gather(inv, updateProjectFields)
	if r != nil {
		return *r
	}

	if r := a.resolveUsers(inv, payload); r != nil {
		return *r
	}
	singletonList(payload, "slugs")

	records, err := a.Session.Client.UpdateProject(a.Context(), slug, Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

// resolveUsers turns the project's users into a permission record: scripted
// (username, access code) pairs are decoded, interactively entered
// usernames trigger three yes/no questions each.
func (a *App) resolveUsers(inv Invocation, payload field.Payload) *Result {
	if !inv.Interactive {
		if len(inv.AccessCodes) == 0 {
			return nil
		}

		users, err := permission.ParseCodes(inv.AccessCodes)
		if err != nil {
			r := Errf(ErrValidation, "%v", err)
			return &r
		}
		payload["users"] = users
		return nil
	}

	usernames, ok := payload["users"].([]string)
	if !ok {
		return nil
	}

	users, err := permission.Ask(a.Prompt, usernames)
	if err != nil {
		r := Errf(ErrValidation, "reading input: %v", err)
		return &r
	}
	payload["users"] = users
	return nil
}

var getProjectsFields = []field.Field{
	{Name: "include_revisions", Prompt: "Allow revised?", Kind: field.Bool, Optional: true},
	{Name: "include_deleted", Prompt: "Allow deleted?", Kind: field.Bool, Optional: true},
	{Name: "slug", Prompt: "By project slug", Kind: field.String, Optional: true},
}

func getProjects(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, getProjectsFields)
	if r != nil {
		return *r
	}

	projects, err := a.Session.Client.GetProjects(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}

	return a.finishGet(inv, "project", projects)
}

func deleteProject(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	slug, r := a.selectorValue(inv, field.Field{
		Name:   "slug",
		Prompt: "Project slug",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	really, r := a.confirmDelete(inv, slug)
	if r != nil {
		return *r
	}
	if !really {
		return Empty()
	}

	records, err := a.Session.Client.DeleteProject(a.Context(), slug)
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}
