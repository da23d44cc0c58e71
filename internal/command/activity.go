package command

import "github.com/osuosl/climesync/internal/field"

var createActivityFields = []field.Field{
	{Name: "name", Prompt: "Activity name", Kind: field.String},
	{Name: "slug", Prompt: "Activity slug", Kind: field.String},
}

func createActivity(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, createActivityFields)
	if r != nil {
		return *r
	}

	records, err := a.Session.Client.CreateActivity(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var updateActivityFields = []field.Field{
	{Name: "name", Prompt: "Updated activity name", Kind: field.String, Optional: true},
	{Name: "slug", Prompt: "Updated activity slug", Kind: field.String, Optional: true},
}

func updateActivity(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	slug, r := a.selectorValue(inv, field.Field{
		Name:   "old_slug",
		Prompt: "Slug of activity to update",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	payload, r := a.gather(inv, updateActivityFields)
	if r != nil {
		return *r
	}

	records, err := a.Session.Client.UpdateActivity(a.Context(), slug, Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var getActivitiesFields = []field.Field{
	{Name: "include_revisions", Prompt: "Allow revised?", Kind: field.Bool, Optional: true},
	{Name: "include_deleted", Prompt: "Allow deleted?", Kind: field.Bool, Optional: true},
	{Name: "slug", Prompt: "By activity slug", Kind: field.String, Optional: true},
}

func getActivities(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, getActivitiesFields)
	if r != nil {
		return *r
	}

	activities, err := a.Session.Client.GetActivities(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}

	return a.finishGet(inv, "activity", activities)
}

func deleteActivity(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	slug, r := a.selectorValue(inv, field.Field{
		Name:   "slug",
		Prompt: "Activity slug",
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

	records, err := a.Session.Client.DeleteActivity(a.Context(), slug)
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}
