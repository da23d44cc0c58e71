package command

import (
	"strings"
	"time"

	"github.com/osuosl/climesync/internal/field"
	"github.com/osuosl/climesync/internal/render"
)

var createTimeFields = []field.Field{
	{Name: "duration", Prompt: "Duration", Kind: field.Duration},
	{Name: "project", Prompt: "Project slug", Kind: field.String},
	{Name: "activities", Prompt: "Activity slugs", Kind: field.List},
	{Name: "date_worked", Prompt: "Date worked (yyyy-mm-dd)", Kind: field.String},
	{Name: "issue_uri", Prompt: "Issue URI", Kind: field.String, Optional: true},
	{Name: "notes", Prompt: "Notes", Kind: field.String, Optional: true},
}

func createTime(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, createTimeFields)
	if r != nil {
		return *r
	}

	if payload["date_worked"] == "today" {
		payload["date_worked"] = time.Now().Format("2006-01-02")
	}
	singletonList(payload, "activities")

	// Times are always submitted as the authenticated user.
	payload["user"] = a.Session.Username()

	records, err := a.Session.Client.CreateTime(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var updateTimeFields = []field.Field{
	{Name: "duration", Prompt: "Duration", Kind: field.Duration, Optional: true},
	{Name: "project", Prompt: "Project slug", Kind: field.String, Optional: true},
	{Name: "user", Prompt: "New user", Kind: field.String, Optional: true},
	{Name: "activities", Prompt: "Activity slugs", Kind: field.List, Optional: true},
	{Name: "date_worked", Prompt: "Date worked (yyyy-mm-dd)", Kind: field.String, Optional: true},
	{Name: "issue_uri", Prompt: "Issue URI", Kind: field.String, Optional: true},
	{Name: "notes", Prompt: "Notes", Kind: field.String, Optional: true},
}

func updateTime(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	uuid, r := a.selectorValue(inv, field.Field{
		Name:   "uuid",
		Prompt: "UUID of time to update",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	payload, r := a.gather(inv, updateTimeFields)
	if r != nil {
		return *r
	}
	singletonList(payload, "activities")

	records, err := a.Session.Client.UpdateTime(a.Context(), uuid, Record(payload))
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}

var getTimesFields = []field.Field{
	{Name: "user", Prompt: "Submitted by users", Kind: field.List, Optional: true},
	{Name: "project", Prompt: "Belonging to projects", Kind: field.List, Optional: true},
	{Name: "activity", Prompt: "Belonging to activities", Kind: field.List, Optional: true},
	{Name: "start", Prompt: "Beginning on date", Kind: field.String, Optional: true},
	{Name: "end", Prompt: "Ending on date", Kind: field.String, Optional: true},
	{Name: "include_revisions", Prompt: "Allow revised?", Kind: field.Bool, Optional: true},
	{Name: "include_deleted", Prompt: "Allow deleted?", Kind: field.Bool, Optional: true},
	{Name: "uuid", Prompt: "By UUID", Kind: field.String, Optional: true},
}

func getTimes(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, getTimesFields)
	if r != nil {
		return *r
	}

	for _, key := range []string{"user", "project", "activity"} {
		singletonList(payload, key)
	}
	// The API takes date bounds as one-element lists.
	for _, key := range []string{"start", "end"} {
		if v, ok := payload[key]; ok {
			payload[key] = []string{v.(string)}
		}
	}

	times, err := a.Session.Client.GetTimes(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}

	// Rewrite durations for humans unless the server answered with an
	// error record.
	if len(times) > 0 && !isErrorRecord(times[0]) {
		for _, t := range times {
			if seconds, ok := render.DurationSeconds(t["duration"]); ok {
				t["duration"] = render.FormatDuration(seconds)
			}
		}
	}

	return a.finishGet(inv, "time", times)
}

var sumTimesFields = []field.Field{
	{Name: "project", Prompt: "Project slugs", Kind: field.List},
	{Name: "start", Prompt: "Start date (yyyy-mm-dd)", Kind: field.String, Optional: true},
	{Name: "end", Prompt: "End date (yyyy-mm-dd)", Kind: field.String, Optional: true},
}

func sumTimes(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	payload, r := a.gather(inv, sumTimesFields)
	if r != nil {
		return *r
	}
	singletonList(payload, "project")

	times, err := a.Session.Client.GetTimes(a.Context(), Record(payload))
	if err != nil {
		return remoteErr(err)
	}

	projects := payload["project"].([]string)
	totals := make(map[string]int, len(projects))

	// Any record that doesn't carry a numeric duration and a project list
	// means the response isn't summable; hand it back untouched.
	for _, t := range times {
		seconds, ok := render.DurationSeconds(t["duration"])
		if !ok {
			return OkAll(times)
		}

		for _, project := range projects {
			member, ok := projectMatches(t["project"], project)
			if !ok {
				return OkAll(times)
			}
			if member {
				totals[project] += seconds
			}
		}
	}

	for _, project := range projects {
		a.Prompt.Say("")
		a.Prompt.Say("%s", render.Title(project))
		a.Prompt.Say("%s", render.FormatDuration(totals[project]))
	}

	return Empty()
}

// projectMatches reports whether a time record belongs to the project. The
// record's project field is normally a list of slugs, but a lone string is
// matched by substring the way it always has been.
func projectMatches(v any, project string) (member, ok bool) {
	switch value := v.(type) {
	case []any:
		for _, item := range value {
			if item == project {
				return true, true
			}
		}
		return false, true
	case []string:
		for _, item := range value {
			if item == project {
				return true, true
			}
		}
		return false, true
	case string:
		return strings.Contains(value, project), true
	default:
		return false, false
	}
}

func deleteTime(a *App, inv Invocation) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	uuid, r := a.selectorValue(inv, field.Field{
		Name:   "uuid",
		Prompt: "Time UUID",
		Kind:   field.String,
	})
	if r != nil {
		return *r
	}

	really, r := a.confirmDelete(inv, uuid)
	if r != nil {
		return *r
	}
	if !really {
		return Empty()
	}

	records, err := a.Session.Client.DeleteTime(a.Context(), uuid)
	if err != nil {
		return remoteErr(err)
	}
	return OkAll(records)
}
