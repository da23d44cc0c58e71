package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/osuosl/climesync/internal/timesync"
)

// csvFields is the canonical column order per entity type. Fields a record
// does not carry are emitted as empty cells; unknown record fields are not
// exported.
var csvFields = map[string][]string{
	"time": {
		"uuid", "user", "project", "activities", "duration", "date_worked",
		"issue_uri", "notes", "revision", "created_at", "updated_at",
		"deleted_at", "parents",
	},
	"project": {
		"name", "slugs", "uri", "uuid", "default_activity", "users",
		"revision", "created_at", "updated_at", "deleted_at",
	},
	"activity": {
		"name", "slug", "uuid", "revision", "created_at", "updated_at",
		"deleted_at",
	},
	"user": {
		"username", "display_name", "email", "site_admin", "site_manager",
		"site_spectator", "active", "meta", "created_at", "updated_at",
		"deleted_at",
	},
}

// WriteCSV emits records as CSV with the canonical header for entity. Zero
// records still produce the header row.
func WriteCSV(w io.Writer, entity string, records []timesync.Record) error {
	fields, ok := csvFields[entity]
	if !ok {
		return fmt.Errorf("no CSV field list for entity %q", entity)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	row := make([]string, len(fields))
	for _, record := range records {
		for i, f := range fields {
			row[i] = formatCell(record[f])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatCell flattens a record value into a single CSV cell. Lists are
// joined with ";" so a cell never needs nested quoting.
func formatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(value, ";")
	case []any:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = formatCell(item)
		}
		return strings.Join(items, ";")
	case map[string]any:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	default:
		return fmt.Sprint(value)
	}
}
