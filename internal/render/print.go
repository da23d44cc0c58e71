// Package render formats TimeSync records for humans and for CSV export.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/osuosl/climesync/internal/timesync"
)

// Records prints a blank-line-separated "key: value" dump per record. Keys
// are sorted for stable output.
func Records(w io.Writer, records []timesync.Record) {
	fmt.Fprintln(w)

	for _, record := range records {
		keys := make([]string, 0, len(record))
		for k := range record {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(w, "%s %s\n", keyStyle.Render(k+":"), formatValue(record[k]))
		}
		fmt.Fprintln(w)
	}
}

// Note prints an informational message, e.g. "No times were returned".
func Note(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n\n", noteStyle.Render("note: "+msg))
}

// Error prints an error-shaped result. label distinguishes server errors
// ("error") from client-side ones ("climesync error").
func Error(w io.Writer, label, msg string) {
	fmt.Fprintf(w, "\n%s\n\n", errorStyle.Render(label+": "+msg))
}

// Title styles a section heading, such as the project name in sum-times
// output.
func Title(text string) string {
	return titleStyle.Render(text)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case []string:
		return strings.Join(value, ", ")
	case []any:
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = formatValue(item)
		}
		return strings.Join(items, ", ")
	case map[string]any:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
