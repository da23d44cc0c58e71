package render

import "fmt"

// FormatDuration renders a number of seconds in the "1h 2m 1s" form used
// for human-readable time dumps and sum-times totals.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds%60)
}

// DurationSeconds extracts an integer duration from a record field. JSON
// numbers arrive as float64; anything else is not a duration.
func DurationSeconds(v any) (int, bool) {
	switch value := v.(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	default:
		return 0, false
	}
}
