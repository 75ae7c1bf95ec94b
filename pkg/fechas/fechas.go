package fechas

import (
	"fmt"
	"strings"
	"time"
)

// LayoutLocal is the canonical timestamp shape used across the API:
// local time, no zone designator, whole seconds (YYYY-MM-DDTHH:mm:ss).
const LayoutLocal = "2006-01-02T15:04:05"

// AhoraLocal returns the current local time truncated to whole seconds.
func AhoraLocal() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location())
}

// FormatLocal renders t in the canonical local layout.
func FormatLocal(t time.Time) string {
	return t.Local().Format(LayoutLocal)
}

// Parse accepts the canonical layout plus the shapes browsers and the UI
// date pickers actually send. The result keeps whole-second precision.
func Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	layouts := []string{
		LayoutLocal,
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, raw, time.Local); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", raw)
}
