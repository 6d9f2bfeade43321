package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyFormat     = "format"
	KeySection    = "section"
	KeyDocument   = "document"
	KeyOutcome    = "outcome"
	KeyCount      = "count"
	KeyBase       = "base"
	KeyEvent      = "event"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
	KeyRunID      = "run_id"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Document(d string) slog.Attr     { return slog.String(KeyDocument, d) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Base(b string) slog.Attr         { return slog.String(KeyBase, b) }
func Event(e string) slog.Attr        { return slog.String(KeyEvent, e) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
