package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyDir        = "dir"
	KeySlug       = "slug"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyURL        = "url"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Dir(d string) slog.Attr          { return slog.String(KeyDir, d) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
