package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySlug       = "slug"
	KeyLanguage   = "language"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyPages      = "pages"
	KeyGroups     = "groups"
	KeyAnchors    = "anchors"
	KeySession    = "session"
	KeyURL        = "url"
	KeySubject    = "subject"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Language(l string) slog.Attr     { return slog.String(KeyLanguage, l) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Groups(n int) slog.Attr          { return slog.Int(KeyGroups, n) }
func Anchors(n int) slog.Attr         { return slog.Int(KeyAnchors, n) }
func Session(id string) slog.Attr     { return slog.String(KeySession, id) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Subject(s string) slog.Attr      { return slog.String(KeySubject, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// HTTP request fields.
const (
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyRemoteAddr = "remote_addr"
	KeyRequestID  = "request_id"
)

func Method(m string) slog.Attr     { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr     { return slog.Int(KeyStatus, code) }
func RemoteAddr(a string) slog.Attr { return slog.String(KeyRemoteAddr, a) }
func RequestID(id string) slog.Attr { return slog.String(KeyRequestID, id) }
