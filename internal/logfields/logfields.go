package logfields

import "log/slog"

// Canonical log field names shared by the library and the CLI.
const (
	KeyOldCapacity = "old_capacity"
	KeyNewCapacity = "new_capacity"
	KeyCount       = "count"
	KeyFormat      = "format"
	KeyArgs        = "args"
	KeyError       = "error"
)

func OldCapacity(n int) slog.Attr { return slog.Int(KeyOldCapacity, n) }
func NewCapacity(n int) slog.Attr { return slog.Int(KeyNewCapacity, n) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Format(f string) slog.Attr   { return slog.String(KeyFormat, f) }
func Args(n int) slog.Attr        { return slog.Int(KeyArgs, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
