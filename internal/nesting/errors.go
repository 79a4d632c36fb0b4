package nesting

import "fmt"

// ConfigError reports construction-time misconfiguration: non-positive
// sheet or piece dimensions, a negative cost, or a malformed charging
// policy. It is returned as a value, never panicked, so the pipeline stays
// usable in hot request paths.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid nesting configuration: %s: %s", e.Field, e.Reason)
}

// GeometryError reports that a piece cannot be nested on the given sheet
// under any orientation and no oversize rule authorizes continuation. The
// caller is expected to present this as "this size cannot be produced on
// this material".
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "cannot nest piece: " + e.Reason
}
