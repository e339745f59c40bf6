package domain

import "fmt"

// ValidationError reports an unrecoverable structural problem with a visit
// record: a blank name or out-of-bounds coordinates. Callers skip the
// offending row or entry; previously accumulated records are unaffected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
