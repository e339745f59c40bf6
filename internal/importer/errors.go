package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceUnavailable wraps failures to open or read an import source, or
// a source with no content. Nothing partial is produced in either case.
var ErrSourceUnavailable = errors.New("source unavailable")

// SchemaError reports a column-oriented source that lacks one of the
// required columns. It aborts the import call that raised it; records
// loaded earlier in the session are unaffected.
type SchemaError struct {
	Missing   string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column %q (available columns: %s)",
		e.Missing, strings.Join(e.Available, ", "))
}
