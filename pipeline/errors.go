package pipeline

import (
	"fmt"
	"strings"

	"github.com/transitdata/raptor-gtfs/validate"
)

// ErrValidationFailed wraps a validate.Report whose Errors are
// non-empty; the pipeline fails fast on the first Error-level
// condition in validation (spec §7).
type ErrValidationFailed struct {
	Report *validate.Report
}

func (e *ErrValidationFailed) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Report.Errors, "; "))
}

// ErrInternalAssertion indicates a violated invariant — a bug, not a
// user-facing input problem (spec §7).
type ErrInternalAssertion struct {
	Detail string
}

func (e *ErrInternalAssertion) Error() string {
	return fmt.Sprintf("internal assertion failed: %s", e.Detail)
}

// ErrModeNotImplemented is returned for --mode values the CLI accepts
// syntactically but the engine does not implement.
type ErrModeNotImplemented struct {
	Mode Mode
}

func (e *ErrModeNotImplemented) Error() string {
	return fmt.Sprintf("mode %q is not implemented in this build", e.Mode)
}
