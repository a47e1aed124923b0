package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError is the error type produced by the builder. It carries a hint
// suitable for surfacing to a human and optional reportable details for
// structured responses, on top of the wrapped cause chain.
type InternalError struct {
	err               error
	hint              string
	reportableDetails map[string]any
}

func (e *InternalError) Error() string {
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

// Hint returns the human-facing hint attached to the error, if any.
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns the structured details attached to the error.
func (e *InternalError) ReportableDetails() map[string]any {
	return e.reportableDetails
}

// ErrorBuilder assembles an InternalError. Terminate the chain with Mark to
// attach the sentinel kind and obtain the error value.
type ErrorBuilder struct {
	err               error
	hint              string
	reportableDetails map[string]any
}

// NewError starts building an error with the given message.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// NewErrorf starts building an error with a formatted message.
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return &ErrorBuilder{err: errors.Newf(format, args...)}
}

// WithError starts building from an existing cause, preserving its chain.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint attaches a human-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hint = hint
	return b
}

// WithHintf attaches a formatted human-facing hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details that are safe to return
// to the caller.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.reportableDetails = details
	return b
}

// Mark finalizes the error, making errors.Is(err, sentinel) true.
func (b *ErrorBuilder) Mark(sentinel error) error {
	return &InternalError{
		err:               errors.Mark(b.err, sentinel),
		hint:              b.hint,
		reportableDetails: b.reportableDetails,
	}
}

// Hint extracts the hint from an error produced by this package. Returns the
// empty string when the error carries none.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.Hint()
	}
	return ""
}

// ReportableDetails extracts the structured details from an error produced by
// this package.
func ReportableDetails(err error) map[string]any {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.ReportableDetails()
	}
	return nil
}
