package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/ingest"
	"github.com/codeready-toolchain/conductor/pkg/notify"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

// ErrorType classifies a stage failure for retry decisions and reporting.
type ErrorType string

// Error types recorded on StageExecution and PipelineRun rows.
const (
	ErrorTypeRetryable ErrorType = "retryable"
	ErrorTypeFatal     ErrorType = "fatal"
	ErrorTypeTimeout   ErrorType = "timeout"
	ErrorTypeCancelled ErrorType = "cancelled"
)

// StageError is the failure of one stage attempt, carrying its
// classification.
type StageError struct {
	Stage     string
	Attempt   int
	Type      ErrorType
	Retryable bool
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s attempt %d failed (%s): %v", e.Stage, e.Attempt, e.Type, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Classify maps a stage error to its type and retryability. Unknown errors
// default to retryable: transient upstream trouble is far more common than a
// novel permanent failure, and the retry budget bounds the damage.
func Classify(err error) (ErrorType, bool) {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrorTypeCancelled, false
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeTimeout, true
	case errors.Is(err, ingest.ErrMalformedPayload),
		errors.Is(err, ingest.ErrUnknownSource):
		return ErrorTypeFatal, false
	case errors.Is(err, ingest.ErrTransientStorage):
		return ErrorTypeRetryable, true
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrInvalidTransition):
		return ErrorTypeFatal, false
	case services.IsValidationError(err):
		return ErrorTypeFatal, false
	case notify.IsPermanent(err):
		return ErrorTypeFatal, false
	default:
		return ErrorTypeRetryable, true
	}
}
