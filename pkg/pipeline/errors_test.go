package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/conductor/pkg/ingest"
	"github.com/codeready-toolchain/conductor/pkg/notify"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errType   ErrorType
		retryable bool
	}{
		{
			name:      "cancelled context",
			err:       context.Canceled,
			errType:   ErrorTypeCancelled,
			retryable: false,
		},
		{
			name:      "deadline exceeded",
			err:       fmt.Errorf("provider call: %w", context.DeadlineExceeded),
			errType:   ErrorTypeTimeout,
			retryable: true,
		},
		{
			name:      "malformed payload",
			err:       fmt.Errorf("%w: not JSON", ingest.ErrMalformedPayload),
			errType:   ErrorTypeFatal,
			retryable: false,
		},
		{
			name:      "unknown source",
			err:       ingest.ErrUnknownSource,
			errType:   ErrorTypeFatal,
			retryable: false,
		},
		{
			name:      "transient storage",
			err:       fmt.Errorf("%w: connection reset", ingest.ErrTransientStorage),
			errType:   ErrorTypeRetryable,
			retryable: true,
		},
		{
			name:      "validation error",
			err:       services.NewValidationError("payload", "required"),
			errType:   ErrorTypeFatal,
			retryable: false,
		},
		{
			name:      "not found",
			err:       services.ErrNotFound,
			errType:   ErrorTypeFatal,
			retryable: false,
		},
		{
			name:      "permanent delivery failure",
			err:       notify.Permanent(errors.New("missing token")),
			errType:   ErrorTypeFatal,
			retryable: false,
		},
		{
			name:      "unknown error defaults to retryable",
			err:       errors.New("upstream hiccup"),
			errType:   ErrorTypeRetryable,
			retryable: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errType, retryable := Classify(tt.err)
			assert.Equal(t, tt.errType, errType)
			assert.Equal(t, tt.retryable, retryable)
		})
	}
}

func TestStageErrorUnwraps(t *testing.T) {
	base := errors.New("boom")
	err := &StageError{Stage: "check", Attempt: 2, Type: ErrorTypeRetryable, Retryable: true, Err: base}

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "stage check attempt 2")
}
