package ingest

import "errors"

var (
	// ErrMalformedPayload indicates the webhook body could not be interpreted.
	// Never retried: replaying the same bytes cannot succeed.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUnknownSource indicates the source hint names no registered driver.
	ErrUnknownSource = errors.New("unknown source")

	// ErrTransientStorage indicates the database rejected the write for a
	// reason that may clear up. Safe to retry.
	ErrTransientStorage = errors.New("transient storage failure")
)
