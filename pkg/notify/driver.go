// Package notify delivers notification messages through configured channels.
// Channel rows live in the database; each row names a driver registered here.
// Delivery is at-least-once: the dedup key on the message lets receivers
// collapse replays.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// Driver renders and delivers a message through one transport.
type Driver interface {
	// Name is the registry key and the NotificationChannel.driver value.
	Name() string

	// Send delivers the message using the channel's config. Errors are
	// retryable unless wrapped with Permanent.
	Send(ctx context.Context, msg models.NotificationMessage, channelConfig map[string]any) error
}

// Registry holds the process-wide driver set. Populated at startup and
// read-only afterward.
type Registry struct {
	byName map[string]Driver
}

// NewRegistry creates an empty notification driver registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Driver)}
}

// Register adds a driver. Duplicate names are a programming error.
func (r *Registry) Register(d Driver) error {
	if _, exists := r.byName[d.Name()]; exists {
		return fmt.Errorf("notify driver %q already registered", d.Name())
	}
	r.byName[d.Name()] = d
	return nil
}

// Get returns the driver registered under name.
func (r *Registry) Get(name string) (Driver, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// permanentError marks a delivery failure that retrying cannot fix
// (bad channel config, rejected payload).
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err to mark the delivery failure as not retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err (or anything it wraps) is permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}
