// Package checks runs the diagnostic checker set for the check stage.
// Checkers are registered at startup; the runner fans them out with bounded
// parallelism and aggregates their results.
package checks

import (
	"context"
	"fmt"
	"sort"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// Checker is one diagnostic probe. Implementations must honor ctx
// cancellation: every external call they make is bounded by the deadline the
// runner supplies.
type Checker interface {
	// Name is the registry key and the CheckResult.checker_name value.
	Name() string

	// Check performs the probe. A degraded target is reported through the
	// returned CheckResult status, not through err; err means the checker
	// itself could not run.
	Check(ctx context.Context) (models.CheckResult, error)
}

// Registry holds the process-wide checker set. Populated at startup and
// read-only afterward.
type Registry struct {
	byName map[string]Checker
}

// NewRegistry creates an empty checker registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Checker)}
}

// Register adds a checker. Duplicate names are a programming error.
func (r *Registry) Register(c Checker) error {
	if _, exists := r.byName[c.Name()]; exists {
		return fmt.Errorf("checker %q already registered", c.Name())
	}
	r.byName[c.Name()] = c
	return nil
}

// Get returns the checker registered under name.
func (r *Registry) Get(name string) (Checker, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns all registered checker names, sorted for deterministic runs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled resolves the checker set for a run: the explicit list when given,
// otherwise every registered checker. Unknown names are reported so a typo
// in config fails loudly instead of silently running nothing.
func (r *Registry) Enabled(names []string) ([]Checker, error) {
	if len(names) == 0 {
		all := make([]Checker, 0, len(r.byName))
		for _, name := range r.Names() {
			all = append(all, r.byName[name])
		}
		return all, nil
	}

	checkers := make([]Checker, 0, len(names))
	for _, name := range names {
		c, ok := r.byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown checker %q", name)
		}
		checkers = append(checkers, c)
	}
	return checkers, nil
}
