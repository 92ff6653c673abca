// Package ingest turns native monitoring webhooks into normalized alerts and
// deduplicated incidents. Each supported source has a Driver; the Normalizer
// owns the dedup/update policy on top of whatever a driver produced.
package ingest

import (
	"fmt"
	"sort"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// Driver converts one monitoring source's native webhook shape into
// normalized alerts.
type Driver interface {
	// Name is the registry key and the value stored in Alert.source.
	Name() string

	// Priority orders source detection: higher-priority probes run first.
	// The generic driver carries the lowest priority so it only wins when
	// nothing specific matched.
	Priority() int

	// Probe reports whether the payload looks like this driver's native shape.
	Probe(payload map[string]any) bool

	// Normalize maps the payload to normalized alerts. A payload that probed
	// positive but is structurally broken returns ErrMalformedPayload.
	Normalize(payload map[string]any) ([]models.NormalizedAlert, error)
}

// Registry holds the process-wide driver set. Populated at startup and
// read-only afterward, so lookups need no locking.
type Registry struct {
	byName map[string]Driver
	probes []Driver // detection order: priority desc, name asc
}

// NewRegistry creates an empty driver registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Driver)}
}

// Register adds a driver. Duplicate names are a programming error.
func (r *Registry) Register(d Driver) error {
	if _, exists := r.byName[d.Name()]; exists {
		return fmt.Errorf("driver %q already registered", d.Name())
	}
	r.byName[d.Name()] = d
	r.probes = append(r.probes, d)
	sort.SliceStable(r.probes, func(i, j int) bool {
		if r.probes[i].Priority() != r.probes[j].Priority() {
			return r.probes[i].Priority() > r.probes[j].Priority()
		}
		return r.probes[i].Name() < r.probes[j].Name()
	})
	return nil
}

// Get returns the driver registered under name.
func (r *Registry) Get(name string) (Driver, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return d, nil
}

// Detect probes registered drivers from most to least specific and returns
// the first match. The generic driver accepts any JSON object, so detection
// never fails once it is registered.
func (r *Registry) Detect(payload map[string]any) (Driver, error) {
	for _, d := range r.probes {
		if d.Probe(payload) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: no driver matched payload", ErrUnknownSource)
}

// Names returns the registered driver names sorted by detection order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.probes))
	for _, d := range r.probes {
		names = append(names, d.Name())
	}
	return names
}

// DefaultRegistry returns a registry with every built-in driver.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range []Driver{
		&AlertmanagerDriver{},
		&GrafanaDriver{},
		&PagerDutyDriver{},
		&NewRelicDriver{},
		&DatadogDriver{},
		&ZabbixDriver{},
		&OpsgenieDriver{},
		&GenericDriver{},
	} {
		// Built-in names are unique by construction.
		_ = r.Register(d)
	}
	return r
}

// --- shared payload helpers ---

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func getSlice(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

// getStringMap converts a JSON object of string values to map[string]string,
// skipping non-string entries.
func getStringMap(m map[string]any, key string) map[string]string {
	obj := getMap(m, key)
	if obj == nil {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := getString(m, k); s != "" {
			return s
		}
	}
	return ""
}
