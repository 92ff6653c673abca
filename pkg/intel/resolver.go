package intel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
	"github.com/codeready-toolchain/conductor/pkg/config"
)

// Resolver selects the active provider from the database. The snapshot is
// cached briefly so the analyze stage does not hit the providers table on
// every run; the partial unique index guarantees at most one active row.
type Resolver struct {
	db  *ent.Client
	ttl time.Duration

	mu       sync.Mutex
	cached   Provider
	cachedAt time.Time
}

// NewResolver creates a resolver over the given Ent client.
func NewResolver(db *ent.Client, cfg *config.IntelConfig) *Resolver {
	return &Resolver{db: db, ttl: cfg.ProviderCacheTTL}
}

// Active returns the provider to use for analysis. No active row, a broken
// row, or a storage error all resolve to the local rule engine; analysis must
// not fail because provider configuration does.
func (r *Resolver) Active(ctx context.Context) Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && time.Since(r.cachedAt) < r.ttl {
		return r.cached
	}

	provider := r.resolve(ctx)
	r.cached = provider
	r.cachedAt = time.Now()
	return provider
}

// Invalidate drops the cached snapshot. Called after provider rows change.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}

func (r *Resolver) resolve(ctx context.Context) Provider {
	row, err := r.db.IntelligenceProvider.Query().
		Where(intelligenceprovider.IsActive(true)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to load active provider, using local rule engine", "error", err)
		}
		return NewLocalProvider()
	}

	provider, err := NewProviderFromConfig(row.ProviderType, row.Config)
	if err != nil {
		slog.Warn("Active provider config is unusable, using local rule engine",
			"provider", row.Name, "type", row.ProviderType, "error", err)
		return NewLocalProvider()
	}

	slog.Debug("Resolved active provider", "provider", row.Name, "type", row.ProviderType)
	return provider
}
