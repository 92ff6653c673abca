package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
)

// knownProviderTypes are the provider types the analysis stage can build.
var knownProviderTypes = map[string]bool{
	"local":     true,
	"openai":    true,
	"anthropic": true,
}

// ProviderService manages intelligence provider config rows. At most one
// provider is active at a time; the partial unique index backs that up at
// the storage level
type ProviderService struct {
	client *ent.Client
	// onChange is called after any mutation so the analysis stage can
	// invalidate its cached active provider. May be nil.
	onChange func()
}

// NewProviderService creates a new ProviderService. onChange may be nil
func NewProviderService(client *ent.Client, onChange func()) *ProviderService {
	return &ProviderService{client: client, onChange: onChange}
}

func (s *ProviderService) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

// CreateProvider stores a new provider config, inactive by default
func (s *ProviderService) CreateProvider(httpCtx context.Context, name, providerType string, config map[string]any) (*ent.IntelligenceProvider, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if !knownProviderTypes[providerType] {
		return nil, NewValidationError("provider_type", "invalid: must be 'local', 'openai' or 'anthropic'")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.IntelligenceProvider.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetProviderType(providerType)

	if config != nil {
		builder.SetConfig(config)
	}

	provider, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: provider %q", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return provider, nil
}

// Activate makes the given provider the single active one. The previous
// active provider (if any) is deactivated in the same transaction
func (s *ProviderService) Activate(ctx context.Context, providerID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.IntelligenceProvider.Get(writeCtx, providerID); err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get provider: %w", err)
	}

	// Clear the current active row first so the partial unique index never
	// sees two active providers.
	if _, err := tx.IntelligenceProvider.Update().
		Where(intelligenceprovider.IsActive(true)).
		SetIsActive(false).
		Save(writeCtx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to deactivate providers: %w", err)
	}

	if err := tx.IntelligenceProvider.UpdateOneID(providerID).
		SetIsActive(true).
		Exec(writeCtx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to activate provider: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit provider activation: %w", err)
	}

	s.notifyChange()
	return nil
}

// Deactivate turns a provider off; analysis falls back to the local rule
// engine while no provider is active
func (s *ProviderService) Deactivate(ctx context.Context, providerID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.IntelligenceProvider.UpdateOneID(providerID).
		SetIsActive(false).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to deactivate provider: %w", err)
	}

	s.notifyChange()
	return nil
}

// GetProvider retrieves a provider by ID
func (s *ProviderService) GetProvider(ctx context.Context, providerID string) (*ent.IntelligenceProvider, error) {
	provider, err := s.client.IntelligenceProvider.Get(ctx, providerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	return provider, nil
}

// ListProviders retrieves all provider configs
func (s *ProviderService) ListProviders(ctx context.Context) ([]*ent.IntelligenceProvider, error) {
	providers, err := s.client.IntelligenceProvider.Query().
		Order(ent.Asc(intelligenceprovider.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	return providers, nil
}
