package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinedefinition"
)

// DefinitionValidator checks a node-graph config before it is persisted.
// The definition package supplies the real implementation; the service only
// cares that invalid configs never reach storage.
type DefinitionValidator func(config map[string]any) error

// DefinitionService manages stored pipeline definitions
type DefinitionService struct {
	client   *ent.Client
	validate DefinitionValidator
}

// NewDefinitionService creates a new DefinitionService. validate may be nil
// to skip admission validation (tests only)
func NewDefinitionService(client *ent.Client, validate DefinitionValidator) *DefinitionService {
	return &DefinitionService{client: client, validate: validate}
}

// CreateDefinition stores a new definition at version 1
func (s *DefinitionService) CreateDefinition(httpCtx context.Context, name, description string, config map[string]any, tags []string) (*ent.PipelineDefinition, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(config) == 0 {
		return nil, NewValidationError("config", "required")
	}
	if s.validate != nil {
		if err := s.validate(config); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.PipelineDefinition.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetConfig(config).
		SetVersion(1)

	if description != "" {
		builder.SetDescription(description)
	}
	if len(tags) > 0 {
		builder.SetTags(tags)
	}

	def, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: definition %q", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("failed to create definition: %w", err)
	}

	return def, nil
}

// UpdateDefinition replaces the config of an existing definition and bumps
// its version
func (s *DefinitionService) UpdateDefinition(httpCtx context.Context, definitionID string, config map[string]any) (*ent.PipelineDefinition, error) {
	if len(config) == 0 {
		return nil, NewValidationError("config", "required")
	}
	if s.validate != nil {
		if err := s.validate(config); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	def, err := s.client.PipelineDefinition.UpdateOneID(definitionID).
		SetConfig(config).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update definition: %w", err)
	}

	return def, nil
}

// GetDefinition retrieves a definition by ID
func (s *DefinitionService) GetDefinition(ctx context.Context, definitionID string) (*ent.PipelineDefinition, error) {
	def, err := s.client.PipelineDefinition.Get(ctx, definitionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get definition: %w", err)
	}

	return def, nil
}

// GetDefinitionByName retrieves a definition by its unique name
func (s *DefinitionService) GetDefinitionByName(ctx context.Context, name string) (*ent.PipelineDefinition, error) {
	def, err := s.client.PipelineDefinition.Query().
		Where(pipelinedefinition.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get definition: %w", err)
	}

	return def, nil
}

// ListDefinitions retrieves definitions, optionally only active ones
func (s *DefinitionService) ListDefinitions(ctx context.Context, activeOnly bool) ([]*ent.PipelineDefinition, error) {
	query := s.client.PipelineDefinition.Query().
		Order(ent.Asc(pipelinedefinition.FieldName))

	if activeOnly {
		query = query.Where(pipelinedefinition.IsActive(true))
	}

	defs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	return defs, nil
}

// SetActive enables or disables execution of a definition
func (s *DefinitionService) SetActive(ctx context.Context, definitionID string, active bool) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.PipelineDefinition.UpdateOneID(definitionID).
		SetIsActive(active).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set definition active flag: %w", err)
	}
	return nil
}
