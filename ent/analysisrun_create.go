// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/analysisrun"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// AnalysisRunCreate is the builder for creating a AnalysisRun entity.
type AnalysisRunCreate struct {
	config
	mutation *AnalysisRunMutation
	hooks    []Hook
}

// SetTraceID sets the "trace_id" field.
func (_c *AnalysisRunCreate) SetTraceID(v string) *AnalysisRunCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (_c *AnalysisRunCreate) SetPipelineRunID(v string) *AnalysisRunCreate {
	_c.mutation.SetPipelineRunID(v)
	return _c
}

// SetNillablePipelineRunID sets the "pipeline_run_id" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillablePipelineRunID(v *string) *AnalysisRunCreate {
	if v != nil {
		_c.SetPipelineRunID(*v)
	}
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *AnalysisRunCreate) SetIncidentID(v string) *AnalysisRunCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableIncidentID(v *string) *AnalysisRunCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AnalysisRunCreate) SetProvider(v string) *AnalysisRunCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetProviderConfig sets the "provider_config" field.
func (_c *AnalysisRunCreate) SetProviderConfig(v map[string]interface{}) *AnalysisRunCreate {
	_c.mutation.SetProviderConfig(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *AnalysisRunCreate) SetRecommendations(v []models.Recommendation) *AnalysisRunCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *AnalysisRunCreate) SetTotalTokens(v int) *AnalysisRunCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableTotalTokens(v *int) *AnalysisRunCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisRunCreate) SetStatus(v analysisrun.Status) *AnalysisRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetError sets the "error" field.
func (_c *AnalysisRunCreate) SetError(v string) *AnalysisRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableError(v *string) *AnalysisRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisRunCreate) SetCreatedAt(v time.Time) *AnalysisRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisRunCreate) SetNillableCreatedAt(v *time.Time) *AnalysisRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisRunCreate) SetID(v string) *AnalysisRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIncident sets the "incident" edge to the Incident entity.
func (_c *AnalysisRunCreate) SetIncident(v *Incident) *AnalysisRunCreate {
	return _c.SetIncidentID(v.ID)
}

// Mutation returns the AnalysisRunMutation object of the builder.
func (_c *AnalysisRunCreate) Mutation() *AnalysisRunMutation {
	return _c.mutation
}

// Save creates the AnalysisRun in the database.
func (_c *AnalysisRunCreate) Save(ctx context.Context) (*AnalysisRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRunCreate) SaveX(ctx context.Context) *AnalysisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRunCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRunCreate) check() error {
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "AnalysisRun.trace_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "AnalysisRun.provider"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisRun.created_at"`)}
	}
	return nil
}

func (_c *AnalysisRunCreate) sqlSave(ctx context.Context) (*AnalysisRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AnalysisRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisRunCreate) createSpec() (*AnalysisRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrun.Table, sqlgraph.NewFieldSpec(analysisrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(analysisrun.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.PipelineRunID(); ok {
		_spec.SetField(analysisrun.FieldPipelineRunID, field.TypeString, value)
		_node.PipelineRunID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(analysisrun.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderConfig(); ok {
		_spec.SetField(analysisrun.FieldProviderConfig, field.TypeJSON, value)
		_node.ProviderConfig = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(analysisrun.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(analysisrun.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(analysisrun.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IncidentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrun.IncidentTable,
			Columns: []string{analysisrun.IncidentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IncidentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisRunCreateBulk is the builder for creating many AnalysisRun entities in bulk.
type AnalysisRunCreateBulk struct {
	config
	err      error
	builders []*AnalysisRunCreate
}

// Save creates the AnalysisRun entities in the database.
func (_c *AnalysisRunCreateBulk) Save(ctx context.Context) ([]*AnalysisRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisRunCreateBulk) SaveX(ctx context.Context) []*AnalysisRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
