// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/stageoutput"
)

// StageOutputCreate is the builder for creating a StageOutput entity.
type StageOutputCreate struct {
	config
	mutation *StageOutputMutation
	hooks    []Hook
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (_c *StageOutputCreate) SetPipelineRunID(v string) *StageOutputCreate {
	_c.mutation.SetPipelineRunID(v)
	return _c
}

// SetData sets the "data" field.
func (_c *StageOutputCreate) SetData(v map[string]interface{}) *StageOutputCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageOutputCreate) SetCreatedAt(v time.Time) *StageOutputCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageOutputCreate) SetNillableCreatedAt(v *time.Time) *StageOutputCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageOutputCreate) SetID(v string) *StageOutputCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StageOutputMutation object of the builder.
func (_c *StageOutputCreate) Mutation() *StageOutputMutation {
	return _c.mutation
}

// Save creates the StageOutput in the database.
func (_c *StageOutputCreate) Save(ctx context.Context) (*StageOutput, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageOutputCreate) SaveX(ctx context.Context) *StageOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageOutputCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageOutputCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageOutputCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageoutput.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageOutputCreate) check() error {
	if _, ok := _c.mutation.PipelineRunID(); !ok {
		return &ValidationError{Name: "pipeline_run_id", err: errors.New(`ent: missing required field "StageOutput.pipeline_run_id"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "StageOutput.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageOutput.created_at"`)}
	}
	return nil
}

func (_c *StageOutputCreate) sqlSave(ctx context.Context) (*StageOutput, error) {
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
			return nil, fmt.Errorf("unexpected StageOutput.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageOutputCreate) createSpec() (*StageOutput, *sqlgraph.CreateSpec) {
	var (
		_node = &StageOutput{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageoutput.Table, sqlgraph.NewFieldSpec(stageoutput.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PipelineRunID(); ok {
		_spec.SetField(stageoutput.FieldPipelineRunID, field.TypeString, value)
		_node.PipelineRunID = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(stageoutput.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageoutput.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StageOutputCreateBulk is the builder for creating many StageOutput entities in bulk.
type StageOutputCreateBulk struct {
	config
	err      error
	builders []*StageOutputCreate
}

// Save creates the StageOutput entities in the database.
func (_c *StageOutputCreateBulk) Save(ctx context.Context) ([]*StageOutput, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageOutput, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageOutputMutation)
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
func (_c *StageOutputCreateBulk) SaveX(ctx context.Context) []*StageOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageOutputCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageOutputCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
