// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/checkrun"
)

// CheckRunCreate is the builder for creating a CheckRun entity.
type CheckRunCreate struct {
	config
	mutation *CheckRunMutation
	hooks    []Hook
}

// SetCheckerName sets the "checker_name" field.
func (_c *CheckRunCreate) SetCheckerName(v string) *CheckRunCreate {
	_c.mutation.SetCheckerName(v)
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *CheckRunCreate) SetHostname(v string) *CheckRunCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_c *CheckRunCreate) SetNillableHostname(v *string) *CheckRunCreate {
	if v != nil {
		_c.SetHostname(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CheckRunCreate) SetStatus(v checkrun.Status) *CheckRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *CheckRunCreate) SetMessage(v string) *CheckRunCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *CheckRunCreate) SetNillableMessage(v *string) *CheckRunCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *CheckRunCreate) SetMetrics(v map[string]interface{}) *CheckRunCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetError sets the "error" field.
func (_c *CheckRunCreate) SetError(v string) *CheckRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *CheckRunCreate) SetNillableError(v *string) *CheckRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *CheckRunCreate) SetTraceID(v string) *CheckRunCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (_c *CheckRunCreate) SetPipelineRunID(v string) *CheckRunCreate {
	_c.mutation.SetPipelineRunID(v)
	return _c
}

// SetNillablePipelineRunID sets the "pipeline_run_id" field if the given value is not nil.
func (_c *CheckRunCreate) SetNillablePipelineRunID(v *string) *CheckRunCreate {
	if v != nil {
		_c.SetPipelineRunID(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *CheckRunCreate) SetExecutedAt(v time.Time) *CheckRunCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *CheckRunCreate) SetNillableExecutedAt(v *time.Time) *CheckRunCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckRunCreate) SetID(v string) *CheckRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CheckRunMutation object of the builder.
func (_c *CheckRunCreate) Mutation() *CheckRunMutation {
	return _c.mutation
}

// Save creates the CheckRun in the database.
func (_c *CheckRunCreate) Save(ctx context.Context) (*CheckRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckRunCreate) SaveX(ctx context.Context) *CheckRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckRunCreate) defaults() {
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		v := checkrun.DefaultExecutedAt()
		_c.mutation.SetExecutedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckRunCreate) check() error {
	if _, ok := _c.mutation.CheckerName(); !ok {
		return &ValidationError{Name: "checker_name", err: errors.New(`ent: missing required field "CheckRun.checker_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CheckRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := checkrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CheckRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "CheckRun.trace_id"`)}
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		return &ValidationError{Name: "executed_at", err: errors.New(`ent: missing required field "CheckRun.executed_at"`)}
	}
	return nil
}

func (_c *CheckRunCreate) sqlSave(ctx context.Context) (*CheckRun, error) {
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
			return nil, fmt.Errorf("unexpected CheckRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckRunCreate) createSpec() (*CheckRun, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkrun.Table, sqlgraph.NewFieldSpec(checkrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CheckerName(); ok {
		_spec.SetField(checkrun.FieldCheckerName, field.TypeString, value)
		_node.CheckerName = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(checkrun.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checkrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(checkrun.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(checkrun.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(checkrun.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(checkrun.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.PipelineRunID(); ok {
		_spec.SetField(checkrun.FieldPipelineRunID, field.TypeString, value)
		_node.PipelineRunID = value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(checkrun.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = value
	}
	return _node, _spec
}

// CheckRunCreateBulk is the builder for creating many CheckRun entities in bulk.
type CheckRunCreateBulk struct {
	config
	err      error
	builders []*CheckRunCreate
}

// Save creates the CheckRun entities in the database.
func (_c *CheckRunCreateBulk) Save(ctx context.Context) ([]*CheckRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckRunMutation)
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
func (_c *CheckRunCreateBulk) SaveX(ctx context.Context) []*CheckRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
