// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
)

// StageExecutionCreate is the builder for creating a StageExecution entity.
type StageExecutionCreate struct {
	config
	mutation *StageExecutionMutation
	hooks    []Hook
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (_c *StageExecutionCreate) SetPipelineRunID(v string) *StageExecutionCreate {
	_c.mutation.SetPipelineRunID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *StageExecutionCreate) SetStage(v string) *StageExecutionCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *StageExecutionCreate) SetNodeID(v string) *StageExecutionCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableNodeID(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetNodeID(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *StageExecutionCreate) SetAttempt(v int) *StageExecutionCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *StageExecutionCreate) SetIdempotencyKey(v string) *StageExecutionCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageExecutionCreate) SetStatus(v stageexecution.Status) *StageExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStatus(v *stageexecution.Status) *StageExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputRef sets the "input_ref" field.
func (_c *StageExecutionCreate) SetInputRef(v string) *StageExecutionCreate {
	_c.mutation.SetInputRef(v)
	return _c
}

// SetNillableInputRef sets the "input_ref" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableInputRef(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetInputRef(*v)
	}
	return _c
}

// SetOutputRef sets the "output_ref" field.
func (_c *StageExecutionCreate) SetOutputRef(v string) *StageExecutionCreate {
	_c.mutation.SetOutputRef(v)
	return _c
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableOutputRef(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetOutputRef(*v)
	}
	return _c
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_c *StageExecutionCreate) SetOutputSnapshot(v map[string]interface{}) *StageExecutionCreate {
	_c.mutation.SetOutputSnapshot(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *StageExecutionCreate) SetErrorType(v string) *StageExecutionCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorType(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StageExecutionCreate) SetErrorMessage(v string) *StageExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorMessage(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorStack sets the "error_stack" field.
func (_c *StageExecutionCreate) SetErrorStack(v string) *StageExecutionCreate {
	_c.mutation.SetErrorStack(v)
	return _c
}

// SetNillableErrorStack sets the "error_stack" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorStack(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorStack(*v)
	}
	return _c
}

// SetErrorRetryable sets the "error_retryable" field.
func (_c *StageExecutionCreate) SetErrorRetryable(v bool) *StageExecutionCreate {
	_c.mutation.SetErrorRetryable(v)
	return _c
}

// SetNillableErrorRetryable sets the "error_retryable" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableErrorRetryable(v *bool) *StageExecutionCreate {
	if v != nil {
		_c.SetErrorRetryable(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *StageExecutionCreate) SetSkipReason(v string) *StageExecutionCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableSkipReason(v *string) *StageExecutionCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageExecutionCreate) SetStartedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableStartedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageExecutionCreate) SetCompletedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCompletedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageExecutionCreate) SetDurationMs(v int) *StageExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableDurationMs(v *int) *StageExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageExecutionCreate) SetCreatedAt(v time.Time) *StageExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageExecutionCreate) SetNillableCreatedAt(v *time.Time) *StageExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageExecutionCreate) SetID(v string) *StageExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPipelineRun sets the "pipeline_run" edge to the PipelineRun entity.
func (_c *StageExecutionCreate) SetPipelineRun(v *PipelineRun) *StageExecutionCreate {
	return _c.SetPipelineRunID(v.ID)
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_c *StageExecutionCreate) Mutation() *StageExecutionMutation {
	return _c.mutation
}

// Save creates the StageExecution in the database.
func (_c *StageExecutionCreate) Save(ctx context.Context) (*StageExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageExecutionCreate) SaveX(ctx context.Context) *StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageExecutionCreate) defaults() {
	if _, ok := _c.mutation.NodeID(); !ok {
		v := stageexecution.DefaultNodeID
		_c.mutation.SetNodeID(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := stageexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorRetryable(); !ok {
		v := stageexecution.DefaultErrorRetryable
		_c.mutation.SetErrorRetryable(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageExecutionCreate) check() error {
	if _, ok := _c.mutation.PipelineRunID(); !ok {
		return &ValidationError{Name: "pipeline_run_id", err: errors.New(`ent: missing required field "StageExecution.pipeline_run_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "StageExecution.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := stageexecution.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageExecution.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "StageExecution.attempt"`)}
	}
	if v, ok := _c.mutation.Attempt(); ok {
		if err := stageexecution.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "StageExecution.attempt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "StageExecution.idempotency_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorRetryable(); !ok {
		return &ValidationError{Name: "error_retryable", err: errors.New(`ent: missing required field "StageExecution.error_retryable"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageExecution.created_at"`)}
	}
	if len(_c.mutation.PipelineRunIDs()) == 0 {
		return &ValidationError{Name: "pipeline_run", err: errors.New(`ent: missing required edge "StageExecution.pipeline_run"`)}
	}
	return nil
}

func (_c *StageExecutionCreate) sqlSave(ctx context.Context) (*StageExecution, error) {
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
			return nil, fmt.Errorf("unexpected StageExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageExecutionCreate) createSpec() (*StageExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StageExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageexecution.Table, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(stageexecution.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(stageexecution.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(stageexecution.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(stageexecution.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputRef(); ok {
		_spec.SetField(stageexecution.FieldInputRef, field.TypeString, value)
		_node.InputRef = value
	}
	if value, ok := _c.mutation.OutputRef(); ok {
		_spec.SetField(stageexecution.FieldOutputRef, field.TypeString, value)
		_node.OutputRef = value
	}
	if value, ok := _c.mutation.OutputSnapshot(); ok {
		_spec.SetField(stageexecution.FieldOutputSnapshot, field.TypeJSON, value)
		_node.OutputSnapshot = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(stageexecution.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorStack(); ok {
		_spec.SetField(stageexecution.FieldErrorStack, field.TypeString, value)
		_node.ErrorStack = &value
	}
	if value, ok := _c.mutation.ErrorRetryable(); ok {
		_spec.SetField(stageexecution.FieldErrorRetryable, field.TypeBool, value)
		_node.ErrorRetryable = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(stageexecution.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stageexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PipelineRunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stageexecution.PipelineRunTable,
			Columns: []string{stageexecution.PipelineRunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PipelineRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageExecutionCreateBulk is the builder for creating many StageExecution entities in bulk.
type StageExecutionCreateBulk struct {
	config
	err      error
	builders []*StageExecutionCreate
}

// Save creates the StageExecution entities in the database.
func (_c *StageExecutionCreateBulk) Save(ctx context.Context) ([]*StageExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageExecutionMutation)
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
func (_c *StageExecutionCreateBulk) SaveX(ctx context.Context) []*StageExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
