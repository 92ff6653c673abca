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

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetTraceID sets the "trace_id" field.
func (_c *PipelineRunCreate) SetTraceID(v string) *PipelineRunCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *PipelineRunCreate) SetMode(v pipelinerun.Mode) *PipelineRunCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableMode(v *pipelinerun.Mode) *PipelineRunCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *PipelineRunCreate) SetSource(v string) *PipelineRunCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableSource(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetEnvironment sets the "environment" field.
func (_c *PipelineRunCreate) SetEnvironment(v string) *PipelineRunCreate {
	_c.mutation.SetEnvironment(v)
	return _c
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableEnvironment(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetEnvironment(*v)
	}
	return _c
}

// SetDefinitionName sets the "definition_name" field.
func (_c *PipelineRunCreate) SetDefinitionName(v string) *PipelineRunCreate {
	_c.mutation.SetDefinitionName(v)
	return _c
}

// SetNillableDefinitionName sets the "definition_name" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableDefinitionName(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetDefinitionName(*v)
	}
	return _c
}

// SetDefinitionVersion sets the "definition_version" field.
func (_c *PipelineRunCreate) SetDefinitionVersion(v int) *PipelineRunCreate {
	_c.mutation.SetDefinitionVersion(v)
	return _c
}

// SetNillableDefinitionVersion sets the "definition_version" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableDefinitionVersion(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetDefinitionVersion(*v)
	}
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *PipelineRunCreate) SetIncidentID(v string) *PipelineRunCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableIncidentID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *PipelineRunCreate) SetCurrentStage(v string) *PipelineRunCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCurrentStage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PipelineRunCreate) SetPayload(v map[string]interface{}) *PipelineRunCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *PipelineRunCreate) SetTotalAttempts(v int) *PipelineRunCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTotalAttempts(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *PipelineRunCreate) SetMaxRetries(v int) *PipelineRunCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableMaxRetries(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetLastErrorType sets the "last_error_type" field.
func (_c *PipelineRunCreate) SetLastErrorType(v string) *PipelineRunCreate {
	_c.mutation.SetLastErrorType(v)
	return _c
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableLastErrorType(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetLastErrorType(*v)
	}
	return _c
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_c *PipelineRunCreate) SetLastErrorMessage(v string) *PipelineRunCreate {
	_c.mutation.SetLastErrorMessage(v)
	return _c
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableLastErrorMessage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetLastErrorMessage(*v)
	}
	return _c
}

// SetLastErrorRetryable sets the "last_error_retryable" field.
func (_c *PipelineRunCreate) SetLastErrorRetryable(v bool) *PipelineRunCreate {
	_c.mutation.SetLastErrorRetryable(v)
	return _c
}

// SetNillableLastErrorRetryable sets the "last_error_retryable" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableLastErrorRetryable(v *bool) *PipelineRunCreate {
	if v != nil {
		_c.SetLastErrorRetryable(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_c *PipelineRunCreate) SetTotalDurationMs(v int) *PipelineRunCreate {
	_c.mutation.SetTotalDurationMs(v)
	return _c
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTotalDurationMs(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetTotalDurationMs(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PipelineRunCreate) SetPodID(v string) *PipelineRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillablePodID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *PipelineRunCreate) SetLastInteractionAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableLastInteractionAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_c *PipelineRunCreate) AddStageExecutionIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddStageExecutionIDs(ids...)
	return _c
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_c *PipelineRunCreate) AddStageExecutions(v ...*StageExecution) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageExecutionIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := pipelinerun.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := pipelinerun.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := pipelinerun.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "PipelineRun.trace_id"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "PipelineRun.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := pipelinerun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "PipelineRun.total_attempts"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "PipelineRun.max_retries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(pipelinerun.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(pipelinerun.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(pipelinerun.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Environment(); ok {
		_spec.SetField(pipelinerun.FieldEnvironment, field.TypeString, value)
		_node.Environment = value
	}
	if value, ok := _c.mutation.DefinitionName(); ok {
		_spec.SetField(pipelinerun.FieldDefinitionName, field.TypeString, value)
		_node.DefinitionName = &value
	}
	if value, ok := _c.mutation.DefinitionVersion(); ok {
		_spec.SetField(pipelinerun.FieldDefinitionVersion, field.TypeInt, value)
		_node.DefinitionVersion = &value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(pipelinerun.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(pipelinerun.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(pipelinerun.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(pipelinerun.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.LastErrorType(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorType, field.TypeString, value)
		_node.LastErrorType = &value
	}
	if value, ok := _c.mutation.LastErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorMessage, field.TypeString, value)
		_node.LastErrorMessage = &value
	}
	if value, ok := _c.mutation.LastErrorRetryable(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorRetryable, field.TypeBool, value)
		_node.LastErrorRetryable = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.TotalDurationMs(); ok {
		_spec.SetField(pipelinerun.FieldTotalDurationMs, field.TypeInt, value)
		_node.TotalDurationMs = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(pipelinerun.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.StageExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StageExecutionsTable,
			Columns: []string{pipelinerun.StageExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
