// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/predicate"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *PipelineRunUpdate) SetMode(v pipelinerun.Mode) *PipelineRunUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableMode(v *pipelinerun.Mode) *PipelineRunUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *PipelineRunUpdate) SetSource(v string) *PipelineRunUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableSource(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *PipelineRunUpdate) ClearSource() *PipelineRunUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *PipelineRunUpdate) SetEnvironment(v string) *PipelineRunUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableEnvironment(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// ClearEnvironment clears the value of the "environment" field.
func (_u *PipelineRunUpdate) ClearEnvironment() *PipelineRunUpdate {
	_u.mutation.ClearEnvironment()
	return _u
}

// SetDefinitionName sets the "definition_name" field.
func (_u *PipelineRunUpdate) SetDefinitionName(v string) *PipelineRunUpdate {
	_u.mutation.SetDefinitionName(v)
	return _u
}

// SetNillableDefinitionName sets the "definition_name" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableDefinitionName(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetDefinitionName(*v)
	}
	return _u
}

// ClearDefinitionName clears the value of the "definition_name" field.
func (_u *PipelineRunUpdate) ClearDefinitionName() *PipelineRunUpdate {
	_u.mutation.ClearDefinitionName()
	return _u
}

// SetDefinitionVersion sets the "definition_version" field.
func (_u *PipelineRunUpdate) SetDefinitionVersion(v int) *PipelineRunUpdate {
	_u.mutation.ResetDefinitionVersion()
	_u.mutation.SetDefinitionVersion(v)
	return _u
}

// SetNillableDefinitionVersion sets the "definition_version" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableDefinitionVersion(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetDefinitionVersion(*v)
	}
	return _u
}

// AddDefinitionVersion adds value to the "definition_version" field.
func (_u *PipelineRunUpdate) AddDefinitionVersion(v int) *PipelineRunUpdate {
	_u.mutation.AddDefinitionVersion(v)
	return _u
}

// ClearDefinitionVersion clears the value of the "definition_version" field.
func (_u *PipelineRunUpdate) ClearDefinitionVersion() *PipelineRunUpdate {
	_u.mutation.ClearDefinitionVersion()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *PipelineRunUpdate) SetIncidentID(v string) *PipelineRunUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableIncidentID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *PipelineRunUpdate) ClearIncidentID() *PipelineRunUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *PipelineRunUpdate) SetCurrentStage(v string) *PipelineRunUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCurrentStage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *PipelineRunUpdate) ClearCurrentStage() *PipelineRunUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PipelineRunUpdate) SetPayload(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PipelineRunUpdate) ClearPayload() *PipelineRunUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *PipelineRunUpdate) SetTotalAttempts(v int) *PipelineRunUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTotalAttempts(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *PipelineRunUpdate) AddTotalAttempts(v int) *PipelineRunUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *PipelineRunUpdate) SetMaxRetries(v int) *PipelineRunUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableMaxRetries(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *PipelineRunUpdate) AddMaxRetries(v int) *PipelineRunUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *PipelineRunUpdate) SetLastErrorType(v string) *PipelineRunUpdate {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastErrorType(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// ClearLastErrorType clears the value of the "last_error_type" field.
func (_u *PipelineRunUpdate) ClearLastErrorType() *PipelineRunUpdate {
	_u.mutation.ClearLastErrorType()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *PipelineRunUpdate) SetLastErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *PipelineRunUpdate) ClearLastErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetLastErrorRetryable sets the "last_error_retryable" field.
func (_u *PipelineRunUpdate) SetLastErrorRetryable(v bool) *PipelineRunUpdate {
	_u.mutation.SetLastErrorRetryable(v)
	return _u
}

// SetNillableLastErrorRetryable sets the "last_error_retryable" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastErrorRetryable(v *bool) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastErrorRetryable(*v)
	}
	return _u
}

// ClearLastErrorRetryable clears the value of the "last_error_retryable" field.
func (_u *PipelineRunUpdate) ClearLastErrorRetryable() *PipelineRunUpdate {
	_u.mutation.ClearLastErrorRetryable()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineRunUpdate) SetCreatedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCreatedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *PipelineRunUpdate) SetTotalDurationMs(v int) *PipelineRunUpdate {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTotalDurationMs(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *PipelineRunUpdate) AddTotalDurationMs(v int) *PipelineRunUpdate {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// ClearTotalDurationMs clears the value of the "total_duration_ms" field.
func (_u *PipelineRunUpdate) ClearTotalDurationMs() *PipelineRunUpdate {
	_u.mutation.ClearTotalDurationMs()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineRunUpdate) SetPodID(v string) *PipelineRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillablePodID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineRunUpdate) ClearPodID() *PipelineRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *PipelineRunUpdate) SetLastInteractionAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastInteractionAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *PipelineRunUpdate) ClearLastInteractionAt() *PipelineRunUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *PipelineRunUpdate) AddStageExecutionIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *PipelineRunUpdate) AddStageExecutions(v ...*StageExecution) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *PipelineRunUpdate) ClearStageExecutions() *PipelineRunUpdate {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *PipelineRunUpdate) RemoveStageExecutionIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *PipelineRunUpdate) RemoveStageExecutions(v ...*StageExecution) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := pipelinerun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(pipelinerun.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(pipelinerun.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(pipelinerun.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(pipelinerun.FieldEnvironment, field.TypeString, value)
	}
	if _u.mutation.EnvironmentCleared() {
		_spec.ClearField(pipelinerun.FieldEnvironment, field.TypeString)
	}
	if value, ok := _u.mutation.DefinitionName(); ok {
		_spec.SetField(pipelinerun.FieldDefinitionName, field.TypeString, value)
	}
	if _u.mutation.DefinitionNameCleared() {
		_spec.ClearField(pipelinerun.FieldDefinitionName, field.TypeString)
	}
	if value, ok := _u.mutation.DefinitionVersion(); ok {
		_spec.SetField(pipelinerun.FieldDefinitionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefinitionVersion(); ok {
		_spec.AddField(pipelinerun.FieldDefinitionVersion, field.TypeInt, value)
	}
	if _u.mutation.DefinitionVersionCleared() {
		_spec.ClearField(pipelinerun.FieldDefinitionVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(pipelinerun.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(pipelinerun.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(pipelinerun.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(pipelinerun.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(pipelinerun.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(pipelinerun.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(pipelinerun.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(pipelinerun.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(pipelinerun.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorType, field.TypeString, value)
	}
	if _u.mutation.LastErrorTypeCleared() {
		_spec.ClearField(pipelinerun.FieldLastErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorRetryable(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorRetryable, field.TypeBool, value)
	}
	if _u.mutation.LastErrorRetryableCleared() {
		_spec.ClearField(pipelinerun.FieldLastErrorRetryable, field.TypeBool)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(pipelinerun.FieldTotalDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(pipelinerun.FieldTotalDurationMs, field.TypeInt, value)
	}
	if _u.mutation.TotalDurationMsCleared() {
		_spec.ClearField(pipelinerun.FieldTotalDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinerun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(pipelinerun.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(pipelinerun.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetMode sets the "mode" field.
func (_u *PipelineRunUpdateOne) SetMode(v pipelinerun.Mode) *PipelineRunUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableMode(v *pipelinerun.Mode) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *PipelineRunUpdateOne) SetSource(v string) *PipelineRunUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableSource(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *PipelineRunUpdateOne) ClearSource() *PipelineRunUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *PipelineRunUpdateOne) SetEnvironment(v string) *PipelineRunUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableEnvironment(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// ClearEnvironment clears the value of the "environment" field.
func (_u *PipelineRunUpdateOne) ClearEnvironment() *PipelineRunUpdateOne {
	_u.mutation.ClearEnvironment()
	return _u
}

// SetDefinitionName sets the "definition_name" field.
func (_u *PipelineRunUpdateOne) SetDefinitionName(v string) *PipelineRunUpdateOne {
	_u.mutation.SetDefinitionName(v)
	return _u
}

// SetNillableDefinitionName sets the "definition_name" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableDefinitionName(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetDefinitionName(*v)
	}
	return _u
}

// ClearDefinitionName clears the value of the "definition_name" field.
func (_u *PipelineRunUpdateOne) ClearDefinitionName() *PipelineRunUpdateOne {
	_u.mutation.ClearDefinitionName()
	return _u
}

// SetDefinitionVersion sets the "definition_version" field.
func (_u *PipelineRunUpdateOne) SetDefinitionVersion(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetDefinitionVersion()
	_u.mutation.SetDefinitionVersion(v)
	return _u
}

// SetNillableDefinitionVersion sets the "definition_version" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableDefinitionVersion(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetDefinitionVersion(*v)
	}
	return _u
}

// AddDefinitionVersion adds value to the "definition_version" field.
func (_u *PipelineRunUpdateOne) AddDefinitionVersion(v int) *PipelineRunUpdateOne {
	_u.mutation.AddDefinitionVersion(v)
	return _u
}

// ClearDefinitionVersion clears the value of the "definition_version" field.
func (_u *PipelineRunUpdateOne) ClearDefinitionVersion() *PipelineRunUpdateOne {
	_u.mutation.ClearDefinitionVersion()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *PipelineRunUpdateOne) SetIncidentID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableIncidentID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *PipelineRunUpdateOne) ClearIncidentID() *PipelineRunUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *PipelineRunUpdateOne) SetCurrentStage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCurrentStage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *PipelineRunUpdateOne) ClearCurrentStage() *PipelineRunUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PipelineRunUpdateOne) SetPayload(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PipelineRunUpdateOne) ClearPayload() *PipelineRunUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *PipelineRunUpdateOne) SetTotalAttempts(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTotalAttempts(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *PipelineRunUpdateOne) AddTotalAttempts(v int) *PipelineRunUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *PipelineRunUpdateOne) SetMaxRetries(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableMaxRetries(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *PipelineRunUpdateOne) AddMaxRetries(v int) *PipelineRunUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *PipelineRunUpdateOne) SetLastErrorType(v string) *PipelineRunUpdateOne {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastErrorType(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// ClearLastErrorType clears the value of the "last_error_type" field.
func (_u *PipelineRunUpdateOne) ClearLastErrorType() *PipelineRunUpdateOne {
	_u.mutation.ClearLastErrorType()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *PipelineRunUpdateOne) SetLastErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *PipelineRunUpdateOne) ClearLastErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetLastErrorRetryable sets the "last_error_retryable" field.
func (_u *PipelineRunUpdateOne) SetLastErrorRetryable(v bool) *PipelineRunUpdateOne {
	_u.mutation.SetLastErrorRetryable(v)
	return _u
}

// SetNillableLastErrorRetryable sets the "last_error_retryable" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastErrorRetryable(v *bool) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastErrorRetryable(*v)
	}
	return _u
}

// ClearLastErrorRetryable clears the value of the "last_error_retryable" field.
func (_u *PipelineRunUpdateOne) ClearLastErrorRetryable() *PipelineRunUpdateOne {
	_u.mutation.ClearLastErrorRetryable()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PipelineRunUpdateOne) SetCreatedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCreatedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (_u *PipelineRunUpdateOne) SetTotalDurationMs(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetTotalDurationMs()
	_u.mutation.SetTotalDurationMs(v)
	return _u
}

// SetNillableTotalDurationMs sets the "total_duration_ms" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTotalDurationMs(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTotalDurationMs(*v)
	}
	return _u
}

// AddTotalDurationMs adds value to the "total_duration_ms" field.
func (_u *PipelineRunUpdateOne) AddTotalDurationMs(v int) *PipelineRunUpdateOne {
	_u.mutation.AddTotalDurationMs(v)
	return _u
}

// ClearTotalDurationMs clears the value of the "total_duration_ms" field.
func (_u *PipelineRunUpdateOne) ClearTotalDurationMs() *PipelineRunUpdateOne {
	_u.mutation.ClearTotalDurationMs()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineRunUpdateOne) SetPodID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillablePodID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineRunUpdateOne) ClearPodID() *PipelineRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *PipelineRunUpdateOne) SetLastInteractionAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastInteractionAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *PipelineRunUpdateOne) ClearLastInteractionAt() *PipelineRunUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by IDs.
func (_u *PipelineRunUpdateOne) AddStageExecutionIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddStageExecutionIDs(ids...)
	return _u
}

// AddStageExecutions adds the "stage_executions" edges to the StageExecution entity.
func (_u *PipelineRunUpdateOne) AddStageExecutions(v ...*StageExecution) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageExecutionIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearStageExecutions clears all "stage_executions" edges to the StageExecution entity.
func (_u *PipelineRunUpdateOne) ClearStageExecutions() *PipelineRunUpdateOne {
	_u.mutation.ClearStageExecutions()
	return _u
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to StageExecution entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveStageExecutionIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveStageExecutionIDs(ids...)
	return _u
}

// RemoveStageExecutions removes "stage_executions" edges to StageExecution entities.
func (_u *PipelineRunUpdateOne) RemoveStageExecutions(v ...*StageExecution) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageExecutionIDs(ids...)
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := pipelinerun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(pipelinerun.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(pipelinerun.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(pipelinerun.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(pipelinerun.FieldEnvironment, field.TypeString, value)
	}
	if _u.mutation.EnvironmentCleared() {
		_spec.ClearField(pipelinerun.FieldEnvironment, field.TypeString)
	}
	if value, ok := _u.mutation.DefinitionName(); ok {
		_spec.SetField(pipelinerun.FieldDefinitionName, field.TypeString, value)
	}
	if _u.mutation.DefinitionNameCleared() {
		_spec.ClearField(pipelinerun.FieldDefinitionName, field.TypeString)
	}
	if value, ok := _u.mutation.DefinitionVersion(); ok {
		_spec.SetField(pipelinerun.FieldDefinitionVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefinitionVersion(); ok {
		_spec.AddField(pipelinerun.FieldDefinitionVersion, field.TypeInt, value)
	}
	if _u.mutation.DefinitionVersionCleared() {
		_spec.ClearField(pipelinerun.FieldDefinitionVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(pipelinerun.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(pipelinerun.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(pipelinerun.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(pipelinerun.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(pipelinerun.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(pipelinerun.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(pipelinerun.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(pipelinerun.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(pipelinerun.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(pipelinerun.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorType, field.TypeString, value)
	}
	if _u.mutation.LastErrorTypeCleared() {
		_spec.ClearField(pipelinerun.FieldLastErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorRetryable(); ok {
		_spec.SetField(pipelinerun.FieldLastErrorRetryable, field.TypeBool, value)
	}
	if _u.mutation.LastErrorRetryableCleared() {
		_spec.ClearField(pipelinerun.FieldLastErrorRetryable, field.TypeBool)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalDurationMs(); ok {
		_spec.SetField(pipelinerun.FieldTotalDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDurationMs(); ok {
		_spec.AddField(pipelinerun.FieldTotalDurationMs, field.TypeInt, value)
	}
	if _u.mutation.TotalDurationMsCleared() {
		_spec.ClearField(pipelinerun.FieldTotalDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinerun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(pipelinerun.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(pipelinerun.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStageExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StageExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StageExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
