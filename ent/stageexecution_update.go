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
	"github.com/codeready-toolchain/conductor/ent/predicate"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
)

// StageExecutionUpdate is the builder for updating StageExecution entities.
type StageExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StageExecutionMutation
}

// Where appends a list predicates to the StageExecutionUpdate builder.
func (_u *StageExecutionUpdate) Where(ps ...predicate.StageExecution) *StageExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageExecutionUpdate) SetStatus(v stageexecution.Status) *StageExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStatus(v *stageexecution.Status) *StageExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputRef sets the "input_ref" field.
func (_u *StageExecutionUpdate) SetInputRef(v string) *StageExecutionUpdate {
	_u.mutation.SetInputRef(v)
	return _u
}

// SetNillableInputRef sets the "input_ref" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableInputRef(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetInputRef(*v)
	}
	return _u
}

// ClearInputRef clears the value of the "input_ref" field.
func (_u *StageExecutionUpdate) ClearInputRef() *StageExecutionUpdate {
	_u.mutation.ClearInputRef()
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *StageExecutionUpdate) SetOutputRef(v string) *StageExecutionUpdate {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableOutputRef(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *StageExecutionUpdate) ClearOutputRef() *StageExecutionUpdate {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_u *StageExecutionUpdate) SetOutputSnapshot(v map[string]interface{}) *StageExecutionUpdate {
	_u.mutation.SetOutputSnapshot(v)
	return _u
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (_u *StageExecutionUpdate) ClearOutputSnapshot() *StageExecutionUpdate {
	_u.mutation.ClearOutputSnapshot()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *StageExecutionUpdate) SetErrorType(v string) *StageExecutionUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableErrorType(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *StageExecutionUpdate) ClearErrorType() *StageExecutionUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageExecutionUpdate) SetErrorMessage(v string) *StageExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableErrorMessage(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageExecutionUpdate) ClearErrorMessage() *StageExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorStack sets the "error_stack" field.
func (_u *StageExecutionUpdate) SetErrorStack(v string) *StageExecutionUpdate {
	_u.mutation.SetErrorStack(v)
	return _u
}

// SetNillableErrorStack sets the "error_stack" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableErrorStack(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetErrorStack(*v)
	}
	return _u
}

// ClearErrorStack clears the value of the "error_stack" field.
func (_u *StageExecutionUpdate) ClearErrorStack() *StageExecutionUpdate {
	_u.mutation.ClearErrorStack()
	return _u
}

// SetErrorRetryable sets the "error_retryable" field.
func (_u *StageExecutionUpdate) SetErrorRetryable(v bool) *StageExecutionUpdate {
	_u.mutation.SetErrorRetryable(v)
	return _u
}

// SetNillableErrorRetryable sets the "error_retryable" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableErrorRetryable(v *bool) *StageExecutionUpdate {
	if v != nil {
		_u.SetErrorRetryable(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *StageExecutionUpdate) SetSkipReason(v string) *StageExecutionUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableSkipReason(v *string) *StageExecutionUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *StageExecutionUpdate) ClearSkipReason() *StageExecutionUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageExecutionUpdate) SetStartedAt(v time.Time) *StageExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableStartedAt(v *time.Time) *StageExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageExecutionUpdate) ClearStartedAt() *StageExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageExecutionUpdate) SetCompletedAt(v time.Time) *StageExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableCompletedAt(v *time.Time) *StageExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageExecutionUpdate) ClearCompletedAt() *StageExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageExecutionUpdate) SetDurationMs(v int) *StageExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageExecutionUpdate) SetNillableDurationMs(v *int) *StageExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageExecutionUpdate) AddDurationMs(v int) *StageExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StageExecutionUpdate) ClearDurationMs() *StageExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_u *StageExecutionUpdate) Mutation() *StageExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _u.mutation.PipelineRunCleared() && len(_u.mutation.PipelineRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageExecution.pipeline_run"`)
	}
	return nil
}

func (_u *StageExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageexecution.Table, stageexecution.Columns, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.NodeIDCleared() {
		_spec.ClearField(stageexecution.FieldNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputRef(); ok {
		_spec.SetField(stageexecution.FieldInputRef, field.TypeString, value)
	}
	if _u.mutation.InputRefCleared() {
		_spec.ClearField(stageexecution.FieldInputRef, field.TypeString)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(stageexecution.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(stageexecution.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.OutputSnapshot(); ok {
		_spec.SetField(stageexecution.FieldOutputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.OutputSnapshotCleared() {
		_spec.ClearField(stageexecution.FieldOutputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(stageexecution.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(stageexecution.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStack(); ok {
		_spec.SetField(stageexecution.FieldErrorStack, field.TypeString, value)
	}
	if _u.mutation.ErrorStackCleared() {
		_spec.ClearField(stageexecution.FieldErrorStack, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorRetryable(); ok {
		_spec.SetField(stageexecution.FieldErrorRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(stageexecution.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(stageexecution.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stageexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stageexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stageexecution.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageExecutionUpdateOne is the builder for updating a single StageExecution entity.
type StageExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *StageExecutionUpdateOne) SetStatus(v stageexecution.Status) *StageExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStatus(v *stageexecution.Status) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputRef sets the "input_ref" field.
func (_u *StageExecutionUpdateOne) SetInputRef(v string) *StageExecutionUpdateOne {
	_u.mutation.SetInputRef(v)
	return _u
}

// SetNillableInputRef sets the "input_ref" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableInputRef(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetInputRef(*v)
	}
	return _u
}

// ClearInputRef clears the value of the "input_ref" field.
func (_u *StageExecutionUpdateOne) ClearInputRef() *StageExecutionUpdateOne {
	_u.mutation.ClearInputRef()
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *StageExecutionUpdateOne) SetOutputRef(v string) *StageExecutionUpdateOne {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableOutputRef(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *StageExecutionUpdateOne) ClearOutputRef() *StageExecutionUpdateOne {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_u *StageExecutionUpdateOne) SetOutputSnapshot(v map[string]interface{}) *StageExecutionUpdateOne {
	_u.mutation.SetOutputSnapshot(v)
	return _u
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (_u *StageExecutionUpdateOne) ClearOutputSnapshot() *StageExecutionUpdateOne {
	_u.mutation.ClearOutputSnapshot()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *StageExecutionUpdateOne) SetErrorType(v string) *StageExecutionUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableErrorType(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *StageExecutionUpdateOne) ClearErrorType() *StageExecutionUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StageExecutionUpdateOne) SetErrorMessage(v string) *StageExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableErrorMessage(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StageExecutionUpdateOne) ClearErrorMessage() *StageExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorStack sets the "error_stack" field.
func (_u *StageExecutionUpdateOne) SetErrorStack(v string) *StageExecutionUpdateOne {
	_u.mutation.SetErrorStack(v)
	return _u
}

// SetNillableErrorStack sets the "error_stack" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableErrorStack(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetErrorStack(*v)
	}
	return _u
}

// ClearErrorStack clears the value of the "error_stack" field.
func (_u *StageExecutionUpdateOne) ClearErrorStack() *StageExecutionUpdateOne {
	_u.mutation.ClearErrorStack()
	return _u
}

// SetErrorRetryable sets the "error_retryable" field.
func (_u *StageExecutionUpdateOne) SetErrorRetryable(v bool) *StageExecutionUpdateOne {
	_u.mutation.SetErrorRetryable(v)
	return _u
}

// SetNillableErrorRetryable sets the "error_retryable" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableErrorRetryable(v *bool) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetErrorRetryable(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *StageExecutionUpdateOne) SetSkipReason(v string) *StageExecutionUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableSkipReason(v *string) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *StageExecutionUpdateOne) ClearSkipReason() *StageExecutionUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageExecutionUpdateOne) SetStartedAt(v time.Time) *StageExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StageExecutionUpdateOne) ClearStartedAt() *StageExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageExecutionUpdateOne) SetCompletedAt(v time.Time) *StageExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageExecutionUpdateOne) ClearCompletedAt() *StageExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageExecutionUpdateOne) SetDurationMs(v int) *StageExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageExecutionUpdateOne) SetNillableDurationMs(v *int) *StageExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageExecutionUpdateOne) AddDurationMs(v int) *StageExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *StageExecutionUpdateOne) ClearDurationMs() *StageExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the StageExecutionMutation object of the builder.
func (_u *StageExecutionUpdateOne) Mutation() *StageExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageExecutionUpdate builder.
func (_u *StageExecutionUpdateOne) Where(ps ...predicate.StageExecution) *StageExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageExecutionUpdateOne) Select(field string, fields ...string) *StageExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageExecution entity.
func (_u *StageExecutionUpdateOne) Save(ctx context.Context) (*StageExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageExecutionUpdateOne) SaveX(ctx context.Context) *StageExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stageexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageExecution.status": %w`, err)}
		}
	}
	if _u.mutation.PipelineRunCleared() && len(_u.mutation.PipelineRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageExecution.pipeline_run"`)
	}
	return nil
}

func (_u *StageExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StageExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageexecution.Table, stageexecution.Columns, sqlgraph.NewFieldSpec(stageexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageexecution.FieldID)
		for _, f := range fields {
			if !stageexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageexecution.FieldID {
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
	if _u.mutation.NodeIDCleared() {
		_spec.ClearField(stageexecution.FieldNodeID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stageexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputRef(); ok {
		_spec.SetField(stageexecution.FieldInputRef, field.TypeString, value)
	}
	if _u.mutation.InputRefCleared() {
		_spec.ClearField(stageexecution.FieldInputRef, field.TypeString)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(stageexecution.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(stageexecution.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.OutputSnapshot(); ok {
		_spec.SetField(stageexecution.FieldOutputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.OutputSnapshotCleared() {
		_spec.ClearField(stageexecution.FieldOutputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(stageexecution.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(stageexecution.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stageexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stageexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStack(); ok {
		_spec.SetField(stageexecution.FieldErrorStack, field.TypeString, value)
	}
	if _u.mutation.ErrorStackCleared() {
		_spec.ClearField(stageexecution.FieldErrorStack, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorRetryable(); ok {
		_spec.SetField(stageexecution.FieldErrorRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(stageexecution.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(stageexecution.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stageexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stageexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stageexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stageexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stageexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(stageexecution.FieldDurationMs, field.TypeInt)
	}
	_node = &StageExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
