// Code generated by ent, DO NOT EDIT.

package stageexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stageexecution type in the database.
	Label = "stage_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_execution_id"
	// FieldPipelineRunID holds the string denoting the pipeline_run_id field in the database.
	FieldPipelineRunID = "pipeline_run_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldInputRef holds the string denoting the input_ref field in the database.
	FieldInputRef = "input_ref"
	// FieldOutputRef holds the string denoting the output_ref field in the database.
	FieldOutputRef = "output_ref"
	// FieldOutputSnapshot holds the string denoting the output_snapshot field in the database.
	FieldOutputSnapshot = "output_snapshot"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorStack holds the string denoting the error_stack field in the database.
	FieldErrorStack = "error_stack"
	// FieldErrorRetryable holds the string denoting the error_retryable field in the database.
	FieldErrorRetryable = "error_retryable"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePipelineRun holds the string denoting the pipeline_run edge name in mutations.
	EdgePipelineRun = "pipeline_run"
	// PipelineRunFieldID holds the string denoting the ID field of the PipelineRun.
	PipelineRunFieldID = "run_id"
	// Table holds the table name of the stageexecution in the database.
	Table = "stage_executions"
	// PipelineRunTable is the table that holds the pipeline_run relation/edge.
	PipelineRunTable = "stage_executions"
	// PipelineRunInverseTable is the table name for the PipelineRun entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinerun" package.
	PipelineRunInverseTable = "pipeline_runs"
	// PipelineRunColumn is the table column denoting the pipeline_run relation/edge.
	PipelineRunColumn = "pipeline_run_id"
)

// Columns holds all SQL columns for stageexecution fields.
var Columns = []string{
	FieldID,
	FieldPipelineRunID,
	FieldStage,
	FieldNodeID,
	FieldAttempt,
	FieldIdempotencyKey,
	FieldStatus,
	FieldInputRef,
	FieldOutputRef,
	FieldOutputSnapshot,
	FieldErrorType,
	FieldErrorMessage,
	FieldErrorStack,
	FieldErrorRetryable,
	FieldSkipReason,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// DefaultNodeID holds the default value on creation for the "node_id" field.
	DefaultNodeID string
	// AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	AttemptValidator func(int) error
	// DefaultErrorRetryable holds the default value on creation for the "error_retryable" field.
	DefaultErrorRetryable bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusSucceeded, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("stageexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StageExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPipelineRunID orders the results by the pipeline_run_id field.
func ByPipelineRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineRunID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByInputRef orders the results by the input_ref field.
func ByInputRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputRef, opts...).ToFunc()
}

// ByOutputRef orders the results by the output_ref field.
func ByOutputRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputRef, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorStack orders the results by the error_stack field.
func ByErrorStack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorStack, opts...).ToFunc()
}

// ByErrorRetryable orders the results by the error_retryable field.
func ByErrorRetryable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRetryable, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPipelineRunField orders the results by pipeline_run field.
func ByPipelineRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineRunStep(), sql.OrderByField(field, opts...))
	}
}
func newPipelineRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineRunInverseTable, PipelineRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PipelineRunTable, PipelineRunColumn),
	)
}
