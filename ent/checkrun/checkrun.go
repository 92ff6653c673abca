// Code generated by ent, DO NOT EDIT.

package checkrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkrun type in the database.
	Label = "check_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "check_run_id"
	// FieldCheckerName holds the string denoting the checker_name field in the database.
	FieldCheckerName = "checker_name"
	// FieldHostname holds the string denoting the hostname field in the database.
	FieldHostname = "hostname"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldPipelineRunID holds the string denoting the pipeline_run_id field in the database.
	FieldPipelineRunID = "pipeline_run_id"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// Table holds the table name of the checkrun in the database.
	Table = "check_runs"
)

// Columns holds all SQL columns for checkrun fields.
var Columns = []string{
	FieldID,
	FieldCheckerName,
	FieldHostname,
	FieldStatus,
	FieldMessage,
	FieldMetrics,
	FieldError,
	FieldTraceID,
	FieldPipelineRunID,
	FieldExecutedAt,
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
	// DefaultExecutedAt holds the default value on creation for the "executed_at" field.
	DefaultExecutedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusOk       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusUnknown  Status = "unknown"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOk, StatusWarning, StatusCritical, StatusUnknown:
		return nil
	default:
		return fmt.Errorf("checkrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CheckRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCheckerName orders the results by the checker_name field.
func ByCheckerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckerName, opts...).ToFunc()
}

// ByHostname orders the results by the hostname field.
func ByHostname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostname, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByPipelineRunID orders the results by the pipeline_run_id field.
func ByPipelineRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineRunID, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}
