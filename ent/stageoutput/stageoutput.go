// Code generated by ent, DO NOT EDIT.

package stageoutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stageoutput type in the database.
	Label = "stage_output"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_output_id"
	// FieldPipelineRunID holds the string denoting the pipeline_run_id field in the database.
	FieldPipelineRunID = "pipeline_run_id"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the stageoutput in the database.
	Table = "stage_outputs"
)

// Columns holds all SQL columns for stageoutput fields.
var Columns = []string{
	FieldID,
	FieldPipelineRunID,
	FieldData,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the StageOutput queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPipelineRunID orders the results by the pipeline_run_id field.
func ByPipelineRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
