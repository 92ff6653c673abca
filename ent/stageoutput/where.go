// Code generated by ent, DO NOT EDIT.

package stageoutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldContainsFold(FieldID, id))
}

// PipelineRunID applies equality check predicate on the "pipeline_run_id" field. It's identical to PipelineRunIDEQ.
func PipelineRunID(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEQ(FieldPipelineRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEQ(FieldCreatedAt, v))
}

// PipelineRunIDEQ applies the EQ predicate on the "pipeline_run_id" field.
func PipelineRunIDEQ(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEQ(FieldPipelineRunID, v))
}

// PipelineRunIDNEQ applies the NEQ predicate on the "pipeline_run_id" field.
func PipelineRunIDNEQ(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldNEQ(FieldPipelineRunID, v))
}

// PipelineRunIDIn applies the In predicate on the "pipeline_run_id" field.
func PipelineRunIDIn(vs ...string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldIn(FieldPipelineRunID, vs...))
}

// PipelineRunIDNotIn applies the NotIn predicate on the "pipeline_run_id" field.
func PipelineRunIDNotIn(vs ...string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldNotIn(FieldPipelineRunID, vs...))
}

// PipelineRunIDGT applies the GT predicate on the "pipeline_run_id" field.
func PipelineRunIDGT(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldGT(FieldPipelineRunID, v))
}

// PipelineRunIDGTE applies the GTE predicate on the "pipeline_run_id" field.
func PipelineRunIDGTE(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldGTE(FieldPipelineRunID, v))
}

// PipelineRunIDLT applies the LT predicate on the "pipeline_run_id" field.
func PipelineRunIDLT(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldLT(FieldPipelineRunID, v))
}

// PipelineRunIDLTE applies the LTE predicate on the "pipeline_run_id" field.
func PipelineRunIDLTE(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldLTE(FieldPipelineRunID, v))
}

// PipelineRunIDContains applies the Contains predicate on the "pipeline_run_id" field.
func PipelineRunIDContains(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldContains(FieldPipelineRunID, v))
}

// PipelineRunIDHasPrefix applies the HasPrefix predicate on the "pipeline_run_id" field.
func PipelineRunIDHasPrefix(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldHasPrefix(FieldPipelineRunID, v))
}

// PipelineRunIDHasSuffix applies the HasSuffix predicate on the "pipeline_run_id" field.
func PipelineRunIDHasSuffix(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldHasSuffix(FieldPipelineRunID, v))
}

// PipelineRunIDEqualFold applies the EqualFold predicate on the "pipeline_run_id" field.
func PipelineRunIDEqualFold(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEqualFold(FieldPipelineRunID, v))
}

// PipelineRunIDContainsFold applies the ContainsFold predicate on the "pipeline_run_id" field.
func PipelineRunIDContainsFold(v string) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldContainsFold(FieldPipelineRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StageOutput {
	return predicate.StageOutput(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageOutput) predicate.StageOutput {
	return predicate.StageOutput(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageOutput) predicate.StageOutput {
	return predicate.StageOutput(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageOutput) predicate.StageOutput {
	return predicate.StageOutput(sql.NotPredicates(p))
}
