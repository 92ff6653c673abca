// Code generated by ent, DO NOT EDIT.

package checkrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldID, id))
}

// CheckerName applies equality check predicate on the "checker_name" field. It's identical to CheckerNameEQ.
func CheckerName(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldCheckerName, v))
}

// Hostname applies equality check predicate on the "hostname" field. It's identical to HostnameEQ.
func Hostname(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldHostname, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldMessage, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldError, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldTraceID, v))
}

// PipelineRunID applies equality check predicate on the "pipeline_run_id" field. It's identical to PipelineRunIDEQ.
func PipelineRunID(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldPipelineRunID, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldExecutedAt, v))
}

// CheckerNameEQ applies the EQ predicate on the "checker_name" field.
func CheckerNameEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldCheckerName, v))
}

// CheckerNameNEQ applies the NEQ predicate on the "checker_name" field.
func CheckerNameNEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldCheckerName, v))
}

// CheckerNameIn applies the In predicate on the "checker_name" field.
func CheckerNameIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldCheckerName, vs...))
}

// CheckerNameNotIn applies the NotIn predicate on the "checker_name" field.
func CheckerNameNotIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldCheckerName, vs...))
}

// CheckerNameGT applies the GT predicate on the "checker_name" field.
func CheckerNameGT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldCheckerName, v))
}

// CheckerNameGTE applies the GTE predicate on the "checker_name" field.
func CheckerNameGTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldCheckerName, v))
}

// CheckerNameLT applies the LT predicate on the "checker_name" field.
func CheckerNameLT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldCheckerName, v))
}

// CheckerNameLTE applies the LTE predicate on the "checker_name" field.
func CheckerNameLTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldCheckerName, v))
}

// CheckerNameContains applies the Contains predicate on the "checker_name" field.
func CheckerNameContains(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContains(FieldCheckerName, v))
}

// CheckerNameHasPrefix applies the HasPrefix predicate on the "checker_name" field.
func CheckerNameHasPrefix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasPrefix(FieldCheckerName, v))
}

// CheckerNameHasSuffix applies the HasSuffix predicate on the "checker_name" field.
func CheckerNameHasSuffix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasSuffix(FieldCheckerName, v))
}

// CheckerNameEqualFold applies the EqualFold predicate on the "checker_name" field.
func CheckerNameEqualFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldCheckerName, v))
}

// CheckerNameContainsFold applies the ContainsFold predicate on the "checker_name" field.
func CheckerNameContainsFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldCheckerName, v))
}

// HostnameEQ applies the EQ predicate on the "hostname" field.
func HostnameEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldHostname, v))
}

// HostnameNEQ applies the NEQ predicate on the "hostname" field.
func HostnameNEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldHostname, v))
}

// HostnameIn applies the In predicate on the "hostname" field.
func HostnameIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldHostname, vs...))
}

// HostnameNotIn applies the NotIn predicate on the "hostname" field.
func HostnameNotIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldHostname, vs...))
}

// HostnameGT applies the GT predicate on the "hostname" field.
func HostnameGT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldHostname, v))
}

// HostnameGTE applies the GTE predicate on the "hostname" field.
func HostnameGTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldHostname, v))
}

// HostnameLT applies the LT predicate on the "hostname" field.
func HostnameLT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldHostname, v))
}

// HostnameLTE applies the LTE predicate on the "hostname" field.
func HostnameLTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldHostname, v))
}

// HostnameContains applies the Contains predicate on the "hostname" field.
func HostnameContains(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContains(FieldHostname, v))
}

// HostnameHasPrefix applies the HasPrefix predicate on the "hostname" field.
func HostnameHasPrefix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasPrefix(FieldHostname, v))
}

// HostnameHasSuffix applies the HasSuffix predicate on the "hostname" field.
func HostnameHasSuffix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasSuffix(FieldHostname, v))
}

// HostnameIsNil applies the IsNil predicate on the "hostname" field.
func HostnameIsNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIsNull(FieldHostname))
}

// HostnameNotNil applies the NotNil predicate on the "hostname" field.
func HostnameNotNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotNull(FieldHostname))
}

// HostnameEqualFold applies the EqualFold predicate on the "hostname" field.
func HostnameEqualFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldHostname, v))
}

// HostnameContainsFold applies the ContainsFold predicate on the "hostname" field.
func HostnameContainsFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldHostname, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldStatus, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldMessage, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotNull(FieldMetrics))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldError, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldTraceID, v))
}

// PipelineRunIDEQ applies the EQ predicate on the "pipeline_run_id" field.
func PipelineRunIDEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldPipelineRunID, v))
}

// PipelineRunIDNEQ applies the NEQ predicate on the "pipeline_run_id" field.
func PipelineRunIDNEQ(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldPipelineRunID, v))
}

// PipelineRunIDIn applies the In predicate on the "pipeline_run_id" field.
func PipelineRunIDIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldPipelineRunID, vs...))
}

// PipelineRunIDNotIn applies the NotIn predicate on the "pipeline_run_id" field.
func PipelineRunIDNotIn(vs ...string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldPipelineRunID, vs...))
}

// PipelineRunIDGT applies the GT predicate on the "pipeline_run_id" field.
func PipelineRunIDGT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldPipelineRunID, v))
}

// PipelineRunIDGTE applies the GTE predicate on the "pipeline_run_id" field.
func PipelineRunIDGTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldPipelineRunID, v))
}

// PipelineRunIDLT applies the LT predicate on the "pipeline_run_id" field.
func PipelineRunIDLT(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldPipelineRunID, v))
}

// PipelineRunIDLTE applies the LTE predicate on the "pipeline_run_id" field.
func PipelineRunIDLTE(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldPipelineRunID, v))
}

// PipelineRunIDContains applies the Contains predicate on the "pipeline_run_id" field.
func PipelineRunIDContains(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContains(FieldPipelineRunID, v))
}

// PipelineRunIDHasPrefix applies the HasPrefix predicate on the "pipeline_run_id" field.
func PipelineRunIDHasPrefix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasPrefix(FieldPipelineRunID, v))
}

// PipelineRunIDHasSuffix applies the HasSuffix predicate on the "pipeline_run_id" field.
func PipelineRunIDHasSuffix(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldHasSuffix(FieldPipelineRunID, v))
}

// PipelineRunIDIsNil applies the IsNil predicate on the "pipeline_run_id" field.
func PipelineRunIDIsNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIsNull(FieldPipelineRunID))
}

// PipelineRunIDNotNil applies the NotNil predicate on the "pipeline_run_id" field.
func PipelineRunIDNotNil() predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotNull(FieldPipelineRunID))
}

// PipelineRunIDEqualFold applies the EqualFold predicate on the "pipeline_run_id" field.
func PipelineRunIDEqualFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEqualFold(FieldPipelineRunID, v))
}

// PipelineRunIDContainsFold applies the ContainsFold predicate on the "pipeline_run_id" field.
func PipelineRunIDContainsFold(v string) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldContainsFold(FieldPipelineRunID, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.CheckRun {
	return predicate.CheckRun(sql.FieldLTE(FieldExecutedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckRun) predicate.CheckRun {
	return predicate.CheckRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckRun) predicate.CheckRun {
	return predicate.CheckRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckRun) predicate.CheckRun {
	return predicate.CheckRun(sql.NotPredicates(p))
}
