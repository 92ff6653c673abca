// Code generated by ent, DO NOT EDIT.

package analysisrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldID, id))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTraceID, v))
}

// PipelineRunID applies equality check predicate on the "pipeline_run_id" field. It's identical to PipelineRunIDEQ.
func PipelineRunID(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldPipelineRunID, v))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldIncidentID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldProvider, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalTokens, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldCreatedAt, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldTraceID, v))
}

// PipelineRunIDEQ applies the EQ predicate on the "pipeline_run_id" field.
func PipelineRunIDEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldPipelineRunID, v))
}

// PipelineRunIDNEQ applies the NEQ predicate on the "pipeline_run_id" field.
func PipelineRunIDNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldPipelineRunID, v))
}

// PipelineRunIDIn applies the In predicate on the "pipeline_run_id" field.
func PipelineRunIDIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldPipelineRunID, vs...))
}

// PipelineRunIDNotIn applies the NotIn predicate on the "pipeline_run_id" field.
func PipelineRunIDNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldPipelineRunID, vs...))
}

// PipelineRunIDGT applies the GT predicate on the "pipeline_run_id" field.
func PipelineRunIDGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldPipelineRunID, v))
}

// PipelineRunIDGTE applies the GTE predicate on the "pipeline_run_id" field.
func PipelineRunIDGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldPipelineRunID, v))
}

// PipelineRunIDLT applies the LT predicate on the "pipeline_run_id" field.
func PipelineRunIDLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldPipelineRunID, v))
}

// PipelineRunIDLTE applies the LTE predicate on the "pipeline_run_id" field.
func PipelineRunIDLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldPipelineRunID, v))
}

// PipelineRunIDContains applies the Contains predicate on the "pipeline_run_id" field.
func PipelineRunIDContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldPipelineRunID, v))
}

// PipelineRunIDHasPrefix applies the HasPrefix predicate on the "pipeline_run_id" field.
func PipelineRunIDHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldPipelineRunID, v))
}

// PipelineRunIDHasSuffix applies the HasSuffix predicate on the "pipeline_run_id" field.
func PipelineRunIDHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldPipelineRunID, v))
}

// PipelineRunIDIsNil applies the IsNil predicate on the "pipeline_run_id" field.
func PipelineRunIDIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldPipelineRunID))
}

// PipelineRunIDNotNil applies the NotNil predicate on the "pipeline_run_id" field.
func PipelineRunIDNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldPipelineRunID))
}

// PipelineRunIDEqualFold applies the EqualFold predicate on the "pipeline_run_id" field.
func PipelineRunIDEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldPipelineRunID, v))
}

// PipelineRunIDContainsFold applies the ContainsFold predicate on the "pipeline_run_id" field.
func PipelineRunIDContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldPipelineRunID, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDIsNil applies the IsNil predicate on the "incident_id" field.
func IncidentIDIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldIncidentID))
}

// IncidentIDNotNil applies the NotNil predicate on the "incident_id" field.
func IncidentIDNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldIncidentID))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldIncidentID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldProvider, v))
}

// ProviderConfigIsNil applies the IsNil predicate on the "provider_config" field.
func ProviderConfigIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldProviderConfig))
}

// ProviderConfigNotNil applies the NotNil predicate on the "provider_config" field.
func ProviderConfigNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldProviderConfig))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldRecommendations))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldTotalTokens))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldContainsFold(FieldError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIncident applies the HasEdge predicate on the "incident" edge.
func HasIncident() predicate.AnalysisRun {
	return predicate.AnalysisRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IncidentTable, IncidentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncidentWith applies the HasEdge predicate on the "incident" edge with a given conditions (other predicates).
func HasIncidentWith(preds ...predicate.Incident) predicate.AnalysisRun {
	return predicate.AnalysisRun(func(s *sql.Selector) {
		step := newIncidentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRun) predicate.AnalysisRun {
	return predicate.AnalysisRun(sql.NotPredicates(p))
}
