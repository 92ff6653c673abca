// Code generated by ent, DO NOT EDIT.

package alerthistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/conductor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContainsFold(FieldID, id))
}

// AlertID applies equality check predicate on the "alert_id" field. It's identical to AlertIDEQ.
func AlertID(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldAlertID, v))
}

// PreviousStatus applies equality check predicate on the "previous_status" field. It's identical to PreviousStatusEQ.
func PreviousStatus(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldPreviousStatus, v))
}

// NewStatus applies equality check predicate on the "new_status" field. It's identical to NewStatusEQ.
func NewStatus(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldNewStatus, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldDetails, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// AlertIDEQ applies the EQ predicate on the "alert_id" field.
func AlertIDEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldAlertID, v))
}

// AlertIDNEQ applies the NEQ predicate on the "alert_id" field.
func AlertIDNEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNEQ(FieldAlertID, v))
}

// AlertIDIn applies the In predicate on the "alert_id" field.
func AlertIDIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIn(FieldAlertID, vs...))
}

// AlertIDNotIn applies the NotIn predicate on the "alert_id" field.
func AlertIDNotIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotIn(FieldAlertID, vs...))
}

// AlertIDGT applies the GT predicate on the "alert_id" field.
func AlertIDGT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGT(FieldAlertID, v))
}

// AlertIDGTE applies the GTE predicate on the "alert_id" field.
func AlertIDGTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGTE(FieldAlertID, v))
}

// AlertIDLT applies the LT predicate on the "alert_id" field.
func AlertIDLT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLT(FieldAlertID, v))
}

// AlertIDLTE applies the LTE predicate on the "alert_id" field.
func AlertIDLTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLTE(FieldAlertID, v))
}

// AlertIDContains applies the Contains predicate on the "alert_id" field.
func AlertIDContains(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContains(FieldAlertID, v))
}

// AlertIDHasPrefix applies the HasPrefix predicate on the "alert_id" field.
func AlertIDHasPrefix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasPrefix(FieldAlertID, v))
}

// AlertIDHasSuffix applies the HasSuffix predicate on the "alert_id" field.
func AlertIDHasSuffix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasSuffix(FieldAlertID, v))
}

// AlertIDEqualFold applies the EqualFold predicate on the "alert_id" field.
func AlertIDEqualFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEqualFold(FieldAlertID, v))
}

// AlertIDContainsFold applies the ContainsFold predicate on the "alert_id" field.
func AlertIDContainsFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContainsFold(FieldAlertID, v))
}

// PreviousStatusEQ applies the EQ predicate on the "previous_status" field.
func PreviousStatusEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldPreviousStatus, v))
}

// PreviousStatusNEQ applies the NEQ predicate on the "previous_status" field.
func PreviousStatusNEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNEQ(FieldPreviousStatus, v))
}

// PreviousStatusIn applies the In predicate on the "previous_status" field.
func PreviousStatusIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIn(FieldPreviousStatus, vs...))
}

// PreviousStatusNotIn applies the NotIn predicate on the "previous_status" field.
func PreviousStatusNotIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotIn(FieldPreviousStatus, vs...))
}

// PreviousStatusGT applies the GT predicate on the "previous_status" field.
func PreviousStatusGT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGT(FieldPreviousStatus, v))
}

// PreviousStatusGTE applies the GTE predicate on the "previous_status" field.
func PreviousStatusGTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGTE(FieldPreviousStatus, v))
}

// PreviousStatusLT applies the LT predicate on the "previous_status" field.
func PreviousStatusLT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLT(FieldPreviousStatus, v))
}

// PreviousStatusLTE applies the LTE predicate on the "previous_status" field.
func PreviousStatusLTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLTE(FieldPreviousStatus, v))
}

// PreviousStatusContains applies the Contains predicate on the "previous_status" field.
func PreviousStatusContains(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContains(FieldPreviousStatus, v))
}

// PreviousStatusHasPrefix applies the HasPrefix predicate on the "previous_status" field.
func PreviousStatusHasPrefix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasPrefix(FieldPreviousStatus, v))
}

// PreviousStatusHasSuffix applies the HasSuffix predicate on the "previous_status" field.
func PreviousStatusHasSuffix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasSuffix(FieldPreviousStatus, v))
}

// PreviousStatusEqualFold applies the EqualFold predicate on the "previous_status" field.
func PreviousStatusEqualFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEqualFold(FieldPreviousStatus, v))
}

// PreviousStatusContainsFold applies the ContainsFold predicate on the "previous_status" field.
func PreviousStatusContainsFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContainsFold(FieldPreviousStatus, v))
}

// NewStatusEQ applies the EQ predicate on the "new_status" field.
func NewStatusEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldNewStatus, v))
}

// NewStatusNEQ applies the NEQ predicate on the "new_status" field.
func NewStatusNEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNEQ(FieldNewStatus, v))
}

// NewStatusIn applies the In predicate on the "new_status" field.
func NewStatusIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIn(FieldNewStatus, vs...))
}

// NewStatusNotIn applies the NotIn predicate on the "new_status" field.
func NewStatusNotIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotIn(FieldNewStatus, vs...))
}

// NewStatusGT applies the GT predicate on the "new_status" field.
func NewStatusGT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGT(FieldNewStatus, v))
}

// NewStatusGTE applies the GTE predicate on the "new_status" field.
func NewStatusGTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGTE(FieldNewStatus, v))
}

// NewStatusLT applies the LT predicate on the "new_status" field.
func NewStatusLT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLT(FieldNewStatus, v))
}

// NewStatusLTE applies the LTE predicate on the "new_status" field.
func NewStatusLTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLTE(FieldNewStatus, v))
}

// NewStatusContains applies the Contains predicate on the "new_status" field.
func NewStatusContains(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContains(FieldNewStatus, v))
}

// NewStatusHasPrefix applies the HasPrefix predicate on the "new_status" field.
func NewStatusHasPrefix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasPrefix(FieldNewStatus, v))
}

// NewStatusHasSuffix applies the HasSuffix predicate on the "new_status" field.
func NewStatusHasSuffix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasSuffix(FieldNewStatus, v))
}

// NewStatusEqualFold applies the EqualFold predicate on the "new_status" field.
func NewStatusEqualFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEqualFold(FieldNewStatus, v))
}

// NewStatusContainsFold applies the ContainsFold predicate on the "new_status" field.
func NewStatusContainsFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContainsFold(FieldNewStatus, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotNull(FieldDetails))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldContainsFold(FieldDetails, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AlertHistory {
	return predicate.AlertHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAlert applies the HasEdge predicate on the "alert" edge.
func HasAlert() predicate.AlertHistory {
	return predicate.AlertHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AlertTable, AlertColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertWith applies the HasEdge predicate on the "alert" edge with a given conditions (other predicates).
func HasAlertWith(preds ...predicate.Alert) predicate.AlertHistory {
	return predicate.AlertHistory(func(s *sql.Selector) {
		step := newAlertStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertHistory) predicate.AlertHistory {
	return predicate.AlertHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertHistory) predicate.AlertHistory {
	return predicate.AlertHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertHistory) predicate.AlertHistory {
	return predicate.AlertHistory(sql.NotPredicates(p))
}
