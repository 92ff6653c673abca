// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/alerthistory"
)

// AlertHistory is the model entity for the AlertHistory schema.
type AlertHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AlertID holds the value of the "alert_id" field.
	AlertID string `json:"alert_id,omitempty"`
	// PreviousStatus holds the value of the "previous_status" field.
	PreviousStatus string `json:"previous_status,omitempty"`
	// NewStatus holds the value of the "new_status" field.
	NewStatus string `json:"new_status,omitempty"`
	// Details holds the value of the "details" field.
	Details string `json:"details,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertHistoryQuery when eager-loading is set.
	Edges        AlertHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertHistoryEdges holds the relations/edges for other nodes in the graph.
type AlertHistoryEdges struct {
	// Alert holds the value of the alert edge.
	Alert *Alert `json:"alert,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AlertOrErr returns the Alert value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertHistoryEdges) AlertOrErr() (*Alert, error) {
	if e.Alert != nil {
		return e.Alert, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alert.Label}
	}
	return nil, &NotLoadedError{edge: "alert"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alerthistory.FieldID, alerthistory.FieldAlertID, alerthistory.FieldPreviousStatus, alerthistory.FieldNewStatus, alerthistory.FieldDetails:
			values[i] = new(sql.NullString)
		case alerthistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertHistory fields.
func (_m *AlertHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alerthistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alerthistory.FieldAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value.Valid {
				_m.AlertID = value.String
			}
		case alerthistory.FieldPreviousStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_status", values[i])
			} else if value.Valid {
				_m.PreviousStatus = value.String
			}
		case alerthistory.FieldNewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_status", values[i])
			} else if value.Valid {
				_m.NewStatus = value.String
			}
		case alerthistory.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case alerthistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertHistory.
// This includes values selected through modifiers, order, etc.
func (_m *AlertHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlert queries the "alert" edge of the AlertHistory entity.
func (_m *AlertHistory) QueryAlert() *AlertQuery {
	return NewAlertHistoryClient(_m.config).QueryAlert(_m)
}

// Update returns a builder for updating this AlertHistory.
// Note that you need to call AlertHistory.Unwrap() before calling this method if this AlertHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertHistory) Update() *AlertHistoryUpdateOne {
	return NewAlertHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertHistory) Unwrap() *AlertHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertHistory) String() string {
	var builder strings.Builder
	builder.WriteString("AlertHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_id=")
	builder.WriteString(_m.AlertID)
	builder.WriteString(", ")
	builder.WriteString("previous_status=")
	builder.WriteString(_m.PreviousStatus)
	builder.WriteString(", ")
	builder.WriteString("new_status=")
	builder.WriteString(_m.NewStatus)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AlertHistories is a parsable slice of AlertHistory.
type AlertHistories []*AlertHistory
