// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/conductor/ent/analysisrun"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// AnalysisRun is the model entity for the AnalysisRun schema.
type AnalysisRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID string `json:"trace_id,omitempty"`
	// PipelineRunID holds the value of the "pipeline_run_id" field.
	PipelineRunID string `json:"pipeline_run_id,omitempty"`
	// IncidentID holds the value of the "incident_id" field.
	IncidentID *string `json:"incident_id,omitempty"`
	// Provider name (e.g. 'local', 'openai', 'anthropic')
	Provider string `json:"provider,omitempty"`
	// ProviderConfig holds the value of the "provider_config" field.
	ProviderConfig map[string]interface{} `json:"provider_config,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []models.Recommendation `json:"recommendations,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// Status holds the value of the "status" field.
	Status analysisrun.Status `json:"status,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisRunQuery when eager-loading is set.
	Edges        AnalysisRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisRunEdges holds the relations/edges for other nodes in the graph.
type AnalysisRunEdges struct {
	// Incident holds the value of the incident edge.
	Incident *Incident `json:"incident,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IncidentOrErr returns the Incident value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisRunEdges) IncidentOrErr() (*Incident, error) {
	if e.Incident != nil {
		return e.Incident, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: incident.Label}
	}
	return nil, &NotLoadedError{edge: "incident"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrun.FieldProviderConfig, analysisrun.FieldRecommendations:
			values[i] = new([]byte)
		case analysisrun.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case analysisrun.FieldID, analysisrun.FieldTraceID, analysisrun.FieldPipelineRunID, analysisrun.FieldIncidentID, analysisrun.FieldProvider, analysisrun.FieldStatus, analysisrun.FieldError:
			values[i] = new(sql.NullString)
		case analysisrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRun fields.
func (_m *AnalysisRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysisrun.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case analysisrun.FieldPipelineRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_run_id", values[i])
			} else if value.Valid {
				_m.PipelineRunID = value.String
			}
		case analysisrun.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = new(string)
				*_m.IncidentID = value.String
			}
		case analysisrun.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case analysisrun.FieldProviderConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderConfig); err != nil {
					return fmt.Errorf("unmarshal field provider_config: %w", err)
				}
			}
		case analysisrun.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case analysisrun.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case analysisrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysisrun.Status(value.String)
			}
		case analysisrun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case analysisrun.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRun.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIncident queries the "incident" edge of the AnalysisRun entity.
func (_m *AnalysisRun) QueryIncident() *IncidentQuery {
	return NewAnalysisRunClient(_m.config).QueryIncident(_m)
}

// Update returns a builder for updating this AnalysisRun.
// Note that you need to call AnalysisRun.Unwrap() before calling this method if this AnalysisRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRun) Update() *AnalysisRunUpdateOne {
	return NewAnalysisRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRun) Unwrap() *AnalysisRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRun) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("pipeline_run_id=")
	builder.WriteString(_m.PipelineRunID)
	builder.WriteString(", ")
	if v := _m.IncidentID; v != nil {
		builder.WriteString("incident_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("provider_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderConfig))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRuns is a parsable slice of AnalysisRun.
type AnalysisRuns []*AnalysisRun
