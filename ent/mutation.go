// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/alerthistory"
	"github.com/codeready-toolchain/conductor/ent/analysisrun"
	"github.com/codeready-toolchain/conductor/ent/checkrun"
	"github.com/codeready-toolchain/conductor/ent/event"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
	"github.com/codeready-toolchain/conductor/ent/notificationchannel"
	"github.com/codeready-toolchain/conductor/ent/pipelinedefinition"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/predicate"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
	"github.com/codeready-toolchain/conductor/ent/stageoutput"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert                = "Alert"
	TypeAlertHistory         = "AlertHistory"
	TypeAnalysisRun          = "AnalysisRun"
	TypeCheckRun             = "CheckRun"
	TypeEvent                = "Event"
	TypeIncident             = "Incident"
	TypeIntelligenceProvider = "IntelligenceProvider"
	TypeNotificationChannel  = "NotificationChannel"
	TypePipelineDefinition   = "PipelineDefinition"
	TypePipelineRun          = "PipelineRun"
	TypeStageExecution       = "StageExecution"
	TypeStageOutput          = "StageOutput"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op              Op
	typ             string
	id              *string
	fingerprint     *string
	source          *string
	name            *string
	severity        *alert.Severity
	status          *alert.Status
	labels          *map[string]string
	annotations     *map[string]string
	raw_payload     *map[string]interface{}
	received_at     *time.Time
	starts_at       *time.Time
	ends_at         *time.Time
	clearedFields   map[string]struct{}
	incident        *string
	clearedincident bool
	history         map[string]struct{}
	removedhistory  map[string]struct{}
	clearedhistory  bool
	done            bool
	oldValue        func(context.Context) (*Alert, error)
	predicates      []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id string) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *AlertMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AlertMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AlertMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetSource sets the "source" field.
func (m *AlertMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AlertMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AlertMutation) ResetSource() {
	m.source = nil
}

// SetName sets the "name" field.
func (m *AlertMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AlertMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AlertMutation) ResetName() {
	m.name = nil
}

// SetSeverity sets the "severity" field.
func (m *AlertMutation) SetSeverity(a alert.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertMutation) Severity() (r alert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeverity(ctx context.Context) (v alert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *AlertMutation) SetStatus(a alert.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertMutation) Status() (r alert.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStatus(ctx context.Context) (v alert.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertMutation) ResetStatus() {
	m.status = nil
}

// SetLabels sets the "labels" field.
func (m *AlertMutation) SetLabels(value map[string]string) {
	m.labels = &value
}

// Labels returns the value of the "labels" field in the mutation.
func (m *AlertMutation) Labels() (r map[string]string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldLabels(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// ClearLabels clears the value of the "labels" field.
func (m *AlertMutation) ClearLabels() {
	m.labels = nil
	m.clearedFields[alert.FieldLabels] = struct{}{}
}

// LabelsCleared returns if the "labels" field was cleared in this mutation.
func (m *AlertMutation) LabelsCleared() bool {
	_, ok := m.clearedFields[alert.FieldLabels]
	return ok
}

// ResetLabels resets all changes to the "labels" field.
func (m *AlertMutation) ResetLabels() {
	m.labels = nil
	delete(m.clearedFields, alert.FieldLabels)
}

// SetAnnotations sets the "annotations" field.
func (m *AlertMutation) SetAnnotations(value map[string]string) {
	m.annotations = &value
}

// Annotations returns the value of the "annotations" field in the mutation.
func (m *AlertMutation) Annotations() (r map[string]string, exists bool) {
	v := m.annotations
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnotations returns the old "annotations" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAnnotations(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnotations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnotations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnotations: %w", err)
	}
	return oldValue.Annotations, nil
}

// ClearAnnotations clears the value of the "annotations" field.
func (m *AlertMutation) ClearAnnotations() {
	m.annotations = nil
	m.clearedFields[alert.FieldAnnotations] = struct{}{}
}

// AnnotationsCleared returns if the "annotations" field was cleared in this mutation.
func (m *AlertMutation) AnnotationsCleared() bool {
	_, ok := m.clearedFields[alert.FieldAnnotations]
	return ok
}

// ResetAnnotations resets all changes to the "annotations" field.
func (m *AlertMutation) ResetAnnotations() {
	m.annotations = nil
	delete(m.clearedFields, alert.FieldAnnotations)
}

// SetRawPayload sets the "raw_payload" field.
func (m *AlertMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *AlertMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *AlertMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[alert.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *AlertMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[alert.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *AlertMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, alert.FieldRawPayload)
}

// SetIncidentID sets the "incident_id" field.
func (m *AlertMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AlertMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *AlertMutation) ClearIncidentID() {
	m.incident = nil
	m.clearedFields[alert.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *AlertMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AlertMutation) ResetIncidentID() {
	m.incident = nil
	delete(m.clearedFields, alert.FieldIncidentID)
}

// SetReceivedAt sets the "received_at" field.
func (m *AlertMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *AlertMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *AlertMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *AlertMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *AlertMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStartsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ClearStartsAt clears the value of the "starts_at" field.
func (m *AlertMutation) ClearStartsAt() {
	m.starts_at = nil
	m.clearedFields[alert.FieldStartsAt] = struct{}{}
}

// StartsAtCleared returns if the "starts_at" field was cleared in this mutation.
func (m *AlertMutation) StartsAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldStartsAt]
	return ok
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *AlertMutation) ResetStartsAt() {
	m.starts_at = nil
	delete(m.clearedFields, alert.FieldStartsAt)
}

// SetEndsAt sets the "ends_at" field.
func (m *AlertMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *AlertMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *AlertMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[alert.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *AlertMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *AlertMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, alert.FieldEndsAt)
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *AlertMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[alert.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *AlertMutation) IncidentCleared() bool {
	return m.IncidentIDCleared() || m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *AlertMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// AddHistoryIDs adds the "history" edge to the AlertHistory entity by ids.
func (m *AlertMutation) AddHistoryIDs(ids ...string) {
	if m.history == nil {
		m.history = make(map[string]struct{})
	}
	for i := range ids {
		m.history[ids[i]] = struct{}{}
	}
}

// ClearHistory clears the "history" edge to the AlertHistory entity.
func (m *AlertMutation) ClearHistory() {
	m.clearedhistory = true
}

// HistoryCleared reports if the "history" edge to the AlertHistory entity was cleared.
func (m *AlertMutation) HistoryCleared() bool {
	return m.clearedhistory
}

// RemoveHistoryIDs removes the "history" edge to the AlertHistory entity by IDs.
func (m *AlertMutation) RemoveHistoryIDs(ids ...string) {
	if m.removedhistory == nil {
		m.removedhistory = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.history, ids[i])
		m.removedhistory[ids[i]] = struct{}{}
	}
}

// RemovedHistory returns the removed IDs of the "history" edge to the AlertHistory entity.
func (m *AlertMutation) RemovedHistoryIDs() (ids []string) {
	for id := range m.removedhistory {
		ids = append(ids, id)
	}
	return
}

// HistoryIDs returns the "history" edge IDs in the mutation.
func (m *AlertMutation) HistoryIDs() (ids []string) {
	for id := range m.history {
		ids = append(ids, id)
	}
	return
}

// ResetHistory resets all changes to the "history" edge.
func (m *AlertMutation) ResetHistory() {
	m.history = nil
	m.clearedhistory = false
	m.removedhistory = nil
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.fingerprint != nil {
		fields = append(fields, alert.FieldFingerprint)
	}
	if m.source != nil {
		fields = append(fields, alert.FieldSource)
	}
	if m.name != nil {
		fields = append(fields, alert.FieldName)
	}
	if m.severity != nil {
		fields = append(fields, alert.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, alert.FieldStatus)
	}
	if m.labels != nil {
		fields = append(fields, alert.FieldLabels)
	}
	if m.annotations != nil {
		fields = append(fields, alert.FieldAnnotations)
	}
	if m.raw_payload != nil {
		fields = append(fields, alert.FieldRawPayload)
	}
	if m.incident != nil {
		fields = append(fields, alert.FieldIncidentID)
	}
	if m.received_at != nil {
		fields = append(fields, alert.FieldReceivedAt)
	}
	if m.starts_at != nil {
		fields = append(fields, alert.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, alert.FieldEndsAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldFingerprint:
		return m.Fingerprint()
	case alert.FieldSource:
		return m.Source()
	case alert.FieldName:
		return m.Name()
	case alert.FieldSeverity:
		return m.Severity()
	case alert.FieldStatus:
		return m.Status()
	case alert.FieldLabels:
		return m.Labels()
	case alert.FieldAnnotations:
		return m.Annotations()
	case alert.FieldRawPayload:
		return m.RawPayload()
	case alert.FieldIncidentID:
		return m.IncidentID()
	case alert.FieldReceivedAt:
		return m.ReceivedAt()
	case alert.FieldStartsAt:
		return m.StartsAt()
	case alert.FieldEndsAt:
		return m.EndsAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case alert.FieldSource:
		return m.OldSource(ctx)
	case alert.FieldName:
		return m.OldName(ctx)
	case alert.FieldSeverity:
		return m.OldSeverity(ctx)
	case alert.FieldStatus:
		return m.OldStatus(ctx)
	case alert.FieldLabels:
		return m.OldLabels(ctx)
	case alert.FieldAnnotations:
		return m.OldAnnotations(ctx)
	case alert.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case alert.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case alert.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case alert.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case alert.FieldEndsAt:
		return m.OldEndsAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case alert.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case alert.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case alert.FieldSeverity:
		v, ok := value.(alert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alert.FieldStatus:
		v, ok := value.(alert.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alert.FieldLabels:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	case alert.FieldAnnotations:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnotations(v)
		return nil
	case alert.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case alert.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case alert.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case alert.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case alert.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldLabels) {
		fields = append(fields, alert.FieldLabels)
	}
	if m.FieldCleared(alert.FieldAnnotations) {
		fields = append(fields, alert.FieldAnnotations)
	}
	if m.FieldCleared(alert.FieldRawPayload) {
		fields = append(fields, alert.FieldRawPayload)
	}
	if m.FieldCleared(alert.FieldIncidentID) {
		fields = append(fields, alert.FieldIncidentID)
	}
	if m.FieldCleared(alert.FieldStartsAt) {
		fields = append(fields, alert.FieldStartsAt)
	}
	if m.FieldCleared(alert.FieldEndsAt) {
		fields = append(fields, alert.FieldEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldLabels:
		m.ClearLabels()
		return nil
	case alert.FieldAnnotations:
		m.ClearAnnotations()
		return nil
	case alert.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	case alert.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case alert.FieldStartsAt:
		m.ClearStartsAt()
		return nil
	case alert.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case alert.FieldSource:
		m.ResetSource()
		return nil
	case alert.FieldName:
		m.ResetName()
		return nil
	case alert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alert.FieldStatus:
		m.ResetStatus()
		return nil
	case alert.FieldLabels:
		m.ResetLabels()
		return nil
	case alert.FieldAnnotations:
		m.ResetAnnotations()
		return nil
	case alert.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case alert.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case alert.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case alert.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case alert.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.incident != nil {
		edges = append(edges, alert.EdgeIncident)
	}
	if m.history != nil {
		edges = append(edges, alert.EdgeHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	case alert.EdgeHistory:
		ids := make([]ent.Value, 0, len(m.history))
		for id := range m.history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedhistory != nil {
		edges = append(edges, alert.EdgeHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeHistory:
		ids := make([]ent.Value, 0, len(m.removedhistory))
		for id := range m.removedhistory {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedincident {
		edges = append(edges, alert.EdgeIncident)
	}
	if m.clearedhistory {
		edges = append(edges, alert.EdgeHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeIncident:
		return m.clearedincident
	case alert.EdgeHistory:
		return m.clearedhistory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeIncident:
		m.ResetIncident()
		return nil
	case alert.EdgeHistory:
		m.ResetHistory()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// AlertHistoryMutation represents an operation that mutates the AlertHistory nodes in the graph.
type AlertHistoryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	previous_status *string
	new_status      *string
	details         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	alert           *string
	clearedalert    bool
	done            bool
	oldValue        func(context.Context) (*AlertHistory, error)
	predicates      []predicate.AlertHistory
}

var _ ent.Mutation = (*AlertHistoryMutation)(nil)

// alerthistoryOption allows management of the mutation configuration using functional options.
type alerthistoryOption func(*AlertHistoryMutation)

// newAlertHistoryMutation creates new mutation for the AlertHistory entity.
func newAlertHistoryMutation(c config, op Op, opts ...alerthistoryOption) *AlertHistoryMutation {
	m := &AlertHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertHistoryID sets the ID field of the mutation.
func withAlertHistoryID(id string) alerthistoryOption {
	return func(m *AlertHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertHistory
		)
		m.oldValue = func(ctx context.Context) (*AlertHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertHistory sets the old AlertHistory of the mutation.
func withAlertHistory(node *AlertHistory) alerthistoryOption {
	return func(m *AlertHistoryMutation) {
		m.oldValue = func(context.Context) (*AlertHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertHistory entities.
func (m *AlertHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAlertID sets the "alert_id" field.
func (m *AlertHistoryMutation) SetAlertID(s string) {
	m.alert = &s
}

// AlertID returns the value of the "alert_id" field in the mutation.
func (m *AlertHistoryMutation) AlertID() (r string, exists bool) {
	v := m.alert
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertID returns the old "alert_id" field's value of the AlertHistory entity.
// If the AlertHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertHistoryMutation) OldAlertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertID: %w", err)
	}
	return oldValue.AlertID, nil
}

// ResetAlertID resets all changes to the "alert_id" field.
func (m *AlertHistoryMutation) ResetAlertID() {
	m.alert = nil
}

// SetPreviousStatus sets the "previous_status" field.
func (m *AlertHistoryMutation) SetPreviousStatus(s string) {
	m.previous_status = &s
}

// PreviousStatus returns the value of the "previous_status" field in the mutation.
func (m *AlertHistoryMutation) PreviousStatus() (r string, exists bool) {
	v := m.previous_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousStatus returns the old "previous_status" field's value of the AlertHistory entity.
// If the AlertHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertHistoryMutation) OldPreviousStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousStatus: %w", err)
	}
	return oldValue.PreviousStatus, nil
}

// ResetPreviousStatus resets all changes to the "previous_status" field.
func (m *AlertHistoryMutation) ResetPreviousStatus() {
	m.previous_status = nil
}

// SetNewStatus sets the "new_status" field.
func (m *AlertHistoryMutation) SetNewStatus(s string) {
	m.new_status = &s
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *AlertHistoryMutation) NewStatus() (r string, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the AlertHistory entity.
// If the AlertHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertHistoryMutation) OldNewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *AlertHistoryMutation) ResetNewStatus() {
	m.new_status = nil
}

// SetDetails sets the "details" field.
func (m *AlertHistoryMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *AlertHistoryMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AlertHistory entity.
// If the AlertHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertHistoryMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AlertHistoryMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[alerthistory.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AlertHistoryMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[alerthistory.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AlertHistoryMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, alerthistory.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlertHistory entity.
// If the AlertHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAlert clears the "alert" edge to the Alert entity.
func (m *AlertHistoryMutation) ClearAlert() {
	m.clearedalert = true
	m.clearedFields[alerthistory.FieldAlertID] = struct{}{}
}

// AlertCleared reports if the "alert" edge to the Alert entity was cleared.
func (m *AlertHistoryMutation) AlertCleared() bool {
	return m.clearedalert
}

// AlertIDs returns the "alert" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AlertID instead. It exists only for internal usage by the builders.
func (m *AlertHistoryMutation) AlertIDs() (ids []string) {
	if id := m.alert; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAlert resets all changes to the "alert" edge.
func (m *AlertHistoryMutation) ResetAlert() {
	m.alert = nil
	m.clearedalert = false
}

// Where appends a list predicates to the AlertHistoryMutation builder.
func (m *AlertHistoryMutation) Where(ps ...predicate.AlertHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertHistory).
func (m *AlertHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertHistoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.alert != nil {
		fields = append(fields, alerthistory.FieldAlertID)
	}
	if m.previous_status != nil {
		fields = append(fields, alerthistory.FieldPreviousStatus)
	}
	if m.new_status != nil {
		fields = append(fields, alerthistory.FieldNewStatus)
	}
	if m.details != nil {
		fields = append(fields, alerthistory.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, alerthistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alerthistory.FieldAlertID:
		return m.AlertID()
	case alerthistory.FieldPreviousStatus:
		return m.PreviousStatus()
	case alerthistory.FieldNewStatus:
		return m.NewStatus()
	case alerthistory.FieldDetails:
		return m.Details()
	case alerthistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alerthistory.FieldAlertID:
		return m.OldAlertID(ctx)
	case alerthistory.FieldPreviousStatus:
		return m.OldPreviousStatus(ctx)
	case alerthistory.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case alerthistory.FieldDetails:
		return m.OldDetails(ctx)
	case alerthistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alerthistory.FieldAlertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertID(v)
		return nil
	case alerthistory.FieldPreviousStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousStatus(v)
		return nil
	case alerthistory.FieldNewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case alerthistory.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case alerthistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AlertHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alerthistory.FieldDetails) {
		fields = append(fields, alerthistory.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertHistoryMutation) ClearField(name string) error {
	switch name {
	case alerthistory.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AlertHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertHistoryMutation) ResetField(name string) error {
	switch name {
	case alerthistory.FieldAlertID:
		m.ResetAlertID()
		return nil
	case alerthistory.FieldPreviousStatus:
		m.ResetPreviousStatus()
		return nil
	case alerthistory.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case alerthistory.FieldDetails:
		m.ResetDetails()
		return nil
	case alerthistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.alert != nil {
		edges = append(edges, alerthistory.EdgeAlert)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alerthistory.EdgeAlert:
		if id := m.alert; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedalert {
		edges = append(edges, alerthistory.EdgeAlert)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case alerthistory.EdgeAlert:
		return m.clearedalert
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertHistoryMutation) ClearEdge(name string) error {
	switch name {
	case alerthistory.EdgeAlert:
		m.ClearAlert()
		return nil
	}
	return fmt.Errorf("unknown AlertHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertHistoryMutation) ResetEdge(name string) error {
	switch name {
	case alerthistory.EdgeAlert:
		m.ResetAlert()
		return nil
	}
	return fmt.Errorf("unknown AlertHistory edge %s", name)
}

// AnalysisRunMutation represents an operation that mutates the AnalysisRun nodes in the graph.
type AnalysisRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	trace_id              *string
	pipeline_run_id       *string
	provider              *string
	provider_config       *map[string]interface{}
	recommendations       *[]models.Recommendation
	appendrecommendations []models.Recommendation
	total_tokens          *int
	addtotal_tokens       *int
	status                *analysisrun.Status
	error                 *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	incident              *string
	clearedincident       bool
	done                  bool
	oldValue              func(context.Context) (*AnalysisRun, error)
	predicates            []predicate.AnalysisRun
}

var _ ent.Mutation = (*AnalysisRunMutation)(nil)

// analysisrunOption allows management of the mutation configuration using functional options.
type analysisrunOption func(*AnalysisRunMutation)

// newAnalysisRunMutation creates new mutation for the AnalysisRun entity.
func newAnalysisRunMutation(c config, op Op, opts ...analysisrunOption) *AnalysisRunMutation {
	m := &AnalysisRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisRunID sets the ID field of the mutation.
func withAnalysisRunID(id string) analysisrunOption {
	return func(m *AnalysisRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisRun
		)
		m.oldValue = func(ctx context.Context) (*AnalysisRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisRun sets the old AnalysisRun of the mutation.
func withAnalysisRun(node *AnalysisRun) analysisrunOption {
	return func(m *AnalysisRunMutation) {
		m.oldValue = func(context.Context) (*AnalysisRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisRun entities.
func (m *AnalysisRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTraceID sets the "trace_id" field.
func (m *AnalysisRunMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *AnalysisRunMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *AnalysisRunMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (m *AnalysisRunMutation) SetPipelineRunID(s string) {
	m.pipeline_run_id = &s
}

// PipelineRunID returns the value of the "pipeline_run_id" field in the mutation.
func (m *AnalysisRunMutation) PipelineRunID() (r string, exists bool) {
	v := m.pipeline_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineRunID returns the old "pipeline_run_id" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldPipelineRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineRunID: %w", err)
	}
	return oldValue.PipelineRunID, nil
}

// ClearPipelineRunID clears the value of the "pipeline_run_id" field.
func (m *AnalysisRunMutation) ClearPipelineRunID() {
	m.pipeline_run_id = nil
	m.clearedFields[analysisrun.FieldPipelineRunID] = struct{}{}
}

// PipelineRunIDCleared returns if the "pipeline_run_id" field was cleared in this mutation.
func (m *AnalysisRunMutation) PipelineRunIDCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldPipelineRunID]
	return ok
}

// ResetPipelineRunID resets all changes to the "pipeline_run_id" field.
func (m *AnalysisRunMutation) ResetPipelineRunID() {
	m.pipeline_run_id = nil
	delete(m.clearedFields, analysisrun.FieldPipelineRunID)
}

// SetIncidentID sets the "incident_id" field.
func (m *AnalysisRunMutation) SetIncidentID(s string) {
	m.incident = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AnalysisRunMutation) IncidentID() (r string, exists bool) {
	v := m.incident
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *AnalysisRunMutation) ClearIncidentID() {
	m.incident = nil
	m.clearedFields[analysisrun.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *AnalysisRunMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AnalysisRunMutation) ResetIncidentID() {
	m.incident = nil
	delete(m.clearedFields, analysisrun.FieldIncidentID)
}

// SetProvider sets the "provider" field.
func (m *AnalysisRunMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AnalysisRunMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AnalysisRunMutation) ResetProvider() {
	m.provider = nil
}

// SetProviderConfig sets the "provider_config" field.
func (m *AnalysisRunMutation) SetProviderConfig(value map[string]interface{}) {
	m.provider_config = &value
}

// ProviderConfig returns the value of the "provider_config" field in the mutation.
func (m *AnalysisRunMutation) ProviderConfig() (r map[string]interface{}, exists bool) {
	v := m.provider_config
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderConfig returns the old "provider_config" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldProviderConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderConfig: %w", err)
	}
	return oldValue.ProviderConfig, nil
}

// ClearProviderConfig clears the value of the "provider_config" field.
func (m *AnalysisRunMutation) ClearProviderConfig() {
	m.provider_config = nil
	m.clearedFields[analysisrun.FieldProviderConfig] = struct{}{}
}

// ProviderConfigCleared returns if the "provider_config" field was cleared in this mutation.
func (m *AnalysisRunMutation) ProviderConfigCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldProviderConfig]
	return ok
}

// ResetProviderConfig resets all changes to the "provider_config" field.
func (m *AnalysisRunMutation) ResetProviderConfig() {
	m.provider_config = nil
	delete(m.clearedFields, analysisrun.FieldProviderConfig)
}

// SetRecommendations sets the "recommendations" field.
func (m *AnalysisRunMutation) SetRecommendations(value []models.Recommendation) {
	m.recommendations = &value
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *AnalysisRunMutation) Recommendations() (r []models.Recommendation, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldRecommendations(ctx context.Context) (v []models.Recommendation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds value to the "recommendations" field.
func (m *AnalysisRunMutation) AppendRecommendations(value []models.Recommendation) {
	m.appendrecommendations = append(m.appendrecommendations, value...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *AnalysisRunMutation) AppendedRecommendations() ([]models.Recommendation, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *AnalysisRunMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[analysisrun.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *AnalysisRunMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *AnalysisRunMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, analysisrun.FieldRecommendations)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *AnalysisRunMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *AnalysisRunMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *AnalysisRunMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *AnalysisRunMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *AnalysisRunMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[analysisrun.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *AnalysisRunMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *AnalysisRunMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, analysisrun.FieldTotalTokens)
}

// SetStatus sets the "status" field.
func (m *AnalysisRunMutation) SetStatus(a analysisrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisRunMutation) Status() (r analysisrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldStatus(ctx context.Context) (v analysisrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisRunMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *AnalysisRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *AnalysisRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *AnalysisRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[analysisrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *AnalysisRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[analysisrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *AnalysisRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, analysisrun.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisRun entity.
// If the AnalysisRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIncident clears the "incident" edge to the Incident entity.
func (m *AnalysisRunMutation) ClearIncident() {
	m.clearedincident = true
	m.clearedFields[analysisrun.FieldIncidentID] = struct{}{}
}

// IncidentCleared reports if the "incident" edge to the Incident entity was cleared.
func (m *AnalysisRunMutation) IncidentCleared() bool {
	return m.IncidentIDCleared() || m.clearedincident
}

// IncidentIDs returns the "incident" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IncidentID instead. It exists only for internal usage by the builders.
func (m *AnalysisRunMutation) IncidentIDs() (ids []string) {
	if id := m.incident; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIncident resets all changes to the "incident" edge.
func (m *AnalysisRunMutation) ResetIncident() {
	m.incident = nil
	m.clearedincident = false
}

// Where appends a list predicates to the AnalysisRunMutation builder.
func (m *AnalysisRunMutation) Where(ps ...predicate.AnalysisRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisRun).
func (m *AnalysisRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.trace_id != nil {
		fields = append(fields, analysisrun.FieldTraceID)
	}
	if m.pipeline_run_id != nil {
		fields = append(fields, analysisrun.FieldPipelineRunID)
	}
	if m.incident != nil {
		fields = append(fields, analysisrun.FieldIncidentID)
	}
	if m.provider != nil {
		fields = append(fields, analysisrun.FieldProvider)
	}
	if m.provider_config != nil {
		fields = append(fields, analysisrun.FieldProviderConfig)
	}
	if m.recommendations != nil {
		fields = append(fields, analysisrun.FieldRecommendations)
	}
	if m.total_tokens != nil {
		fields = append(fields, analysisrun.FieldTotalTokens)
	}
	if m.status != nil {
		fields = append(fields, analysisrun.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, analysisrun.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, analysisrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisrun.FieldTraceID:
		return m.TraceID()
	case analysisrun.FieldPipelineRunID:
		return m.PipelineRunID()
	case analysisrun.FieldIncidentID:
		return m.IncidentID()
	case analysisrun.FieldProvider:
		return m.Provider()
	case analysisrun.FieldProviderConfig:
		return m.ProviderConfig()
	case analysisrun.FieldRecommendations:
		return m.Recommendations()
	case analysisrun.FieldTotalTokens:
		return m.TotalTokens()
	case analysisrun.FieldStatus:
		return m.Status()
	case analysisrun.FieldError:
		return m.Error()
	case analysisrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisrun.FieldTraceID:
		return m.OldTraceID(ctx)
	case analysisrun.FieldPipelineRunID:
		return m.OldPipelineRunID(ctx)
	case analysisrun.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case analysisrun.FieldProvider:
		return m.OldProvider(ctx)
	case analysisrun.FieldProviderConfig:
		return m.OldProviderConfig(ctx)
	case analysisrun.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case analysisrun.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case analysisrun.FieldStatus:
		return m.OldStatus(ctx)
	case analysisrun.FieldError:
		return m.OldError(ctx)
	case analysisrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisrun.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case analysisrun.FieldPipelineRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineRunID(v)
		return nil
	case analysisrun.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case analysisrun.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case analysisrun.FieldProviderConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderConfig(v)
		return nil
	case analysisrun.FieldRecommendations:
		v, ok := value.([]models.Recommendation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case analysisrun.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case analysisrun.FieldStatus:
		v, ok := value.(analysisrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case analysisrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tokens != nil {
		fields = append(fields, analysisrun.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisrun.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisrun.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisrun.FieldPipelineRunID) {
		fields = append(fields, analysisrun.FieldPipelineRunID)
	}
	if m.FieldCleared(analysisrun.FieldIncidentID) {
		fields = append(fields, analysisrun.FieldIncidentID)
	}
	if m.FieldCleared(analysisrun.FieldProviderConfig) {
		fields = append(fields, analysisrun.FieldProviderConfig)
	}
	if m.FieldCleared(analysisrun.FieldRecommendations) {
		fields = append(fields, analysisrun.FieldRecommendations)
	}
	if m.FieldCleared(analysisrun.FieldTotalTokens) {
		fields = append(fields, analysisrun.FieldTotalTokens)
	}
	if m.FieldCleared(analysisrun.FieldError) {
		fields = append(fields, analysisrun.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisRunMutation) ClearField(name string) error {
	switch name {
	case analysisrun.FieldPipelineRunID:
		m.ClearPipelineRunID()
		return nil
	case analysisrun.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case analysisrun.FieldProviderConfig:
		m.ClearProviderConfig()
		return nil
	case analysisrun.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case analysisrun.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	case analysisrun.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisRunMutation) ResetField(name string) error {
	switch name {
	case analysisrun.FieldTraceID:
		m.ResetTraceID()
		return nil
	case analysisrun.FieldPipelineRunID:
		m.ResetPipelineRunID()
		return nil
	case analysisrun.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case analysisrun.FieldProvider:
		m.ResetProvider()
		return nil
	case analysisrun.FieldProviderConfig:
		m.ResetProviderConfig()
		return nil
	case analysisrun.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case analysisrun.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case analysisrun.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisrun.FieldError:
		m.ResetError()
		return nil
	case analysisrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.incident != nil {
		edges = append(edges, analysisrun.EdgeIncident)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisrun.EdgeIncident:
		if id := m.incident; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedincident {
		edges = append(edges, analysisrun.EdgeIncident)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisRunMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisrun.EdgeIncident:
		return m.clearedincident
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisRunMutation) ClearEdge(name string) error {
	switch name {
	case analysisrun.EdgeIncident:
		m.ClearIncident()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisRunMutation) ResetEdge(name string) error {
	switch name {
	case analysisrun.EdgeIncident:
		m.ResetIncident()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRun edge %s", name)
}

// CheckRunMutation represents an operation that mutates the CheckRun nodes in the graph.
type CheckRunMutation struct {
	config
	op              Op
	typ             string
	id              *string
	checker_name    *string
	hostname        *string
	status          *checkrun.Status
	message         *string
	metrics         *map[string]interface{}
	error           *string
	trace_id        *string
	pipeline_run_id *string
	executed_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CheckRun, error)
	predicates      []predicate.CheckRun
}

var _ ent.Mutation = (*CheckRunMutation)(nil)

// checkrunOption allows management of the mutation configuration using functional options.
type checkrunOption func(*CheckRunMutation)

// newCheckRunMutation creates new mutation for the CheckRun entity.
func newCheckRunMutation(c config, op Op, opts ...checkrunOption) *CheckRunMutation {
	m := &CheckRunMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckRunID sets the ID field of the mutation.
func withCheckRunID(id string) checkrunOption {
	return func(m *CheckRunMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckRun
		)
		m.oldValue = func(ctx context.Context) (*CheckRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckRun sets the old CheckRun of the mutation.
func withCheckRun(node *CheckRun) checkrunOption {
	return func(m *CheckRunMutation) {
		m.oldValue = func(context.Context) (*CheckRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CheckRun entities.
func (m *CheckRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCheckerName sets the "checker_name" field.
func (m *CheckRunMutation) SetCheckerName(s string) {
	m.checker_name = &s
}

// CheckerName returns the value of the "checker_name" field in the mutation.
func (m *CheckRunMutation) CheckerName() (r string, exists bool) {
	v := m.checker_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckerName returns the old "checker_name" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldCheckerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckerName: %w", err)
	}
	return oldValue.CheckerName, nil
}

// ResetCheckerName resets all changes to the "checker_name" field.
func (m *CheckRunMutation) ResetCheckerName() {
	m.checker_name = nil
}

// SetHostname sets the "hostname" field.
func (m *CheckRunMutation) SetHostname(s string) {
	m.hostname = &s
}

// Hostname returns the value of the "hostname" field in the mutation.
func (m *CheckRunMutation) Hostname() (r string, exists bool) {
	v := m.hostname
	if v == nil {
		return
	}
	return *v, true
}

// OldHostname returns the old "hostname" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldHostname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostname: %w", err)
	}
	return oldValue.Hostname, nil
}

// ClearHostname clears the value of the "hostname" field.
func (m *CheckRunMutation) ClearHostname() {
	m.hostname = nil
	m.clearedFields[checkrun.FieldHostname] = struct{}{}
}

// HostnameCleared returns if the "hostname" field was cleared in this mutation.
func (m *CheckRunMutation) HostnameCleared() bool {
	_, ok := m.clearedFields[checkrun.FieldHostname]
	return ok
}

// ResetHostname resets all changes to the "hostname" field.
func (m *CheckRunMutation) ResetHostname() {
	m.hostname = nil
	delete(m.clearedFields, checkrun.FieldHostname)
}

// SetStatus sets the "status" field.
func (m *CheckRunMutation) SetStatus(c checkrun.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CheckRunMutation) Status() (r checkrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldStatus(ctx context.Context) (v checkrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CheckRunMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *CheckRunMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *CheckRunMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *CheckRunMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[checkrun.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *CheckRunMutation) MessageCleared() bool {
	_, ok := m.clearedFields[checkrun.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *CheckRunMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, checkrun.FieldMessage)
}

// SetMetrics sets the "metrics" field.
func (m *CheckRunMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *CheckRunMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *CheckRunMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[checkrun.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *CheckRunMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[checkrun.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *CheckRunMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, checkrun.FieldMetrics)
}

// SetError sets the "error" field.
func (m *CheckRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *CheckRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *CheckRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[checkrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *CheckRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[checkrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *CheckRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, checkrun.FieldError)
}

// SetTraceID sets the "trace_id" field.
func (m *CheckRunMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *CheckRunMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *CheckRunMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (m *CheckRunMutation) SetPipelineRunID(s string) {
	m.pipeline_run_id = &s
}

// PipelineRunID returns the value of the "pipeline_run_id" field in the mutation.
func (m *CheckRunMutation) PipelineRunID() (r string, exists bool) {
	v := m.pipeline_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineRunID returns the old "pipeline_run_id" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldPipelineRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineRunID: %w", err)
	}
	return oldValue.PipelineRunID, nil
}

// ClearPipelineRunID clears the value of the "pipeline_run_id" field.
func (m *CheckRunMutation) ClearPipelineRunID() {
	m.pipeline_run_id = nil
	m.clearedFields[checkrun.FieldPipelineRunID] = struct{}{}
}

// PipelineRunIDCleared returns if the "pipeline_run_id" field was cleared in this mutation.
func (m *CheckRunMutation) PipelineRunIDCleared() bool {
	_, ok := m.clearedFields[checkrun.FieldPipelineRunID]
	return ok
}

// ResetPipelineRunID resets all changes to the "pipeline_run_id" field.
func (m *CheckRunMutation) ResetPipelineRunID() {
	m.pipeline_run_id = nil
	delete(m.clearedFields, checkrun.FieldPipelineRunID)
}

// SetExecutedAt sets the "executed_at" field.
func (m *CheckRunMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *CheckRunMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the CheckRun entity.
// If the CheckRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckRunMutation) OldExecutedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *CheckRunMutation) ResetExecutedAt() {
	m.executed_at = nil
}

// Where appends a list predicates to the CheckRunMutation builder.
func (m *CheckRunMutation) Where(ps ...predicate.CheckRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckRun).
func (m *CheckRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckRunMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.checker_name != nil {
		fields = append(fields, checkrun.FieldCheckerName)
	}
	if m.hostname != nil {
		fields = append(fields, checkrun.FieldHostname)
	}
	if m.status != nil {
		fields = append(fields, checkrun.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, checkrun.FieldMessage)
	}
	if m.metrics != nil {
		fields = append(fields, checkrun.FieldMetrics)
	}
	if m.error != nil {
		fields = append(fields, checkrun.FieldError)
	}
	if m.trace_id != nil {
		fields = append(fields, checkrun.FieldTraceID)
	}
	if m.pipeline_run_id != nil {
		fields = append(fields, checkrun.FieldPipelineRunID)
	}
	if m.executed_at != nil {
		fields = append(fields, checkrun.FieldExecutedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkrun.FieldCheckerName:
		return m.CheckerName()
	case checkrun.FieldHostname:
		return m.Hostname()
	case checkrun.FieldStatus:
		return m.Status()
	case checkrun.FieldMessage:
		return m.Message()
	case checkrun.FieldMetrics:
		return m.Metrics()
	case checkrun.FieldError:
		return m.Error()
	case checkrun.FieldTraceID:
		return m.TraceID()
	case checkrun.FieldPipelineRunID:
		return m.PipelineRunID()
	case checkrun.FieldExecutedAt:
		return m.ExecutedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkrun.FieldCheckerName:
		return m.OldCheckerName(ctx)
	case checkrun.FieldHostname:
		return m.OldHostname(ctx)
	case checkrun.FieldStatus:
		return m.OldStatus(ctx)
	case checkrun.FieldMessage:
		return m.OldMessage(ctx)
	case checkrun.FieldMetrics:
		return m.OldMetrics(ctx)
	case checkrun.FieldError:
		return m.OldError(ctx)
	case checkrun.FieldTraceID:
		return m.OldTraceID(ctx)
	case checkrun.FieldPipelineRunID:
		return m.OldPipelineRunID(ctx)
	case checkrun.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CheckRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkrun.FieldCheckerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckerName(v)
		return nil
	case checkrun.FieldHostname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostname(v)
		return nil
	case checkrun.FieldStatus:
		v, ok := value.(checkrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case checkrun.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case checkrun.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case checkrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case checkrun.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case checkrun.FieldPipelineRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineRunID(v)
		return nil
	case checkrun.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CheckRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CheckRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkrun.FieldHostname) {
		fields = append(fields, checkrun.FieldHostname)
	}
	if m.FieldCleared(checkrun.FieldMessage) {
		fields = append(fields, checkrun.FieldMessage)
	}
	if m.FieldCleared(checkrun.FieldMetrics) {
		fields = append(fields, checkrun.FieldMetrics)
	}
	if m.FieldCleared(checkrun.FieldError) {
		fields = append(fields, checkrun.FieldError)
	}
	if m.FieldCleared(checkrun.FieldPipelineRunID) {
		fields = append(fields, checkrun.FieldPipelineRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckRunMutation) ClearField(name string) error {
	switch name {
	case checkrun.FieldHostname:
		m.ClearHostname()
		return nil
	case checkrun.FieldMessage:
		m.ClearMessage()
		return nil
	case checkrun.FieldMetrics:
		m.ClearMetrics()
		return nil
	case checkrun.FieldError:
		m.ClearError()
		return nil
	case checkrun.FieldPipelineRunID:
		m.ClearPipelineRunID()
		return nil
	}
	return fmt.Errorf("unknown CheckRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckRunMutation) ResetField(name string) error {
	switch name {
	case checkrun.FieldCheckerName:
		m.ResetCheckerName()
		return nil
	case checkrun.FieldHostname:
		m.ResetHostname()
		return nil
	case checkrun.FieldStatus:
		m.ResetStatus()
		return nil
	case checkrun.FieldMessage:
		m.ResetMessage()
		return nil
	case checkrun.FieldMetrics:
		m.ResetMetrics()
		return nil
	case checkrun.FieldError:
		m.ResetError()
		return nil
	case checkrun.FieldTraceID:
		m.ResetTraceID()
		return nil
	case checkrun.FieldPipelineRunID:
		m.ResetPipelineRunID()
		return nil
	case checkrun.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown CheckRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CheckRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CheckRun edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	channel       *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run_id != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRunID:
		return m.RunID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	description          *string
	severity             *incident.Severity
	status               *incident.Status
	grouping_key         *string
	metadata             *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	resolved_at          *time.Time
	clearedFields        map[string]struct{}
	alerts               map[string]struct{}
	removedalerts        map[string]struct{}
	clearedalerts        bool
	analysis_runs        map[string]struct{}
	removedanalysis_runs map[string]struct{}
	clearedanalysis_runs bool
	done                 bool
	oldValue             func(context.Context) (*Incident, error)
	predicates           []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IncidentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IncidentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IncidentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[incident.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IncidentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[incident.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IncidentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, incident.FieldDescription)
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(i incident.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r incident.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v incident.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *IncidentMutation) SetStatus(i incident.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IncidentMutation) Status() (r incident.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStatus(ctx context.Context) (v incident.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IncidentMutation) ResetStatus() {
	m.status = nil
}

// SetGroupingKey sets the "grouping_key" field.
func (m *IncidentMutation) SetGroupingKey(s string) {
	m.grouping_key = &s
}

// GroupingKey returns the value of the "grouping_key" field in the mutation.
func (m *IncidentMutation) GroupingKey() (r string, exists bool) {
	v := m.grouping_key
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupingKey returns the old "grouping_key" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldGroupingKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupingKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupingKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupingKey: %w", err)
	}
	return oldValue.GroupingKey, nil
}

// ResetGroupingKey resets all changes to the "grouping_key" field.
func (m *IncidentMutation) ResetGroupingKey() {
	m.grouping_key = nil
}

// SetMetadata sets the "metadata" field.
func (m *IncidentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *IncidentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *IncidentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[incident.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *IncidentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[incident.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *IncidentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, incident.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IncidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IncidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IncidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *IncidentMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *IncidentMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *IncidentMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[incident.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *IncidentMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *IncidentMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, incident.FieldResolvedAt)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *IncidentMutation) AddAlertIDs(ids ...string) {
	if m.alerts == nil {
		m.alerts = make(map[string]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *IncidentMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *IncidentMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *IncidentMutation) RemoveAlertIDs(ids ...string) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *IncidentMutation) RemovedAlertsIDs() (ids []string) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *IncidentMutation) AlertsIDs() (ids []string) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *IncidentMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// AddAnalysisRunIDs adds the "analysis_runs" edge to the AnalysisRun entity by ids.
func (m *IncidentMutation) AddAnalysisRunIDs(ids ...string) {
	if m.analysis_runs == nil {
		m.analysis_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.analysis_runs[ids[i]] = struct{}{}
	}
}

// ClearAnalysisRuns clears the "analysis_runs" edge to the AnalysisRun entity.
func (m *IncidentMutation) ClearAnalysisRuns() {
	m.clearedanalysis_runs = true
}

// AnalysisRunsCleared reports if the "analysis_runs" edge to the AnalysisRun entity was cleared.
func (m *IncidentMutation) AnalysisRunsCleared() bool {
	return m.clearedanalysis_runs
}

// RemoveAnalysisRunIDs removes the "analysis_runs" edge to the AnalysisRun entity by IDs.
func (m *IncidentMutation) RemoveAnalysisRunIDs(ids ...string) {
	if m.removedanalysis_runs == nil {
		m.removedanalysis_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analysis_runs, ids[i])
		m.removedanalysis_runs[ids[i]] = struct{}{}
	}
}

// RemovedAnalysisRuns returns the removed IDs of the "analysis_runs" edge to the AnalysisRun entity.
func (m *IncidentMutation) RemovedAnalysisRunsIDs() (ids []string) {
	for id := range m.removedanalysis_runs {
		ids = append(ids, id)
	}
	return
}

// AnalysisRunsIDs returns the "analysis_runs" edge IDs in the mutation.
func (m *IncidentMutation) AnalysisRunsIDs() (ids []string) {
	for id := range m.analysis_runs {
		ids = append(ids, id)
	}
	return
}

// ResetAnalysisRuns resets all changes to the "analysis_runs" edge.
func (m *IncidentMutation) ResetAnalysisRuns() {
	m.analysis_runs = nil
	m.clearedanalysis_runs = false
	m.removedanalysis_runs = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, incident.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, incident.FieldStatus)
	}
	if m.grouping_key != nil {
		fields = append(fields, incident.FieldGroupingKey)
	}
	if m.metadata != nil {
		fields = append(fields, incident.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, incident.FieldUpdatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, incident.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldDescription:
		return m.Description()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldStatus:
		return m.Status()
	case incident.FieldGroupingKey:
		return m.GroupingKey()
	case incident.FieldMetadata:
		return m.Metadata()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldUpdatedAt:
		return m.UpdatedAt()
	case incident.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldDescription:
		return m.OldDescription(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldStatus:
		return m.OldStatus(ctx)
	case incident.FieldGroupingKey:
		return m.OldGroupingKey(ctx)
	case incident.FieldMetadata:
		return m.OldMetadata(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case incident.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(incident.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldStatus:
		v, ok := value.(incident.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incident.FieldGroupingKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupingKey(v)
		return nil
	case incident.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case incident.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldDescription) {
		fields = append(fields, incident.FieldDescription)
	}
	if m.FieldCleared(incident.FieldMetadata) {
		fields = append(fields, incident.FieldMetadata)
	}
	if m.FieldCleared(incident.FieldResolvedAt) {
		fields = append(fields, incident.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldDescription:
		m.ClearDescription()
		return nil
	case incident.FieldMetadata:
		m.ClearMetadata()
		return nil
	case incident.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldDescription:
		m.ResetDescription()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldStatus:
		m.ResetStatus()
		return nil
	case incident.FieldGroupingKey:
		m.ResetGroupingKey()
		return nil
	case incident.FieldMetadata:
		m.ResetMetadata()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case incident.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.alerts != nil {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.analysis_runs != nil {
		edges = append(edges, incident.EdgeAnalysisRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeAnalysisRuns:
		ids := make([]ent.Value, 0, len(m.analysis_runs))
		for id := range m.analysis_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedalerts != nil {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.removedanalysis_runs != nil {
		edges = append(edges, incident.EdgeAnalysisRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case incident.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	case incident.EdgeAnalysisRuns:
		ids := make([]ent.Value, 0, len(m.removedanalysis_runs))
		for id := range m.removedanalysis_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedalerts {
		edges = append(edges, incident.EdgeAlerts)
	}
	if m.clearedanalysis_runs {
		edges = append(edges, incident.EdgeAnalysisRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	switch name {
	case incident.EdgeAlerts:
		return m.clearedalerts
	case incident.EdgeAnalysisRuns:
		return m.clearedanalysis_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	switch name {
	case incident.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case incident.EdgeAnalysisRuns:
		m.ResetAnalysisRuns()
		return nil
	}
	return fmt.Errorf("unknown Incident edge %s", name)
}

// IntelligenceProviderMutation represents an operation that mutates the IntelligenceProvider nodes in the graph.
type IntelligenceProviderMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	provider_type *string
	_config       *map[string]interface{}
	is_active     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IntelligenceProvider, error)
	predicates    []predicate.IntelligenceProvider
}

var _ ent.Mutation = (*IntelligenceProviderMutation)(nil)

// intelligenceproviderOption allows management of the mutation configuration using functional options.
type intelligenceproviderOption func(*IntelligenceProviderMutation)

// newIntelligenceProviderMutation creates new mutation for the IntelligenceProvider entity.
func newIntelligenceProviderMutation(c config, op Op, opts ...intelligenceproviderOption) *IntelligenceProviderMutation {
	m := &IntelligenceProviderMutation{
		config:        c,
		op:            op,
		typ:           TypeIntelligenceProvider,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntelligenceProviderID sets the ID field of the mutation.
func withIntelligenceProviderID(id string) intelligenceproviderOption {
	return func(m *IntelligenceProviderMutation) {
		var (
			err   error
			once  sync.Once
			value *IntelligenceProvider
		)
		m.oldValue = func(ctx context.Context) (*IntelligenceProvider, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntelligenceProvider.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntelligenceProvider sets the old IntelligenceProvider of the mutation.
func withIntelligenceProvider(node *IntelligenceProvider) intelligenceproviderOption {
	return func(m *IntelligenceProviderMutation) {
		m.oldValue = func(context.Context) (*IntelligenceProvider, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntelligenceProviderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntelligenceProviderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IntelligenceProvider entities.
func (m *IntelligenceProviderMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntelligenceProviderMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntelligenceProviderMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntelligenceProvider.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *IntelligenceProviderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *IntelligenceProviderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the IntelligenceProvider entity.
// If the IntelligenceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntelligenceProviderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *IntelligenceProviderMutation) ResetName() {
	m.name = nil
}

// SetProviderType sets the "provider_type" field.
func (m *IntelligenceProviderMutation) SetProviderType(s string) {
	m.provider_type = &s
}

// ProviderType returns the value of the "provider_type" field in the mutation.
func (m *IntelligenceProviderMutation) ProviderType() (r string, exists bool) {
	v := m.provider_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderType returns the old "provider_type" field's value of the IntelligenceProvider entity.
// If the IntelligenceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntelligenceProviderMutation) OldProviderType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderType: %w", err)
	}
	return oldValue.ProviderType, nil
}

// ResetProviderType resets all changes to the "provider_type" field.
func (m *IntelligenceProviderMutation) ResetProviderType() {
	m.provider_type = nil
}

// SetConfig sets the "config" field.
func (m *IntelligenceProviderMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *IntelligenceProviderMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the IntelligenceProvider entity.
// If the IntelligenceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntelligenceProviderMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *IntelligenceProviderMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[intelligenceprovider.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *IntelligenceProviderMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[intelligenceprovider.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *IntelligenceProviderMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, intelligenceprovider.FieldConfig)
}

// SetIsActive sets the "is_active" field.
func (m *IntelligenceProviderMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *IntelligenceProviderMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the IntelligenceProvider entity.
// If the IntelligenceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntelligenceProviderMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *IntelligenceProviderMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IntelligenceProviderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntelligenceProviderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IntelligenceProvider entity.
// If the IntelligenceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntelligenceProviderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntelligenceProviderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IntelligenceProviderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IntelligenceProviderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IntelligenceProvider entity.
// If the IntelligenceProvider object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntelligenceProviderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IntelligenceProviderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IntelligenceProviderMutation builder.
func (m *IntelligenceProviderMutation) Where(ps ...predicate.IntelligenceProvider) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntelligenceProviderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntelligenceProviderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntelligenceProvider, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntelligenceProviderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntelligenceProviderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntelligenceProvider).
func (m *IntelligenceProviderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntelligenceProviderMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, intelligenceprovider.FieldName)
	}
	if m.provider_type != nil {
		fields = append(fields, intelligenceprovider.FieldProviderType)
	}
	if m._config != nil {
		fields = append(fields, intelligenceprovider.FieldConfig)
	}
	if m.is_active != nil {
		fields = append(fields, intelligenceprovider.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, intelligenceprovider.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, intelligenceprovider.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntelligenceProviderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intelligenceprovider.FieldName:
		return m.Name()
	case intelligenceprovider.FieldProviderType:
		return m.ProviderType()
	case intelligenceprovider.FieldConfig:
		return m.Config()
	case intelligenceprovider.FieldIsActive:
		return m.IsActive()
	case intelligenceprovider.FieldCreatedAt:
		return m.CreatedAt()
	case intelligenceprovider.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntelligenceProviderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intelligenceprovider.FieldName:
		return m.OldName(ctx)
	case intelligenceprovider.FieldProviderType:
		return m.OldProviderType(ctx)
	case intelligenceprovider.FieldConfig:
		return m.OldConfig(ctx)
	case intelligenceprovider.FieldIsActive:
		return m.OldIsActive(ctx)
	case intelligenceprovider.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case intelligenceprovider.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntelligenceProvider field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntelligenceProviderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intelligenceprovider.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case intelligenceprovider.FieldProviderType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderType(v)
		return nil
	case intelligenceprovider.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case intelligenceprovider.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case intelligenceprovider.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case intelligenceprovider.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntelligenceProvider field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntelligenceProviderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntelligenceProviderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntelligenceProviderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IntelligenceProvider numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntelligenceProviderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intelligenceprovider.FieldConfig) {
		fields = append(fields, intelligenceprovider.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntelligenceProviderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntelligenceProviderMutation) ClearField(name string) error {
	switch name {
	case intelligenceprovider.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown IntelligenceProvider nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntelligenceProviderMutation) ResetField(name string) error {
	switch name {
	case intelligenceprovider.FieldName:
		m.ResetName()
		return nil
	case intelligenceprovider.FieldProviderType:
		m.ResetProviderType()
		return nil
	case intelligenceprovider.FieldConfig:
		m.ResetConfig()
		return nil
	case intelligenceprovider.FieldIsActive:
		m.ResetIsActive()
		return nil
	case intelligenceprovider.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case intelligenceprovider.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IntelligenceProvider field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntelligenceProviderMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntelligenceProviderMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntelligenceProviderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntelligenceProviderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntelligenceProviderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntelligenceProviderMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntelligenceProviderMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IntelligenceProvider unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntelligenceProviderMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IntelligenceProvider edge %s", name)
}

// NotificationChannelMutation represents an operation that mutates the NotificationChannel nodes in the graph.
type NotificationChannelMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	_driver       *string
	_config       *map[string]interface{}
	is_active     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NotificationChannel, error)
	predicates    []predicate.NotificationChannel
}

var _ ent.Mutation = (*NotificationChannelMutation)(nil)

// notificationchannelOption allows management of the mutation configuration using functional options.
type notificationchannelOption func(*NotificationChannelMutation)

// newNotificationChannelMutation creates new mutation for the NotificationChannel entity.
func newNotificationChannelMutation(c config, op Op, opts ...notificationchannelOption) *NotificationChannelMutation {
	m := &NotificationChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationChannelID sets the ID field of the mutation.
func withNotificationChannelID(id string) notificationchannelOption {
	return func(m *NotificationChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationChannel
		)
		m.oldValue = func(ctx context.Context) (*NotificationChannel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationChannel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationChannel sets the old NotificationChannel of the mutation.
func withNotificationChannel(node *NotificationChannel) notificationchannelOption {
	return func(m *NotificationChannelMutation) {
		m.oldValue = func(context.Context) (*NotificationChannel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationChannel entities.
func (m *NotificationChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationChannel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *NotificationChannelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *NotificationChannelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *NotificationChannelMutation) ResetName() {
	m.name = nil
}

// SetDriver sets the "driver" field.
func (m *NotificationChannelMutation) SetDriver(s string) {
	m._driver = &s
}

// Driver returns the value of the "driver" field in the mutation.
func (m *NotificationChannelMutation) Driver() (r string, exists bool) {
	v := m._driver
	if v == nil {
		return
	}
	return *v, true
}

// OldDriver returns the old "driver" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldDriver(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriver is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriver requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriver: %w", err)
	}
	return oldValue.Driver, nil
}

// ResetDriver resets all changes to the "driver" field.
func (m *NotificationChannelMutation) ResetDriver() {
	m._driver = nil
}

// SetConfig sets the "config" field.
func (m *NotificationChannelMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *NotificationChannelMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *NotificationChannelMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[notificationchannel.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *NotificationChannelMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[notificationchannel.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *NotificationChannelMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, notificationchannel.FieldConfig)
}

// SetIsActive sets the "is_active" field.
func (m *NotificationChannelMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *NotificationChannelMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *NotificationChannelMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationChannelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationChannelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationChannel entity.
// If the NotificationChannel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationChannelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationChannelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NotificationChannelMutation builder.
func (m *NotificationChannelMutation) Where(ps ...predicate.NotificationChannel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationChannel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationChannel).
func (m *NotificationChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationChannelMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, notificationchannel.FieldName)
	}
	if m._driver != nil {
		fields = append(fields, notificationchannel.FieldDriver)
	}
	if m._config != nil {
		fields = append(fields, notificationchannel.FieldConfig)
	}
	if m.is_active != nil {
		fields = append(fields, notificationchannel.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, notificationchannel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationchannel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationchannel.FieldName:
		return m.Name()
	case notificationchannel.FieldDriver:
		return m.Driver()
	case notificationchannel.FieldConfig:
		return m.Config()
	case notificationchannel.FieldIsActive:
		return m.IsActive()
	case notificationchannel.FieldCreatedAt:
		return m.CreatedAt()
	case notificationchannel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationchannel.FieldName:
		return m.OldName(ctx)
	case notificationchannel.FieldDriver:
		return m.OldDriver(ctx)
	case notificationchannel.FieldConfig:
		return m.OldConfig(ctx)
	case notificationchannel.FieldIsActive:
		return m.OldIsActive(ctx)
	case notificationchannel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationchannel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationChannel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationchannel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case notificationchannel.FieldDriver:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriver(v)
		return nil
	case notificationchannel.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case notificationchannel.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case notificationchannel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationchannel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationChannel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationchannel.FieldConfig) {
		fields = append(fields, notificationchannel.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationChannelMutation) ClearField(name string) error {
	switch name {
	case notificationchannel.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationChannelMutation) ResetField(name string) error {
	switch name {
	case notificationchannel.FieldName:
		m.ResetName()
		return nil
	case notificationchannel.FieldDriver:
		m.ResetDriver()
		return nil
	case notificationchannel.FieldConfig:
		m.ResetConfig()
		return nil
	case notificationchannel.FieldIsActive:
		m.ResetIsActive()
		return nil
	case notificationchannel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationchannel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationChannel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationChannelMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationChannelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationChannelMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationChannelMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationChannel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationChannelMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationChannel edge %s", name)
}

// PipelineDefinitionMutation represents an operation that mutates the PipelineDefinition nodes in the graph.
type PipelineDefinitionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	version       *int
	addversion    *int
	description   *string
	_config       *map[string]interface{}
	tags          *[]string
	appendtags    []string
	is_active     *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PipelineDefinition, error)
	predicates    []predicate.PipelineDefinition
}

var _ ent.Mutation = (*PipelineDefinitionMutation)(nil)

// pipelinedefinitionOption allows management of the mutation configuration using functional options.
type pipelinedefinitionOption func(*PipelineDefinitionMutation)

// newPipelineDefinitionMutation creates new mutation for the PipelineDefinition entity.
func newPipelineDefinitionMutation(c config, op Op, opts ...pipelinedefinitionOption) *PipelineDefinitionMutation {
	m := &PipelineDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineDefinitionID sets the ID field of the mutation.
func withPipelineDefinitionID(id string) pipelinedefinitionOption {
	return func(m *PipelineDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineDefinition
		)
		m.oldValue = func(ctx context.Context) (*PipelineDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineDefinition sets the old PipelineDefinition of the mutation.
func withPipelineDefinition(node *PipelineDefinition) pipelinedefinitionOption {
	return func(m *PipelineDefinitionMutation) {
		m.oldValue = func(context.Context) (*PipelineDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineDefinition entities.
func (m *PipelineDefinitionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineDefinitionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineDefinitionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PipelineDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineDefinitionMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *PipelineDefinitionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PipelineDefinitionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PipelineDefinitionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PipelineDefinitionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PipelineDefinitionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetDescription sets the "description" field.
func (m *PipelineDefinitionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PipelineDefinitionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PipelineDefinitionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[pipelinedefinition.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PipelineDefinitionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[pipelinedefinition.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PipelineDefinitionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, pipelinedefinition.FieldDescription)
}

// SetConfig sets the "config" field.
func (m *PipelineDefinitionMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *PipelineDefinitionMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *PipelineDefinitionMutation) ResetConfig() {
	m._config = nil
}

// SetTags sets the "tags" field.
func (m *PipelineDefinitionMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *PipelineDefinitionMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *PipelineDefinitionMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *PipelineDefinitionMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *PipelineDefinitionMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[pipelinedefinition.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *PipelineDefinitionMutation) TagsCleared() bool {
	_, ok := m.clearedFields[pipelinedefinition.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *PipelineDefinitionMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, pipelinedefinition.FieldTags)
}

// SetIsActive sets the "is_active" field.
func (m *PipelineDefinitionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PipelineDefinitionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PipelineDefinitionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PipelineDefinition entity.
// If the PipelineDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PipelineDefinitionMutation builder.
func (m *PipelineDefinitionMutation) Where(ps ...predicate.PipelineDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineDefinition).
func (m *PipelineDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, pipelinedefinition.FieldName)
	}
	if m.version != nil {
		fields = append(fields, pipelinedefinition.FieldVersion)
	}
	if m.description != nil {
		fields = append(fields, pipelinedefinition.FieldDescription)
	}
	if m._config != nil {
		fields = append(fields, pipelinedefinition.FieldConfig)
	}
	if m.tags != nil {
		fields = append(fields, pipelinedefinition.FieldTags)
	}
	if m.is_active != nil {
		fields = append(fields, pipelinedefinition.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinedefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipelinedefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinedefinition.FieldName:
		return m.Name()
	case pipelinedefinition.FieldVersion:
		return m.Version()
	case pipelinedefinition.FieldDescription:
		return m.Description()
	case pipelinedefinition.FieldConfig:
		return m.Config()
	case pipelinedefinition.FieldTags:
		return m.Tags()
	case pipelinedefinition.FieldIsActive:
		return m.IsActive()
	case pipelinedefinition.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinedefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinedefinition.FieldName:
		return m.OldName(ctx)
	case pipelinedefinition.FieldVersion:
		return m.OldVersion(ctx)
	case pipelinedefinition.FieldDescription:
		return m.OldDescription(ctx)
	case pipelinedefinition.FieldConfig:
		return m.OldConfig(ctx)
	case pipelinedefinition.FieldTags:
		return m.OldTags(ctx)
	case pipelinedefinition.FieldIsActive:
		return m.OldIsActive(ctx)
	case pipelinedefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinedefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinedefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinedefinition.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case pipelinedefinition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case pipelinedefinition.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case pipelinedefinition.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case pipelinedefinition.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case pipelinedefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinedefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, pipelinedefinition.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinedefinition.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinedefinition.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinedefinition.FieldDescription) {
		fields = append(fields, pipelinedefinition.FieldDescription)
	}
	if m.FieldCleared(pipelinedefinition.FieldTags) {
		fields = append(fields, pipelinedefinition.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineDefinitionMutation) ClearField(name string) error {
	switch name {
	case pipelinedefinition.FieldDescription:
		m.ClearDescription()
		return nil
	case pipelinedefinition.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown PipelineDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineDefinitionMutation) ResetField(name string) error {
	switch name {
	case pipelinedefinition.FieldName:
		m.ResetName()
		return nil
	case pipelinedefinition.FieldVersion:
		m.ResetVersion()
		return nil
	case pipelinedefinition.FieldDescription:
		m.ResetDescription()
		return nil
	case pipelinedefinition.FieldConfig:
		m.ResetConfig()
		return nil
	case pipelinedefinition.FieldTags:
		m.ResetTags()
		return nil
	case pipelinedefinition.FieldIsActive:
		m.ResetIsActive()
		return nil
	case pipelinedefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinedefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineDefinitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineDefinitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineDefinitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineDefinitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineDefinition edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	trace_id                *string
	mode                    *pipelinerun.Mode
	source                  *string
	environment             *string
	definition_name         *string
	definition_version      *int
	adddefinition_version   *int
	incident_id             *string
	status                  *pipelinerun.Status
	current_stage           *string
	payload                 *map[string]interface{}
	total_attempts          *int
	addtotal_attempts       *int
	max_retries             *int
	addmax_retries          *int
	last_error_type         *string
	last_error_message      *string
	last_error_retryable    *bool
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	total_duration_ms       *int
	addtotal_duration_ms    *int
	pod_id                  *string
	last_interaction_at     *time.Time
	clearedFields           map[string]struct{}
	stage_executions        map[string]struct{}
	removedstage_executions map[string]struct{}
	clearedstage_executions bool
	done                    bool
	oldValue                func(context.Context) (*PipelineRun, error)
	predicates              []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTraceID sets the "trace_id" field.
func (m *PipelineRunMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *PipelineRunMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *PipelineRunMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetMode sets the "mode" field.
func (m *PipelineRunMutation) SetMode(pi pipelinerun.Mode) {
	m.mode = &pi
}

// Mode returns the value of the "mode" field in the mutation.
func (m *PipelineRunMutation) Mode() (r pipelinerun.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldMode(ctx context.Context) (v pipelinerun.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *PipelineRunMutation) ResetMode() {
	m.mode = nil
}

// SetSource sets the "source" field.
func (m *PipelineRunMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *PipelineRunMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *PipelineRunMutation) ClearSource() {
	m.source = nil
	m.clearedFields[pipelinerun.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *PipelineRunMutation) SourceCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *PipelineRunMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, pipelinerun.FieldSource)
}

// SetEnvironment sets the "environment" field.
func (m *PipelineRunMutation) SetEnvironment(s string) {
	m.environment = &s
}

// Environment returns the value of the "environment" field in the mutation.
func (m *PipelineRunMutation) Environment() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironment returns the old "environment" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEnvironment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironment: %w", err)
	}
	return oldValue.Environment, nil
}

// ClearEnvironment clears the value of the "environment" field.
func (m *PipelineRunMutation) ClearEnvironment() {
	m.environment = nil
	m.clearedFields[pipelinerun.FieldEnvironment] = struct{}{}
}

// EnvironmentCleared returns if the "environment" field was cleared in this mutation.
func (m *PipelineRunMutation) EnvironmentCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldEnvironment]
	return ok
}

// ResetEnvironment resets all changes to the "environment" field.
func (m *PipelineRunMutation) ResetEnvironment() {
	m.environment = nil
	delete(m.clearedFields, pipelinerun.FieldEnvironment)
}

// SetDefinitionName sets the "definition_name" field.
func (m *PipelineRunMutation) SetDefinitionName(s string) {
	m.definition_name = &s
}

// DefinitionName returns the value of the "definition_name" field in the mutation.
func (m *PipelineRunMutation) DefinitionName() (r string, exists bool) {
	v := m.definition_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionName returns the old "definition_name" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDefinitionName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionName: %w", err)
	}
	return oldValue.DefinitionName, nil
}

// ClearDefinitionName clears the value of the "definition_name" field.
func (m *PipelineRunMutation) ClearDefinitionName() {
	m.definition_name = nil
	m.clearedFields[pipelinerun.FieldDefinitionName] = struct{}{}
}

// DefinitionNameCleared returns if the "definition_name" field was cleared in this mutation.
func (m *PipelineRunMutation) DefinitionNameCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldDefinitionName]
	return ok
}

// ResetDefinitionName resets all changes to the "definition_name" field.
func (m *PipelineRunMutation) ResetDefinitionName() {
	m.definition_name = nil
	delete(m.clearedFields, pipelinerun.FieldDefinitionName)
}

// SetDefinitionVersion sets the "definition_version" field.
func (m *PipelineRunMutation) SetDefinitionVersion(i int) {
	m.definition_version = &i
	m.adddefinition_version = nil
}

// DefinitionVersion returns the value of the "definition_version" field in the mutation.
func (m *PipelineRunMutation) DefinitionVersion() (r int, exists bool) {
	v := m.definition_version
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionVersion returns the old "definition_version" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDefinitionVersion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionVersion: %w", err)
	}
	return oldValue.DefinitionVersion, nil
}

// AddDefinitionVersion adds i to the "definition_version" field.
func (m *PipelineRunMutation) AddDefinitionVersion(i int) {
	if m.adddefinition_version != nil {
		*m.adddefinition_version += i
	} else {
		m.adddefinition_version = &i
	}
}

// AddedDefinitionVersion returns the value that was added to the "definition_version" field in this mutation.
func (m *PipelineRunMutation) AddedDefinitionVersion() (r int, exists bool) {
	v := m.adddefinition_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearDefinitionVersion clears the value of the "definition_version" field.
func (m *PipelineRunMutation) ClearDefinitionVersion() {
	m.definition_version = nil
	m.adddefinition_version = nil
	m.clearedFields[pipelinerun.FieldDefinitionVersion] = struct{}{}
}

// DefinitionVersionCleared returns if the "definition_version" field was cleared in this mutation.
func (m *PipelineRunMutation) DefinitionVersionCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldDefinitionVersion]
	return ok
}

// ResetDefinitionVersion resets all changes to the "definition_version" field.
func (m *PipelineRunMutation) ResetDefinitionVersion() {
	m.definition_version = nil
	m.adddefinition_version = nil
	delete(m.clearedFields, pipelinerun.FieldDefinitionVersion)
}

// SetIncidentID sets the "incident_id" field.
func (m *PipelineRunMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *PipelineRunMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *PipelineRunMutation) ClearIncidentID() {
	m.incident_id = nil
	m.clearedFields[pipelinerun.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *PipelineRunMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *PipelineRunMutation) ResetIncidentID() {
	m.incident_id = nil
	delete(m.clearedFields, pipelinerun.FieldIncidentID)
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *PipelineRunMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *PipelineRunMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCurrentStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *PipelineRunMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[pipelinerun.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *PipelineRunMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *PipelineRunMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, pipelinerun.FieldCurrentStage)
}

// SetPayload sets the "payload" field.
func (m *PipelineRunMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PipelineRunMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *PipelineRunMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[pipelinerun.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *PipelineRunMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *PipelineRunMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, pipelinerun.FieldPayload)
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *PipelineRunMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *PipelineRunMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *PipelineRunMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *PipelineRunMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *PipelineRunMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *PipelineRunMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *PipelineRunMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *PipelineRunMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *PipelineRunMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *PipelineRunMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetLastErrorType sets the "last_error_type" field.
func (m *PipelineRunMutation) SetLastErrorType(s string) {
	m.last_error_type = &s
}

// LastErrorType returns the value of the "last_error_type" field in the mutation.
func (m *PipelineRunMutation) LastErrorType() (r string, exists bool) {
	v := m.last_error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorType returns the old "last_error_type" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorType: %w", err)
	}
	return oldValue.LastErrorType, nil
}

// ClearLastErrorType clears the value of the "last_error_type" field.
func (m *PipelineRunMutation) ClearLastErrorType() {
	m.last_error_type = nil
	m.clearedFields[pipelinerun.FieldLastErrorType] = struct{}{}
}

// LastErrorTypeCleared returns if the "last_error_type" field was cleared in this mutation.
func (m *PipelineRunMutation) LastErrorTypeCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastErrorType]
	return ok
}

// ResetLastErrorType resets all changes to the "last_error_type" field.
func (m *PipelineRunMutation) ResetLastErrorType() {
	m.last_error_type = nil
	delete(m.clearedFields, pipelinerun.FieldLastErrorType)
}

// SetLastErrorMessage sets the "last_error_message" field.
func (m *PipelineRunMutation) SetLastErrorMessage(s string) {
	m.last_error_message = &s
}

// LastErrorMessage returns the value of the "last_error_message" field in the mutation.
func (m *PipelineRunMutation) LastErrorMessage() (r string, exists bool) {
	v := m.last_error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorMessage returns the old "last_error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorMessage: %w", err)
	}
	return oldValue.LastErrorMessage, nil
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (m *PipelineRunMutation) ClearLastErrorMessage() {
	m.last_error_message = nil
	m.clearedFields[pipelinerun.FieldLastErrorMessage] = struct{}{}
}

// LastErrorMessageCleared returns if the "last_error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) LastErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastErrorMessage]
	return ok
}

// ResetLastErrorMessage resets all changes to the "last_error_message" field.
func (m *PipelineRunMutation) ResetLastErrorMessage() {
	m.last_error_message = nil
	delete(m.clearedFields, pipelinerun.FieldLastErrorMessage)
}

// SetLastErrorRetryable sets the "last_error_retryable" field.
func (m *PipelineRunMutation) SetLastErrorRetryable(b bool) {
	m.last_error_retryable = &b
}

// LastErrorRetryable returns the value of the "last_error_retryable" field in the mutation.
func (m *PipelineRunMutation) LastErrorRetryable() (r bool, exists bool) {
	v := m.last_error_retryable
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorRetryable returns the old "last_error_retryable" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastErrorRetryable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorRetryable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorRetryable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorRetryable: %w", err)
	}
	return oldValue.LastErrorRetryable, nil
}

// ClearLastErrorRetryable clears the value of the "last_error_retryable" field.
func (m *PipelineRunMutation) ClearLastErrorRetryable() {
	m.last_error_retryable = nil
	m.clearedFields[pipelinerun.FieldLastErrorRetryable] = struct{}{}
}

// LastErrorRetryableCleared returns if the "last_error_retryable" field was cleared in this mutation.
func (m *PipelineRunMutation) LastErrorRetryableCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastErrorRetryable]
	return ok
}

// ResetLastErrorRetryable resets all changes to the "last_error_retryable" field.
func (m *PipelineRunMutation) ResetLastErrorRetryable() {
	m.last_error_retryable = nil
	delete(m.clearedFields, pipelinerun.FieldLastErrorRetryable)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// SetTotalDurationMs sets the "total_duration_ms" field.
func (m *PipelineRunMutation) SetTotalDurationMs(i int) {
	m.total_duration_ms = &i
	m.addtotal_duration_ms = nil
}

// TotalDurationMs returns the value of the "total_duration_ms" field in the mutation.
func (m *PipelineRunMutation) TotalDurationMs() (r int, exists bool) {
	v := m.total_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDurationMs returns the old "total_duration_ms" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTotalDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDurationMs: %w", err)
	}
	return oldValue.TotalDurationMs, nil
}

// AddTotalDurationMs adds i to the "total_duration_ms" field.
func (m *PipelineRunMutation) AddTotalDurationMs(i int) {
	if m.addtotal_duration_ms != nil {
		*m.addtotal_duration_ms += i
	} else {
		m.addtotal_duration_ms = &i
	}
}

// AddedTotalDurationMs returns the value that was added to the "total_duration_ms" field in this mutation.
func (m *PipelineRunMutation) AddedTotalDurationMs() (r int, exists bool) {
	v := m.addtotal_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDurationMs clears the value of the "total_duration_ms" field.
func (m *PipelineRunMutation) ClearTotalDurationMs() {
	m.total_duration_ms = nil
	m.addtotal_duration_ms = nil
	m.clearedFields[pipelinerun.FieldTotalDurationMs] = struct{}{}
}

// TotalDurationMsCleared returns if the "total_duration_ms" field was cleared in this mutation.
func (m *PipelineRunMutation) TotalDurationMsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldTotalDurationMs]
	return ok
}

// ResetTotalDurationMs resets all changes to the "total_duration_ms" field.
func (m *PipelineRunMutation) ResetTotalDurationMs() {
	m.total_duration_ms = nil
	m.addtotal_duration_ms = nil
	delete(m.clearedFields, pipelinerun.FieldTotalDurationMs)
}

// SetPodID sets the "pod_id" field.
func (m *PipelineRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PipelineRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PipelineRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[pipelinerun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PipelineRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PipelineRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, pipelinerun.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *PipelineRunMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *PipelineRunMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *PipelineRunMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[pipelinerun.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *PipelineRunMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *PipelineRunMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, pipelinerun.FieldLastInteractionAt)
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by ids.
func (m *PipelineRunMutation) AddStageExecutionIDs(ids ...string) {
	if m.stage_executions == nil {
		m.stage_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_executions[ids[i]] = struct{}{}
	}
}

// ClearStageExecutions clears the "stage_executions" edge to the StageExecution entity.
func (m *PipelineRunMutation) ClearStageExecutions() {
	m.clearedstage_executions = true
}

// StageExecutionsCleared reports if the "stage_executions" edge to the StageExecution entity was cleared.
func (m *PipelineRunMutation) StageExecutionsCleared() bool {
	return m.clearedstage_executions
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to the StageExecution entity by IDs.
func (m *PipelineRunMutation) RemoveStageExecutionIDs(ids ...string) {
	if m.removedstage_executions == nil {
		m.removedstage_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_executions, ids[i])
		m.removedstage_executions[ids[i]] = struct{}{}
	}
}

// RemovedStageExecutions returns the removed IDs of the "stage_executions" edge to the StageExecution entity.
func (m *PipelineRunMutation) RemovedStageExecutionsIDs() (ids []string) {
	for id := range m.removedstage_executions {
		ids = append(ids, id)
	}
	return
}

// StageExecutionsIDs returns the "stage_executions" edge IDs in the mutation.
func (m *PipelineRunMutation) StageExecutionsIDs() (ids []string) {
	for id := range m.stage_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStageExecutions resets all changes to the "stage_executions" edge.
func (m *PipelineRunMutation) ResetStageExecutions() {
	m.stage_executions = nil
	m.clearedstage_executions = false
	m.removedstage_executions = nil
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.trace_id != nil {
		fields = append(fields, pipelinerun.FieldTraceID)
	}
	if m.mode != nil {
		fields = append(fields, pipelinerun.FieldMode)
	}
	if m.source != nil {
		fields = append(fields, pipelinerun.FieldSource)
	}
	if m.environment != nil {
		fields = append(fields, pipelinerun.FieldEnvironment)
	}
	if m.definition_name != nil {
		fields = append(fields, pipelinerun.FieldDefinitionName)
	}
	if m.definition_version != nil {
		fields = append(fields, pipelinerun.FieldDefinitionVersion)
	}
	if m.incident_id != nil {
		fields = append(fields, pipelinerun.FieldIncidentID)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, pipelinerun.FieldCurrentStage)
	}
	if m.payload != nil {
		fields = append(fields, pipelinerun.FieldPayload)
	}
	if m.total_attempts != nil {
		fields = append(fields, pipelinerun.FieldTotalAttempts)
	}
	if m.max_retries != nil {
		fields = append(fields, pipelinerun.FieldMaxRetries)
	}
	if m.last_error_type != nil {
		fields = append(fields, pipelinerun.FieldLastErrorType)
	}
	if m.last_error_message != nil {
		fields = append(fields, pipelinerun.FieldLastErrorMessage)
	}
	if m.last_error_retryable != nil {
		fields = append(fields, pipelinerun.FieldLastErrorRetryable)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.total_duration_ms != nil {
		fields = append(fields, pipelinerun.FieldTotalDurationMs)
	}
	if m.pod_id != nil {
		fields = append(fields, pipelinerun.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, pipelinerun.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldTraceID:
		return m.TraceID()
	case pipelinerun.FieldMode:
		return m.Mode()
	case pipelinerun.FieldSource:
		return m.Source()
	case pipelinerun.FieldEnvironment:
		return m.Environment()
	case pipelinerun.FieldDefinitionName:
		return m.DefinitionName()
	case pipelinerun.FieldDefinitionVersion:
		return m.DefinitionVersion()
	case pipelinerun.FieldIncidentID:
		return m.IncidentID()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldCurrentStage:
		return m.CurrentStage()
	case pipelinerun.FieldPayload:
		return m.Payload()
	case pipelinerun.FieldTotalAttempts:
		return m.TotalAttempts()
	case pipelinerun.FieldMaxRetries:
		return m.MaxRetries()
	case pipelinerun.FieldLastErrorType:
		return m.LastErrorType()
	case pipelinerun.FieldLastErrorMessage:
		return m.LastErrorMessage()
	case pipelinerun.FieldLastErrorRetryable:
		return m.LastErrorRetryable()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinerun.FieldTotalDurationMs:
		return m.TotalDurationMs()
	case pipelinerun.FieldPodID:
		return m.PodID()
	case pipelinerun.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldTraceID:
		return m.OldTraceID(ctx)
	case pipelinerun.FieldMode:
		return m.OldMode(ctx)
	case pipelinerun.FieldSource:
		return m.OldSource(ctx)
	case pipelinerun.FieldEnvironment:
		return m.OldEnvironment(ctx)
	case pipelinerun.FieldDefinitionName:
		return m.OldDefinitionName(ctx)
	case pipelinerun.FieldDefinitionVersion:
		return m.OldDefinitionVersion(ctx)
	case pipelinerun.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case pipelinerun.FieldPayload:
		return m.OldPayload(ctx)
	case pipelinerun.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case pipelinerun.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case pipelinerun.FieldLastErrorType:
		return m.OldLastErrorType(ctx)
	case pipelinerun.FieldLastErrorMessage:
		return m.OldLastErrorMessage(ctx)
	case pipelinerun.FieldLastErrorRetryable:
		return m.OldLastErrorRetryable(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinerun.FieldTotalDurationMs:
		return m.OldTotalDurationMs(ctx)
	case pipelinerun.FieldPodID:
		return m.OldPodID(ctx)
	case pipelinerun.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case pipelinerun.FieldMode:
		v, ok := value.(pipelinerun.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case pipelinerun.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case pipelinerun.FieldEnvironment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironment(v)
		return nil
	case pipelinerun.FieldDefinitionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionName(v)
		return nil
	case pipelinerun.FieldDefinitionVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionVersion(v)
		return nil
	case pipelinerun.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case pipelinerun.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case pipelinerun.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case pipelinerun.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case pipelinerun.FieldLastErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorType(v)
		return nil
	case pipelinerun.FieldLastErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorMessage(v)
		return nil
	case pipelinerun.FieldLastErrorRetryable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorRetryable(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinerun.FieldTotalDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDurationMs(v)
		return nil
	case pipelinerun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case pipelinerun.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.adddefinition_version != nil {
		fields = append(fields, pipelinerun.FieldDefinitionVersion)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, pipelinerun.FieldTotalAttempts)
	}
	if m.addmax_retries != nil {
		fields = append(fields, pipelinerun.FieldMaxRetries)
	}
	if m.addtotal_duration_ms != nil {
		fields = append(fields, pipelinerun.FieldTotalDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldDefinitionVersion:
		return m.AddedDefinitionVersion()
	case pipelinerun.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case pipelinerun.FieldMaxRetries:
		return m.AddedMaxRetries()
	case pipelinerun.FieldTotalDurationMs:
		return m.AddedTotalDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldDefinitionVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefinitionVersion(v)
		return nil
	case pipelinerun.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case pipelinerun.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case pipelinerun.FieldTotalDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldSource) {
		fields = append(fields, pipelinerun.FieldSource)
	}
	if m.FieldCleared(pipelinerun.FieldEnvironment) {
		fields = append(fields, pipelinerun.FieldEnvironment)
	}
	if m.FieldCleared(pipelinerun.FieldDefinitionName) {
		fields = append(fields, pipelinerun.FieldDefinitionName)
	}
	if m.FieldCleared(pipelinerun.FieldDefinitionVersion) {
		fields = append(fields, pipelinerun.FieldDefinitionVersion)
	}
	if m.FieldCleared(pipelinerun.FieldIncidentID) {
		fields = append(fields, pipelinerun.FieldIncidentID)
	}
	if m.FieldCleared(pipelinerun.FieldCurrentStage) {
		fields = append(fields, pipelinerun.FieldCurrentStage)
	}
	if m.FieldCleared(pipelinerun.FieldPayload) {
		fields = append(fields, pipelinerun.FieldPayload)
	}
	if m.FieldCleared(pipelinerun.FieldLastErrorType) {
		fields = append(fields, pipelinerun.FieldLastErrorType)
	}
	if m.FieldCleared(pipelinerun.FieldLastErrorMessage) {
		fields = append(fields, pipelinerun.FieldLastErrorMessage)
	}
	if m.FieldCleared(pipelinerun.FieldLastErrorRetryable) {
		fields = append(fields, pipelinerun.FieldLastErrorRetryable)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinerun.FieldTotalDurationMs) {
		fields = append(fields, pipelinerun.FieldTotalDurationMs)
	}
	if m.FieldCleared(pipelinerun.FieldPodID) {
		fields = append(fields, pipelinerun.FieldPodID)
	}
	if m.FieldCleared(pipelinerun.FieldLastInteractionAt) {
		fields = append(fields, pipelinerun.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldSource:
		m.ClearSource()
		return nil
	case pipelinerun.FieldEnvironment:
		m.ClearEnvironment()
		return nil
	case pipelinerun.FieldDefinitionName:
		m.ClearDefinitionName()
		return nil
	case pipelinerun.FieldDefinitionVersion:
		m.ClearDefinitionVersion()
		return nil
	case pipelinerun.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case pipelinerun.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case pipelinerun.FieldPayload:
		m.ClearPayload()
		return nil
	case pipelinerun.FieldLastErrorType:
		m.ClearLastErrorType()
		return nil
	case pipelinerun.FieldLastErrorMessage:
		m.ClearLastErrorMessage()
		return nil
	case pipelinerun.FieldLastErrorRetryable:
		m.ClearLastErrorRetryable()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinerun.FieldTotalDurationMs:
		m.ClearTotalDurationMs()
		return nil
	case pipelinerun.FieldPodID:
		m.ClearPodID()
		return nil
	case pipelinerun.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldTraceID:
		m.ResetTraceID()
		return nil
	case pipelinerun.FieldMode:
		m.ResetMode()
		return nil
	case pipelinerun.FieldSource:
		m.ResetSource()
		return nil
	case pipelinerun.FieldEnvironment:
		m.ResetEnvironment()
		return nil
	case pipelinerun.FieldDefinitionName:
		m.ResetDefinitionName()
		return nil
	case pipelinerun.FieldDefinitionVersion:
		m.ResetDefinitionVersion()
		return nil
	case pipelinerun.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case pipelinerun.FieldPayload:
		m.ResetPayload()
		return nil
	case pipelinerun.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case pipelinerun.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case pipelinerun.FieldLastErrorType:
		m.ResetLastErrorType()
		return nil
	case pipelinerun.FieldLastErrorMessage:
		m.ResetLastErrorMessage()
		return nil
	case pipelinerun.FieldLastErrorRetryable:
		m.ResetLastErrorRetryable()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinerun.FieldTotalDurationMs:
		m.ResetTotalDurationMs()
		return nil
	case pipelinerun.FieldPodID:
		m.ResetPodID()
		return nil
	case pipelinerun.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stage_executions != nil {
		edges = append(edges, pipelinerun.EdgeStageExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.stage_executions))
		for id := range m.stage_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstage_executions != nil {
		edges = append(edges, pipelinerun.EdgeStageExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.removedstage_executions))
		for id := range m.removedstage_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstage_executions {
		edges = append(edges, pipelinerun.EdgeStageExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeStageExecutions:
		return m.clearedstage_executions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeStageExecutions:
		m.ResetStageExecutions()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// StageExecutionMutation represents an operation that mutates the StageExecution nodes in the graph.
type StageExecutionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	stage               *string
	node_id             *string
	attempt             *int
	addattempt          *int
	idempotency_key     *string
	status              *stageexecution.Status
	input_ref           *string
	output_ref          *string
	output_snapshot     *map[string]interface{}
	error_type          *string
	error_message       *string
	error_stack         *string
	error_retryable     *bool
	skip_reason         *string
	started_at          *time.Time
	completed_at        *time.Time
	duration_ms         *int
	addduration_ms      *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	pipeline_run        *string
	clearedpipeline_run bool
	done                bool
	oldValue            func(context.Context) (*StageExecution, error)
	predicates          []predicate.StageExecution
}

var _ ent.Mutation = (*StageExecutionMutation)(nil)

// stageexecutionOption allows management of the mutation configuration using functional options.
type stageexecutionOption func(*StageExecutionMutation)

// newStageExecutionMutation creates new mutation for the StageExecution entity.
func newStageExecutionMutation(c config, op Op, opts ...stageexecutionOption) *StageExecutionMutation {
	m := &StageExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageExecutionID sets the ID field of the mutation.
func withStageExecutionID(id string) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageExecution
		)
		m.oldValue = func(ctx context.Context) (*StageExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageExecution sets the old StageExecution of the mutation.
func withStageExecution(node *StageExecution) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		m.oldValue = func(context.Context) (*StageExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageExecution entities.
func (m *StageExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (m *StageExecutionMutation) SetPipelineRunID(s string) {
	m.pipeline_run = &s
}

// PipelineRunID returns the value of the "pipeline_run_id" field in the mutation.
func (m *StageExecutionMutation) PipelineRunID() (r string, exists bool) {
	v := m.pipeline_run
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineRunID returns the old "pipeline_run_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldPipelineRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineRunID: %w", err)
	}
	return oldValue.PipelineRunID, nil
}

// ResetPipelineRunID resets all changes to the "pipeline_run_id" field.
func (m *StageExecutionMutation) ResetPipelineRunID() {
	m.pipeline_run = nil
}

// SetStage sets the "stage" field.
func (m *StageExecutionMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StageExecutionMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StageExecutionMutation) ResetStage() {
	m.stage = nil
}

// SetNodeID sets the "node_id" field.
func (m *StageExecutionMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *StageExecutionMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ClearNodeID clears the value of the "node_id" field.
func (m *StageExecutionMutation) ClearNodeID() {
	m.node_id = nil
	m.clearedFields[stageexecution.FieldNodeID] = struct{}{}
}

// NodeIDCleared returns if the "node_id" field was cleared in this mutation.
func (m *StageExecutionMutation) NodeIDCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldNodeID]
	return ok
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *StageExecutionMutation) ResetNodeID() {
	m.node_id = nil
	delete(m.clearedFields, stageexecution.FieldNodeID)
}

// SetAttempt sets the "attempt" field.
func (m *StageExecutionMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *StageExecutionMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *StageExecutionMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *StageExecutionMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *StageExecutionMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *StageExecutionMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *StageExecutionMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *StageExecutionMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetStatus sets the "status" field.
func (m *StageExecutionMutation) SetStatus(s stageexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageExecutionMutation) Status() (r stageexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStatus(ctx context.Context) (v stageexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetInputRef sets the "input_ref" field.
func (m *StageExecutionMutation) SetInputRef(s string) {
	m.input_ref = &s
}

// InputRef returns the value of the "input_ref" field in the mutation.
func (m *StageExecutionMutation) InputRef() (r string, exists bool) {
	v := m.input_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRef returns the old "input_ref" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldInputRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRef: %w", err)
	}
	return oldValue.InputRef, nil
}

// ClearInputRef clears the value of the "input_ref" field.
func (m *StageExecutionMutation) ClearInputRef() {
	m.input_ref = nil
	m.clearedFields[stageexecution.FieldInputRef] = struct{}{}
}

// InputRefCleared returns if the "input_ref" field was cleared in this mutation.
func (m *StageExecutionMutation) InputRefCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldInputRef]
	return ok
}

// ResetInputRef resets all changes to the "input_ref" field.
func (m *StageExecutionMutation) ResetInputRef() {
	m.input_ref = nil
	delete(m.clearedFields, stageexecution.FieldInputRef)
}

// SetOutputRef sets the "output_ref" field.
func (m *StageExecutionMutation) SetOutputRef(s string) {
	m.output_ref = &s
}

// OutputRef returns the value of the "output_ref" field in the mutation.
func (m *StageExecutionMutation) OutputRef() (r string, exists bool) {
	v := m.output_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputRef returns the old "output_ref" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldOutputRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputRef: %w", err)
	}
	return oldValue.OutputRef, nil
}

// ClearOutputRef clears the value of the "output_ref" field.
func (m *StageExecutionMutation) ClearOutputRef() {
	m.output_ref = nil
	m.clearedFields[stageexecution.FieldOutputRef] = struct{}{}
}

// OutputRefCleared returns if the "output_ref" field was cleared in this mutation.
func (m *StageExecutionMutation) OutputRefCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldOutputRef]
	return ok
}

// ResetOutputRef resets all changes to the "output_ref" field.
func (m *StageExecutionMutation) ResetOutputRef() {
	m.output_ref = nil
	delete(m.clearedFields, stageexecution.FieldOutputRef)
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (m *StageExecutionMutation) SetOutputSnapshot(value map[string]interface{}) {
	m.output_snapshot = &value
}

// OutputSnapshot returns the value of the "output_snapshot" field in the mutation.
func (m *StageExecutionMutation) OutputSnapshot() (r map[string]interface{}, exists bool) {
	v := m.output_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSnapshot returns the old "output_snapshot" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldOutputSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSnapshot: %w", err)
	}
	return oldValue.OutputSnapshot, nil
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (m *StageExecutionMutation) ClearOutputSnapshot() {
	m.output_snapshot = nil
	m.clearedFields[stageexecution.FieldOutputSnapshot] = struct{}{}
}

// OutputSnapshotCleared returns if the "output_snapshot" field was cleared in this mutation.
func (m *StageExecutionMutation) OutputSnapshotCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldOutputSnapshot]
	return ok
}

// ResetOutputSnapshot resets all changes to the "output_snapshot" field.
func (m *StageExecutionMutation) ResetOutputSnapshot() {
	m.output_snapshot = nil
	delete(m.clearedFields, stageexecution.FieldOutputSnapshot)
}

// SetErrorType sets the "error_type" field.
func (m *StageExecutionMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *StageExecutionMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *StageExecutionMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[stageexecution.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *StageExecutionMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, stageexecution.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageexecution.FieldErrorMessage)
}

// SetErrorStack sets the "error_stack" field.
func (m *StageExecutionMutation) SetErrorStack(s string) {
	m.error_stack = &s
}

// ErrorStack returns the value of the "error_stack" field in the mutation.
func (m *StageExecutionMutation) ErrorStack() (r string, exists bool) {
	v := m.error_stack
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorStack returns the old "error_stack" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorStack(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorStack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorStack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorStack: %w", err)
	}
	return oldValue.ErrorStack, nil
}

// ClearErrorStack clears the value of the "error_stack" field.
func (m *StageExecutionMutation) ClearErrorStack() {
	m.error_stack = nil
	m.clearedFields[stageexecution.FieldErrorStack] = struct{}{}
}

// ErrorStackCleared returns if the "error_stack" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorStackCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorStack]
	return ok
}

// ResetErrorStack resets all changes to the "error_stack" field.
func (m *StageExecutionMutation) ResetErrorStack() {
	m.error_stack = nil
	delete(m.clearedFields, stageexecution.FieldErrorStack)
}

// SetErrorRetryable sets the "error_retryable" field.
func (m *StageExecutionMutation) SetErrorRetryable(b bool) {
	m.error_retryable = &b
}

// ErrorRetryable returns the value of the "error_retryable" field in the mutation.
func (m *StageExecutionMutation) ErrorRetryable() (r bool, exists bool) {
	v := m.error_retryable
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRetryable returns the old "error_retryable" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorRetryable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRetryable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRetryable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRetryable: %w", err)
	}
	return oldValue.ErrorRetryable, nil
}

// ResetErrorRetryable resets all changes to the "error_retryable" field.
func (m *StageExecutionMutation) ResetErrorRetryable() {
	m.error_retryable = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *StageExecutionMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *StageExecutionMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *StageExecutionMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[stageexecution.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *StageExecutionMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *StageExecutionMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, stageexecution.FieldSkipReason)
}

// SetStartedAt sets the "started_at" field.
func (m *StageExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StageExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stageexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StageExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stageexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StageExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stageexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StageExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stageexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StageExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[stageexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StageExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, stageexecution.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPipelineRun clears the "pipeline_run" edge to the PipelineRun entity.
func (m *StageExecutionMutation) ClearPipelineRun() {
	m.clearedpipeline_run = true
	m.clearedFields[stageexecution.FieldPipelineRunID] = struct{}{}
}

// PipelineRunCleared reports if the "pipeline_run" edge to the PipelineRun entity was cleared.
func (m *StageExecutionMutation) PipelineRunCleared() bool {
	return m.clearedpipeline_run
}

// PipelineRunIDs returns the "pipeline_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PipelineRunID instead. It exists only for internal usage by the builders.
func (m *StageExecutionMutation) PipelineRunIDs() (ids []string) {
	if id := m.pipeline_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPipelineRun resets all changes to the "pipeline_run" edge.
func (m *StageExecutionMutation) ResetPipelineRun() {
	m.pipeline_run = nil
	m.clearedpipeline_run = false
}

// Where appends a list predicates to the StageExecutionMutation builder.
func (m *StageExecutionMutation) Where(ps ...predicate.StageExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageExecution).
func (m *StageExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageExecutionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.pipeline_run != nil {
		fields = append(fields, stageexecution.FieldPipelineRunID)
	}
	if m.stage != nil {
		fields = append(fields, stageexecution.FieldStage)
	}
	if m.node_id != nil {
		fields = append(fields, stageexecution.FieldNodeID)
	}
	if m.attempt != nil {
		fields = append(fields, stageexecution.FieldAttempt)
	}
	if m.idempotency_key != nil {
		fields = append(fields, stageexecution.FieldIdempotencyKey)
	}
	if m.status != nil {
		fields = append(fields, stageexecution.FieldStatus)
	}
	if m.input_ref != nil {
		fields = append(fields, stageexecution.FieldInputRef)
	}
	if m.output_ref != nil {
		fields = append(fields, stageexecution.FieldOutputRef)
	}
	if m.output_snapshot != nil {
		fields = append(fields, stageexecution.FieldOutputSnapshot)
	}
	if m.error_type != nil {
		fields = append(fields, stageexecution.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.error_stack != nil {
		fields = append(fields, stageexecution.FieldErrorStack)
	}
	if m.error_retryable != nil {
		fields = append(fields, stageexecution.FieldErrorRetryable)
	}
	if m.skip_reason != nil {
		fields = append(fields, stageexecution.FieldSkipReason)
	}
	if m.started_at != nil {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, stageexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldPipelineRunID:
		return m.PipelineRunID()
	case stageexecution.FieldStage:
		return m.Stage()
	case stageexecution.FieldNodeID:
		return m.NodeID()
	case stageexecution.FieldAttempt:
		return m.Attempt()
	case stageexecution.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case stageexecution.FieldStatus:
		return m.Status()
	case stageexecution.FieldInputRef:
		return m.InputRef()
	case stageexecution.FieldOutputRef:
		return m.OutputRef()
	case stageexecution.FieldOutputSnapshot:
		return m.OutputSnapshot()
	case stageexecution.FieldErrorType:
		return m.ErrorType()
	case stageexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stageexecution.FieldErrorStack:
		return m.ErrorStack()
	case stageexecution.FieldErrorRetryable:
		return m.ErrorRetryable()
	case stageexecution.FieldSkipReason:
		return m.SkipReason()
	case stageexecution.FieldStartedAt:
		return m.StartedAt()
	case stageexecution.FieldCompletedAt:
		return m.CompletedAt()
	case stageexecution.FieldDurationMs:
		return m.DurationMs()
	case stageexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageexecution.FieldPipelineRunID:
		return m.OldPipelineRunID(ctx)
	case stageexecution.FieldStage:
		return m.OldStage(ctx)
	case stageexecution.FieldNodeID:
		return m.OldNodeID(ctx)
	case stageexecution.FieldAttempt:
		return m.OldAttempt(ctx)
	case stageexecution.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case stageexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stageexecution.FieldInputRef:
		return m.OldInputRef(ctx)
	case stageexecution.FieldOutputRef:
		return m.OldOutputRef(ctx)
	case stageexecution.FieldOutputSnapshot:
		return m.OldOutputSnapshot(ctx)
	case stageexecution.FieldErrorType:
		return m.OldErrorType(ctx)
	case stageexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stageexecution.FieldErrorStack:
		return m.OldErrorStack(ctx)
	case stageexecution.FieldErrorRetryable:
		return m.OldErrorRetryable(ctx)
	case stageexecution.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case stageexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stageexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case stageexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stageexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldPipelineRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineRunID(v)
		return nil
	case stageexecution.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case stageexecution.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case stageexecution.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case stageexecution.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case stageexecution.FieldStatus:
		v, ok := value.(stageexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageexecution.FieldInputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRef(v)
		return nil
	case stageexecution.FieldOutputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputRef(v)
		return nil
	case stageexecution.FieldOutputSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSnapshot(v)
		return nil
	case stageexecution.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case stageexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stageexecution.FieldErrorStack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorStack(v)
		return nil
	case stageexecution.FieldErrorRetryable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRetryable(v)
		return nil
	case stageexecution.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case stageexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stageexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stageexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, stageexecution.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldAttempt:
		return m.AddedAttempt()
	case stageexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageexecution.FieldNodeID) {
		fields = append(fields, stageexecution.FieldNodeID)
	}
	if m.FieldCleared(stageexecution.FieldInputRef) {
		fields = append(fields, stageexecution.FieldInputRef)
	}
	if m.FieldCleared(stageexecution.FieldOutputRef) {
		fields = append(fields, stageexecution.FieldOutputRef)
	}
	if m.FieldCleared(stageexecution.FieldOutputSnapshot) {
		fields = append(fields, stageexecution.FieldOutputSnapshot)
	}
	if m.FieldCleared(stageexecution.FieldErrorType) {
		fields = append(fields, stageexecution.FieldErrorType)
	}
	if m.FieldCleared(stageexecution.FieldErrorMessage) {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.FieldCleared(stageexecution.FieldErrorStack) {
		fields = append(fields, stageexecution.FieldErrorStack)
	}
	if m.FieldCleared(stageexecution.FieldSkipReason) {
		fields = append(fields, stageexecution.FieldSkipReason)
	}
	if m.FieldCleared(stageexecution.FieldStartedAt) {
		fields = append(fields, stageexecution.FieldStartedAt)
	}
	if m.FieldCleared(stageexecution.FieldCompletedAt) {
		fields = append(fields, stageexecution.FieldCompletedAt)
	}
	if m.FieldCleared(stageexecution.FieldDurationMs) {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageExecutionMutation) ClearField(name string) error {
	switch name {
	case stageexecution.FieldNodeID:
		m.ClearNodeID()
		return nil
	case stageexecution.FieldInputRef:
		m.ClearInputRef()
		return nil
	case stageexecution.FieldOutputRef:
		m.ClearOutputRef()
		return nil
	case stageexecution.FieldOutputSnapshot:
		m.ClearOutputSnapshot()
		return nil
	case stageexecution.FieldErrorType:
		m.ClearErrorType()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stageexecution.FieldErrorStack:
		m.ClearErrorStack()
		return nil
	case stageexecution.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case stageexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case stageexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown StageExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageExecutionMutation) ResetField(name string) error {
	switch name {
	case stageexecution.FieldPipelineRunID:
		m.ResetPipelineRunID()
		return nil
	case stageexecution.FieldStage:
		m.ResetStage()
		return nil
	case stageexecution.FieldNodeID:
		m.ResetNodeID()
		return nil
	case stageexecution.FieldAttempt:
		m.ResetAttempt()
		return nil
	case stageexecution.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case stageexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stageexecution.FieldInputRef:
		m.ResetInputRef()
		return nil
	case stageexecution.FieldOutputRef:
		m.ResetOutputRef()
		return nil
	case stageexecution.FieldOutputSnapshot:
		m.ResetOutputSnapshot()
		return nil
	case stageexecution.FieldErrorType:
		m.ResetErrorType()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stageexecution.FieldErrorStack:
		m.ResetErrorStack()
		return nil
	case stageexecution.FieldErrorRetryable:
		m.ResetErrorRetryable()
		return nil
	case stageexecution.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case stageexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stageexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case stageexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stageexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pipeline_run != nil {
		edges = append(edges, stageexecution.EdgePipelineRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgePipelineRun:
		if id := m.pipeline_run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpipeline_run {
		edges = append(edges, stageexecution.EdgePipelineRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stageexecution.EdgePipelineRun:
		return m.clearedpipeline_run
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stageexecution.EdgePipelineRun:
		m.ClearPipelineRun()
		return nil
	}
	return fmt.Errorf("unknown StageExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stageexecution.EdgePipelineRun:
		m.ResetPipelineRun()
		return nil
	}
	return fmt.Errorf("unknown StageExecution edge %s", name)
}

// StageOutputMutation represents an operation that mutates the StageOutput nodes in the graph.
type StageOutputMutation struct {
	config
	op              Op
	typ             string
	id              *string
	pipeline_run_id *string
	data            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*StageOutput, error)
	predicates      []predicate.StageOutput
}

var _ ent.Mutation = (*StageOutputMutation)(nil)

// stageoutputOption allows management of the mutation configuration using functional options.
type stageoutputOption func(*StageOutputMutation)

// newStageOutputMutation creates new mutation for the StageOutput entity.
func newStageOutputMutation(c config, op Op, opts ...stageoutputOption) *StageOutputMutation {
	m := &StageOutputMutation{
		config:        c,
		op:            op,
		typ:           TypeStageOutput,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageOutputID sets the ID field of the mutation.
func withStageOutputID(id string) stageoutputOption {
	return func(m *StageOutputMutation) {
		var (
			err   error
			once  sync.Once
			value *StageOutput
		)
		m.oldValue = func(ctx context.Context) (*StageOutput, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageOutput.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageOutput sets the old StageOutput of the mutation.
func withStageOutput(node *StageOutput) stageoutputOption {
	return func(m *StageOutputMutation) {
		m.oldValue = func(context.Context) (*StageOutput, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageOutputMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageOutputMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageOutput entities.
func (m *StageOutputMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageOutputMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageOutputMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageOutput.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineRunID sets the "pipeline_run_id" field.
func (m *StageOutputMutation) SetPipelineRunID(s string) {
	m.pipeline_run_id = &s
}

// PipelineRunID returns the value of the "pipeline_run_id" field in the mutation.
func (m *StageOutputMutation) PipelineRunID() (r string, exists bool) {
	v := m.pipeline_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineRunID returns the old "pipeline_run_id" field's value of the StageOutput entity.
// If the StageOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageOutputMutation) OldPipelineRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineRunID: %w", err)
	}
	return oldValue.PipelineRunID, nil
}

// ResetPipelineRunID resets all changes to the "pipeline_run_id" field.
func (m *StageOutputMutation) ResetPipelineRunID() {
	m.pipeline_run_id = nil
}

// SetData sets the "data" field.
func (m *StageOutputMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *StageOutputMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the StageOutput entity.
// If the StageOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageOutputMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *StageOutputMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StageOutputMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageOutputMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageOutput entity.
// If the StageOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageOutputMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageOutputMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StageOutputMutation builder.
func (m *StageOutputMutation) Where(ps ...predicate.StageOutput) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageOutputMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageOutputMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageOutput, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageOutputMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageOutputMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageOutput).
func (m *StageOutputMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageOutputMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.pipeline_run_id != nil {
		fields = append(fields, stageoutput.FieldPipelineRunID)
	}
	if m.data != nil {
		fields = append(fields, stageoutput.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, stageoutput.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageOutputMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageoutput.FieldPipelineRunID:
		return m.PipelineRunID()
	case stageoutput.FieldData:
		return m.Data()
	case stageoutput.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageOutputMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageoutput.FieldPipelineRunID:
		return m.OldPipelineRunID(ctx)
	case stageoutput.FieldData:
		return m.OldData(ctx)
	case stageoutput.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageOutput field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageOutputMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageoutput.FieldPipelineRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineRunID(v)
		return nil
	case stageoutput.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case stageoutput.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageOutput field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageOutputMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageOutputMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageOutputMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StageOutput numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageOutputMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageOutputMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageOutputMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StageOutput nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageOutputMutation) ResetField(name string) error {
	switch name {
	case stageoutput.FieldPipelineRunID:
		m.ResetPipelineRunID()
		return nil
	case stageoutput.FieldData:
		m.ResetData()
		return nil
	case stageoutput.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageOutput field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageOutputMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageOutputMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageOutputMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageOutputMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageOutputMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageOutputMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageOutputMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StageOutput unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageOutputMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StageOutput edge %s", name)
}
