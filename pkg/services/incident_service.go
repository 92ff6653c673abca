package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/incident"
)

// incidentStatusRank orders the incident lifecycle; transitions may only
// move forward.
var incidentStatusRank = map[incident.Status]int{
	incident.StatusOpen:         0,
	incident.StatusAcknowledged: 1,
	incident.StatusResolved:     2,
	incident.StatusClosed:       3,
}

// IncidentService manages incident lifecycle
type IncidentService struct {
	client *ent.Client
}

// NewIncidentService creates a new IncidentService
func NewIncidentService(client *ent.Client) *IncidentService {
	return &IncidentService{client: client}
}

// GetIncident retrieves an incident by ID with optional member alerts
func (s *IncidentService) GetIncident(ctx context.Context, incidentID string, withAlerts bool) (*ent.Incident, error) {
	query := s.client.Incident.Query().Where(incident.IDEQ(incidentID))

	if withAlerts {
		query = query.WithAlerts(func(q *ent.AlertQuery) {
			q.Order(ent.Desc(alert.FieldReceivedAt))
		})
	}

	inc, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	return inc, nil
}

// ListIncidents retrieves incidents, optionally filtered by status,
// newest first
func (s *IncidentService) ListIncidents(ctx context.Context, status string, limit int) ([]*ent.Incident, error) {
	query := s.client.Incident.Query().
		Order(ent.Desc(incident.FieldCreatedAt))

	if status != "" {
		query = query.Where(incident.StatusEQ(incident.Status(status)))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query = query.Limit(limit)

	incidents, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	return incidents, nil
}

// UpdateStatus moves an incident forward in its lifecycle. Backwards
// transitions return ErrInvalidTransition
func (s *IncidentService) UpdateStatus(ctx context.Context, incidentID string, status incident.Status) (*ent.Incident, error) {
	if _, ok := incidentStatusRank[status]; !ok {
		return nil, NewValidationError("status", "invalid: must be 'open', 'acknowledged', 'resolved' or 'closed'")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	inc, err := s.client.Incident.Get(writeCtx, incidentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	if incidentStatusRank[status] < incidentStatusRank[inc.Status] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, inc.Status, status)
	}
	if status == inc.Status {
		return inc, nil
	}

	update := s.client.Incident.UpdateOneID(incidentID).
		SetStatus(status)

	if status == incident.StatusResolved && inc.ResolvedAt == nil {
		update = update.SetResolvedAt(time.Now())
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update incident status: %w", err)
	}

	return updated, nil
}
