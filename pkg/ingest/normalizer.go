package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// Normalizer applies the dedup/update policy to whatever alerts a source
// driver produced. Each alert is processed in its own transaction, serialized
// per fingerprint with a Postgres advisory lock so concurrent webhooks for
// the same logical alert cannot race duplicate incident creation. Distinct
// fingerprints proceed in parallel.
type Normalizer struct {
	db       *ent.Client
	registry *Registry
}

// NewNormalizer creates a normalizer over the given Ent client and driver
// registry.
func NewNormalizer(db *ent.Client, registry *Registry) *Normalizer {
	return &Normalizer{db: db, registry: registry}
}

// Ingest parses a raw webhook body, picks a driver (explicit hint or probe
// detection), normalizes, and applies the dedup policy per alert.
//
// Error contract: ErrMalformedPayload / ErrUnknownSource are never worth
// retrying; ErrTransientStorage is.
func (n *Normalizer) Ingest(ctx context.Context, rawPayload []byte, sourceHint string) (*models.IngestResult, error) {
	var payload map[string]any
	if err := json.Unmarshal(rawPayload, &payload); err != nil {
		return nil, fmt.Errorf("%w: body is not a JSON object: %v", ErrMalformedPayload, err)
	}

	var driver Driver
	var err error
	if sourceHint != "" {
		driver, err = n.registry.Get(sourceHint)
	} else {
		driver, err = n.registry.Detect(payload)
	}
	if err != nil {
		return nil, err
	}

	alerts, err := driver.Normalize(payload)
	if err != nil {
		return nil, err
	}

	result := &models.IngestResult{Source: driver.Name()}
	for i := range alerts {
		a := &alerts[i]
		if a.Fingerprint == "" {
			a.Fingerprint = Fingerprint(a.Source, a.Name, a.Labels)
		}
		if err := n.processAlert(ctx, a, result); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransientStorage, err)
		}
	}

	slog.Info("Ingested webhook payload",
		"source", result.Source,
		"created", result.AlertsCreated,
		"updated", result.AlertsUpdated,
		"resolved", result.AlertsResolved,
		"incident_id", result.IncidentID)

	return result, nil
}

// processAlert applies the dedup policy for one normalized alert inside a
// transaction holding the per-fingerprint advisory lock.
func (n *Normalizer) processAlert(ctx context.Context, a *models.NormalizedAlert, result *models.IngestResult) error {
	tx, err := n.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Held until COMMIT; serializes all work on this fingerprint across
	// every replica.
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", a.Fingerprint); err != nil {
		return fmt.Errorf("failed to take fingerprint lock: %w", err)
	}

	existing, err := tx.Alert.Query().
		Where(alert.FingerprintEQ(a.Fingerprint), alert.StatusEQ(alert.StatusFiring)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query firing alert: %w", err)
	}

	switch a.Status {
	case models.AlertResolved:
		if existing == nil {
			// Resolution for an alert we never saw firing. Nothing to do.
			slog.Debug("Dropping resolve for unknown fingerprint", "fingerprint", a.Fingerprint)
		} else if err := resolveAlert(ctx, tx, existing, a, result); err != nil {
			return err
		}
	default:
		if existing != nil {
			if err := updateFiringAlert(ctx, tx, existing, a, result); err != nil {
				return err
			}
		} else if err := createFiringAlert(ctx, tx, a, result); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// updateFiringAlert refreshes an already-firing alert in place. History is
// appended only when the severity actually changed.
func updateFiringAlert(ctx context.Context, tx *ent.Tx, existing *ent.Alert, a *models.NormalizedAlert, result *models.IngestResult) error {
	prevSeverity := existing.Severity

	update := tx.Alert.UpdateOne(existing).
		SetSeverity(alert.Severity(a.Severity)).
		SetReceivedAt(time.Now())
	if a.Labels != nil {
		update.SetLabels(a.Labels)
	}
	if a.Annotations != nil {
		update.SetAnnotations(a.Annotations)
	}
	if a.RawPayload != nil {
		update.SetRawPayload(a.RawPayload)
	}
	if a.StartsAt != nil {
		update.SetStartsAt(*a.StartsAt)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update firing alert: %w", err)
	}
	result.AlertsUpdated++

	if string(prevSeverity) != string(a.Severity) {
		err := tx.AlertHistory.Create().
			SetID(uuid.New().String()).
			SetAlertID(existing.ID).
			SetPreviousStatus(string(alert.StatusFiring)).
			SetNewStatus(string(alert.StatusFiring)).
			SetDetails(fmt.Sprintf("severity changed from %s to %s", prevSeverity, a.Severity)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to append alert history: %w", err)
		}
	}

	// The incident tracks the highest severity among its firing alerts,
	// so a severity change propagates in both directions.
	if existing.IncidentID != nil {
		inc, err := tx.Incident.Get(ctx, *existing.IncidentID)
		if err != nil {
			return fmt.Errorf("failed to load incident: %w", err)
		}
		result.IncidentID = inc.ID
		changed, err := recomputeIncidentSeverity(ctx, tx, inc)
		if err != nil {
			return err
		}
		if changed {
			result.IncidentsUpdated++
		}
	}
	return nil
}

// recomputeIncidentSeverity aligns the incident severity with the highest
// severity among its still-firing alerts. An incident with no firing members
// keeps its last severity.
func recomputeIncidentSeverity(ctx context.Context, tx *ent.Tx, inc *ent.Incident) (bool, error) {
	firing, err := tx.Alert.Query().
		Where(alert.IncidentIDEQ(inc.ID), alert.StatusEQ(alert.StatusFiring)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load firing alerts on incident: %w", err)
	}
	if len(firing) == 0 {
		return false, nil
	}

	highest := models.Severity(firing[0].Severity)
	for _, member := range firing[1:] {
		highest = models.MaxSeverity(highest, models.Severity(member.Severity))
	}
	if incident.Severity(highest) == inc.Severity {
		return false, nil
	}
	if err := tx.Incident.UpdateOne(inc).SetSeverity(incident.Severity(highest)).Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update incident severity: %w", err)
	}
	return true, nil
}

// createFiringAlert creates a new alert and attaches it to an open incident
// with the same grouping key, opening a new incident when none exists.
func createFiringAlert(ctx context.Context, tx *ent.Tx, a *models.NormalizedAlert, result *models.IngestResult) error {
	inc, err := tx.Incident.Query().
		Where(
			incident.GroupingKeyEQ(a.Fingerprint),
			incident.StatusIn(incident.StatusOpen, incident.StatusAcknowledged),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query open incident: %w", err)
	}

	if inc == nil {
		inc, err = tx.Incident.Create().
			SetID(uuid.New().String()).
			SetTitle(a.Name).
			SetSeverity(incident.Severity(a.Severity)).
			SetGroupingKey(a.Fingerprint).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create incident: %w", err)
		}
		result.IncidentsCreated++
	} else {
		result.IncidentsUpdated++
		if models.Severity(a.Severity).Rank() > models.Severity(inc.Severity).Rank() {
			if err := tx.Incident.UpdateOne(inc).SetSeverity(incident.Severity(a.Severity)).Exec(ctx); err != nil {
				return fmt.Errorf("failed to escalate incident severity: %w", err)
			}
		}
	}

	create := tx.Alert.Create().
		SetID(uuid.New().String()).
		SetFingerprint(a.Fingerprint).
		SetSource(a.Source).
		SetName(a.Name).
		SetSeverity(alert.Severity(a.Severity)).
		SetStatus(alert.StatusFiring).
		SetIncidentID(inc.ID)
	if a.Labels != nil {
		create.SetLabels(a.Labels)
	}
	if a.Annotations != nil {
		create.SetAnnotations(a.Annotations)
	}
	if a.RawPayload != nil {
		create.SetRawPayload(a.RawPayload)
	}
	if a.StartsAt != nil {
		create.SetStartsAt(*a.StartsAt)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	result.AlertsCreated++
	result.IncidentID = inc.ID
	return nil
}

// resolveAlert transitions a firing alert to resolved and resolves the owning
// incident once every member alert is resolved.
func resolveAlert(ctx context.Context, tx *ent.Tx, existing *ent.Alert, a *models.NormalizedAlert, result *models.IngestResult) error {
	endsAt := time.Now()
	if a.EndsAt != nil {
		endsAt = *a.EndsAt
	}

	err := tx.Alert.UpdateOne(existing).
		SetStatus(alert.StatusResolved).
		SetEndsAt(endsAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve alert: %w", err)
	}

	err = tx.AlertHistory.Create().
		SetID(uuid.New().String()).
		SetAlertID(existing.ID).
		SetPreviousStatus(string(alert.StatusFiring)).
		SetNewStatus(string(alert.StatusResolved)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append alert history: %w", err)
	}
	result.AlertsResolved++

	if existing.IncidentID == nil {
		return nil
	}
	result.IncidentID = *existing.IncidentID

	stillFiring, err := tx.Alert.Query().
		Where(alert.IncidentIDEQ(*existing.IncidentID), alert.StatusEQ(alert.StatusFiring)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count firing alerts on incident: %w", err)
	}
	if stillFiring == 0 {
		err := tx.Incident.UpdateOneID(*existing.IncidentID).
			SetStatus(incident.StatusResolved).
			SetResolvedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve incident: %w", err)
		}
		result.IncidentsUpdated++
		return nil
	}

	// The resolved alert may have carried the incident's severity; recompute
	// from the members still firing.
	inc, err := tx.Incident.Get(ctx, *existing.IncidentID)
	if err != nil {
		return fmt.Errorf("failed to load incident: %w", err)
	}
	changed, err := recomputeIncidentSeverity(ctx, tx, inc)
	if err != nil {
		return err
	}
	if changed {
		result.IncidentsUpdated++
	}
	return nil
}
