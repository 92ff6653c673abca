package ingest_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent/alert"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/pkg/ingest"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

func firingPayload(severity string) []byte {
	return []byte(fmt.Sprintf(`{
		"receiver": "team-x",
		"alerts": [{
			"status": "firing",
			"fingerprint": "it-fp-1",
			"labels": {"alertname": "HighCPU", "severity": %q, "host": "node1"}
		}]
	}`, severity))
}

func resolvedPayload() []byte {
	return []byte(`{
		"receiver": "team-x",
		"alerts": [{
			"status": "resolved",
			"fingerprint": "it-fp-1",
			"labels": {"alertname": "HighCPU", "severity": "critical", "host": "node1"}
		}]
	}`)
}

func TestIngestCreatesAlertAndIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())
	ctx := context.Background()

	result, err := normalizer.Ingest(ctx, firingPayload("critical"), "")
	require.NoError(t, err)

	assert.Equal(t, "alertmanager", result.Source)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, 1, result.IncidentsCreated)
	require.NotEmpty(t, result.IncidentID)

	inc, err := client.Incident.Get(ctx, result.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, "HighCPU", inc.Title)
	assert.Equal(t, incident.StatusOpen, inc.Status)
	assert.Equal(t, "it-fp-1", inc.GroupingKey)
}

func TestIngestDuplicateFiringUpdatesInPlace(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())
	ctx := context.Background()

	first, err := normalizer.Ingest(ctx, firingPayload("warning"), "")
	require.NoError(t, err)

	second, err := normalizer.Ingest(ctx, firingPayload("critical"), "")
	require.NoError(t, err)

	assert.Equal(t, 0, second.AlertsCreated)
	assert.Equal(t, 1, second.AlertsUpdated)
	assert.Equal(t, 0, second.IncidentsCreated)
	assert.Equal(t, first.IncidentID, second.IncidentID)

	// Still exactly one firing alert for the fingerprint.
	count, err := client.Alert.Query().
		Where(alert.FingerprintEQ("it-fp-1"), alert.StatusEQ(alert.StatusFiring)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Severity escalation propagated to the incident.
	inc, err := client.Incident.Get(ctx, first.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, incident.SeverityCritical, inc.Severity)

	// Severity change produced a history entry.
	a, err := client.Alert.Query().Where(alert.FingerprintEQ("it-fp-1")).Only(ctx)
	require.NoError(t, err)
	history, err := a.QueryHistory().All(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Contains(t, history[0].Details, "severity changed")
}

func TestIngestSeverityDowngradePropagatesToIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())
	ctx := context.Background()

	first, err := normalizer.Ingest(ctx, firingPayload("critical"), "")
	require.NoError(t, err)

	second, err := normalizer.Ingest(ctx, firingPayload("warning"), "")
	require.NoError(t, err)
	assert.Equal(t, 1, second.AlertsUpdated)
	assert.Equal(t, 1, second.IncidentsUpdated)

	// The incident follows its firing alerts down, not just up.
	inc, err := client.Incident.Get(ctx, first.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, incident.SeverityWarning, inc.Severity)
}

func TestIngestResolveRecomputesIncidentSeverity(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())
	ctx := context.Background()

	created, err := normalizer.Ingest(ctx, firingPayload("critical"), "")
	require.NoError(t, err)

	// A second, milder alert attached to the same incident out of band.
	err = client.Alert.Create().
		SetID(uuid.New().String()).
		SetFingerprint("it-fp-2").
		SetSource("alertmanager").
		SetName("HighMemory").
		SetSeverity(alert.SeverityWarning).
		SetStatus(alert.StatusFiring).
		SetIncidentID(created.IncidentID).
		Exec(ctx)
	require.NoError(t, err)

	resolved, err := normalizer.Ingest(ctx, resolvedPayload(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, resolved.AlertsResolved)

	// The critical member is gone; the incident stays open at the highest
	// severity still firing.
	inc, err := client.Incident.Get(ctx, created.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusOpen, inc.Status)
	assert.Equal(t, incident.SeverityWarning, inc.Severity)
}

func TestIngestResolveClosesIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())
	ctx := context.Background()

	created, err := normalizer.Ingest(ctx, firingPayload("critical"), "")
	require.NoError(t, err)

	resolved, err := normalizer.Ingest(ctx, resolvedPayload(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, resolved.AlertsResolved)
	assert.Equal(t, 1, resolved.IncidentsUpdated)

	a, err := client.Alert.Query().Where(alert.FingerprintEQ("it-fp-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, alert.StatusResolved, a.Status)
	assert.NotNil(t, a.EndsAt)

	inc, err := client.Incident.Get(ctx, created.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusResolved, inc.Status)
	assert.NotNil(t, inc.ResolvedAt)
}

func TestIngestResolveForUnknownFingerprintIsNoop(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())

	result, err := normalizer.Ingest(context.Background(), resolvedPayload(), "")
	require.NoError(t, err)

	assert.Equal(t, 0, result.AlertsResolved)
	assert.Equal(t, 0, result.AlertsCreated)
}

func TestIngestMalformedPayload(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())

	_, err := normalizer.Ingest(context.Background(), []byte(`not json`), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrMalformedPayload)

	_, err = normalizer.Ingest(context.Background(), []byte(`{"name": "x"}`), "nagios")
	require.Error(t, err)
	assert.ErrorIs(t, err, ingest.ErrUnknownSource)
}

// Concurrent webhooks with the same fingerprint must not race duplicate
// incident creation: the advisory lock serializes them.
func TestIngestConcurrentSameFingerprint(t *testing.T) {
	client := testdb.NewTestClient(t)
	normalizer := ingest.NewNormalizer(client.Client, ingest.DefaultRegistry())
	ctx := context.Background()

	const goroutines = 8
	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = normalizer.Ingest(ctx, firingPayload("critical"), "")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	alerts, err := client.Alert.Query().Where(alert.FingerprintEQ("it-fp-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, alerts, "exactly one alert row despite concurrent ingest")

	incidents, err := client.Incident.Query().Where(incident.GroupingKeyEQ("it-fp-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, incidents, "exactly one incident despite concurrent ingest")
}
