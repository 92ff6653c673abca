package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/incident"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

func createTestIncident(t *testing.T, client *ent.Client) *ent.Incident {
	t.Helper()
	inc, err := client.Incident.Create().
		SetID(uuid.New().String()).
		SetTitle("disk pressure on node-7").
		SetSeverity(incident.SeverityWarning).
		SetGroupingKey(uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return inc
}

func TestIncidentStatusForwardOnly(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewIncidentService(client.Client)
	ctx := context.Background()

	inc := createTestIncident(t, client.Client)

	updated, err := svc.UpdateStatus(ctx, inc.ID, incident.StatusAcknowledged)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusAcknowledged, updated.Status)

	updated, err = svc.UpdateStatus(ctx, inc.ID, incident.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)

	// Going backwards is rejected.
	_, err = svc.UpdateStatus(ctx, inc.ID, incident.StatusOpen)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, inc.ID, incident.StatusAcknowledged)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestIncidentStatusIdempotentUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewIncidentService(client.Client)
	ctx := context.Background()

	inc := createTestIncident(t, client.Client)

	updated, err := svc.UpdateStatus(ctx, inc.ID, incident.StatusOpen)
	require.NoError(t, err)
	assert.Equal(t, incident.StatusOpen, updated.Status)
}

func TestListIncidentsByStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewIncidentService(client.Client)
	ctx := context.Background()

	first := createTestIncident(t, client.Client)
	createTestIncident(t, client.Client)
	_, err := svc.UpdateStatus(ctx, first.ID, incident.StatusResolved)
	require.NoError(t, err)

	open, err := svc.ListIncidents(ctx, "open", 0)
	require.NoError(t, err)
	require.Len(t, open, 1)

	resolved, err := svc.ListIncidents(ctx, "resolved", 0)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, first.ID, resolved[0].ID)
}

func TestGetIncidentNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewIncidentService(client.Client)

	_, err := svc.GetIncident(context.Background(), "nonexistent", false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
