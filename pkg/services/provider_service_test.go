package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent/intelligenceprovider"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

func TestProviderActivationIsExclusive(t *testing.T) {
	client := testdb.NewTestClient(t)
	invalidations := 0
	svc := services.NewProviderService(client.Client, func() { invalidations++ })
	ctx := context.Background()

	first, err := svc.CreateProvider(ctx, "openai-prod", "openai", map[string]any{"api_key_env": "OPENAI_API_KEY"})
	require.NoError(t, err)
	second, err := svc.CreateProvider(ctx, "anthropic-prod", "anthropic", map[string]any{"api_key_env": "ANTHROPIC_API_KEY"})
	require.NoError(t, err)

	require.NoError(t, svc.Activate(ctx, first.ID))
	require.NoError(t, svc.Activate(ctx, second.ID))

	active, err := client.Client.IntelligenceProvider.Query().
		Where(intelligenceprovider.IsActive(true)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
	assert.Equal(t, 2, invalidations)
}

func TestProviderValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProviderService(client.Client, nil)
	ctx := context.Background()

	_, err := svc.CreateProvider(ctx, "", "openai", nil)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CreateProvider(ctx, "my-provider", "watson", nil)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CreateProvider(ctx, "local-rules", "local", nil)
	require.NoError(t, err)

	_, err = svc.CreateProvider(ctx, "local-rules", "local", nil)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestProviderDeactivate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewProviderService(client.Client, nil)
	ctx := context.Background()

	provider, err := svc.CreateProvider(ctx, "openai-prod", "openai", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Activate(ctx, provider.ID))
	require.NoError(t, svc.Deactivate(ctx, provider.ID))

	got, err := svc.GetProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
