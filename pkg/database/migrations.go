package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These enforce the multi-row invariants the
// orchestration core relies on instead of application-level locking.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one firing alert per fingerprint.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS alert_fingerprint_firing
		ON alerts (fingerprint)
		WHERE status = 'firing'`)
	if err != nil {
		return fmt.Errorf("failed to create firing-alert index: %w", err)
	}

	// At most one succeeded stage execution per (run, stage, node). node_id
	// is empty for fixed-topology stages, which yields the plain per-(run,
	// stage) guarantee there.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS stageexecution_run_stage_succeeded
		ON stage_executions (pipeline_run_id, stage, node_id)
		WHERE status = 'succeeded'`)
	if err != nil {
		return fmt.Errorf("failed to create succeeded-stage index: %w", err)
	}

	// At most one active intelligence provider.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS intelligenceprovider_single_active
		ON intelligence_providers ((is_active))
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active-provider index: %w", err)
	}

	return nil
}
