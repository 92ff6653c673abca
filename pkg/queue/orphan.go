package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently; the operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds claimed, non-terminal runs with stale
// heartbeats and requeues them. Succeeded stage executions survive, so the
// next worker picks up where the dead one stopped.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.PipelineRun.Query().
		Where(
			pipelinerun.StatusNotIn(terminalStatuses...),
			pipelinerun.PodIDNotNil(),
			pipelinerun.LastInteractionAtNotNil(),
			pipelinerun.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.requeueOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to requeue orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedRun puts a single orphaned run back on the queue. Status
// returns to pending and the dead pod's claim is released; the attempt
// bookkeeping stays intact.
func (p *WorkerPool) requeueOrphanedRun(ctx context.Context, run *ent.PipelineRun) error {
	lastHeartbeat := "unknown"
	if run.LastInteractionAt != nil {
		lastHeartbeat = run.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}

	err := run.Update().
		SetStatus(pipelinerun.StatusPending).
		ClearPodID().
		SetLastErrorType("retryable").
		SetLastErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		SetLastErrorRetryable(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue run: %w", err)
	}

	slog.Warn("Orphaned run requeued",
		"run_id", run.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// RequeueStartupOrphans performs a one-time recovery of runs owned by this
// pod that were in flight when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.PipelineRun.Query().
		Where(
			pipelinerun.StatusNotIn(terminalStatuses...),
			pipelinerun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, run := range orphans {
		err := run.Update().
			SetStatus(pipelinerun.StatusPending).
			ClearPodID().
			SetLastErrorType("retryable").
			SetLastErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while run was in flight", podID)).
			SetLastErrorRetryable(true).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"run_id", run.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan requeued", "run_id", run.ID)
	}

	return nil
}
