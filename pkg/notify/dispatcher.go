package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/notificationchannel"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// ErrAllDeliveriesFailed indicates every attempted delivery failed with at
// least one retryable error. Partial success is not an error.
var ErrAllDeliveriesFailed = errors.New("all notification deliveries failed")

// Dispatcher fans one message out to every active channel. Per-channel
// failures are recorded in the results; the dispatch as a whole fails only
// when nothing was delivered and a retry could change that.
type Dispatcher struct {
	db       *ent.Client
	registry *Registry
	cfg      *config.NotifyConfig
}

// NewDispatcher creates a dispatcher over the given Ent client and driver
// registry.
func NewDispatcher(db *ent.Client, registry *Registry, cfg *config.NotifyConfig) *Dispatcher {
	return &Dispatcher{db: db, registry: registry, cfg: cfg}
}

// Dispatch delivers msg to the active channels. A non-empty drivers set
// restricts delivery to channels whose driver is in the set; names in the set
// with no registered driver are reported as failed entries in the results.
// Messages below the configured minimum severity are dropped without touching
// any channel.
func (d *Dispatcher) Dispatch(ctx context.Context, msg models.NotificationMessage, drivers []string) ([]models.DeliveryResult, error) {
	if msg.Severity.Rank() < models.Severity(d.cfg.MinSeverity).Rank() {
		slog.Debug("Dropping notification below minimum severity",
			"severity", msg.Severity, "min_severity", d.cfg.MinSeverity)
		return nil, nil
	}

	var results []models.DeliveryResult
	query := d.db.NotificationChannel.Query().Where(notificationchannel.IsActive(true))
	if len(drivers) > 0 {
		known := make([]string, 0, len(drivers))
		for _, name := range drivers {
			if _, ok := d.registry.Get(name); ok {
				known = append(known, name)
				continue
			}
			results = append(results, models.DeliveryResult{
				Driver: name,
				Error:  fmt.Sprintf("driver %q is not registered", name),
			})
		}
		query = query.Where(notificationchannel.DriverIn(known...))
	}

	channels, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification channels: %w", err)
	}

	if len(channels) == 0 {
		if len(results) > 0 {
			// The requested drivers do not exist; a log fallback would mask
			// the misconfiguration.
			slog.Warn("No registered driver matched the requested set",
				"run_id", msg.RunID, "drivers", drivers)
			return results, nil
		}
		// A notification must never be silently lost; fall back to the log
		// driver unless explicitly disabled.
		if !d.cfg.FallbackToLog {
			slog.Warn("No active notification channels and log fallback disabled", "run_id", msg.RunID)
			return nil, nil
		}
		return d.deliverFallback(ctx, msg), nil
	}

	delivered := make([]models.DeliveryResult, len(channels))
	var wg sync.WaitGroup
	for i, ch := range channels {
		wg.Add(1)
		go func(i int, ch *ent.NotificationChannel) {
			defer wg.Done()
			delivered[i] = d.deliver(ctx, msg, ch)
		}(i, ch)
	}
	wg.Wait()
	results = append(results, delivered...)

	succeeded, retryableFailures := 0, 0
	for _, r := range results {
		if r.Succeeded {
			succeeded++
		} else if r.Retryable {
			retryableFailures++
		}
	}

	slog.Info("Notification dispatched",
		"run_id", msg.RunID,
		"channels", len(channels),
		"succeeded", succeeded,
		"failed", len(results)-succeeded)

	if succeeded == 0 && retryableFailures > 0 {
		return results, fmt.Errorf("%w: 0 of %d channels delivered", ErrAllDeliveriesFailed, len(channels))
	}
	return results, nil
}

// deliver sends through one channel under the per-channel timeout.
func (d *Dispatcher) deliver(ctx context.Context, msg models.NotificationMessage, ch *ent.NotificationChannel) models.DeliveryResult {
	result := models.DeliveryResult{
		ChannelID:   ch.ID,
		ChannelName: ch.Name,
		Driver:      ch.Driver,
	}

	driver, ok := d.registry.Get(ch.Driver)
	if !ok {
		result.Error = fmt.Sprintf("driver %q is not registered", ch.Driver)
		return result
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	start := time.Now()
	err := driver.Send(sendCtx, msg, ch.Config)
	result.DurationMs = time.Since(start).Milliseconds()

	if err != nil {
		slog.Warn("Channel delivery failed",
			"channel", ch.Name, "driver", ch.Driver, "run_id", msg.RunID, "error", err)
		result.Error = err.Error()
		result.Retryable = !IsPermanent(err)
		return result
	}

	result.Succeeded = true
	return result
}

// deliverFallback sends through the log driver when no channel matched.
func (d *Dispatcher) deliverFallback(ctx context.Context, msg models.NotificationMessage) []models.DeliveryResult {
	start := time.Now()
	_ = NewLogDriver().Send(ctx, msg, nil)
	return []models.DeliveryResult{{
		ChannelName: "log-fallback",
		Driver:      "log",
		Succeeded:   true,
		DurationMs:  time.Since(start).Milliseconds(),
	}}
}
