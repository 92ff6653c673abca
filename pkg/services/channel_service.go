package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/notificationchannel"
)

// ChannelService manages notification channel config rows
type ChannelService struct {
	client *ent.Client
}

// NewChannelService creates a new ChannelService
func NewChannelService(client *ent.Client) *ChannelService {
	return &ChannelService{client: client}
}

// CreateChannel stores a new notification channel
func (s *ChannelService) CreateChannel(httpCtx context.Context, name, driver string, config map[string]any) (*ent.NotificationChannel, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if driver == "" {
		return nil, NewValidationError("driver", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	builder := s.client.NotificationChannel.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDriver(driver)

	if config != nil {
		builder.SetConfig(config)
	}

	ch, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: channel %q", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return ch, nil
}

// UpdateChannelConfig replaces a channel's driver config
func (s *ChannelService) UpdateChannelConfig(ctx context.Context, channelID string, config map[string]any) (*ent.NotificationChannel, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ch, err := s.client.NotificationChannel.UpdateOneID(channelID).
		SetConfig(config).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}

	return ch, nil
}

// SetChannelActive enables or disables a channel
func (s *ChannelService) SetChannelActive(ctx context.Context, channelID string, active bool) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.NotificationChannel.UpdateOneID(channelID).
		SetIsActive(active).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set channel active flag: %w", err)
	}
	return nil
}

// GetChannel retrieves a channel by ID
func (s *ChannelService) GetChannel(ctx context.Context, channelID string) (*ent.NotificationChannel, error) {
	ch, err := s.client.NotificationChannel.Get(ctx, channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return ch, nil
}

// ListChannels retrieves channels, optionally only active ones
func (s *ChannelService) ListChannels(ctx context.Context, activeOnly bool) ([]*ent.NotificationChannel, error) {
	query := s.client.NotificationChannel.Query().
		Order(ent.Asc(notificationchannel.FieldName))

	if activeOnly {
		query = query.Where(notificationchannel.IsActive(true))
	}

	channels, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	return channels, nil
}

// DeleteChannel removes a channel
func (s *ChannelService) DeleteChannel(ctx context.Context, channelID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.NotificationChannel.DeleteOneID(channelID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	return nil
}
