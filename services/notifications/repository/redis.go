package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gazelia/storefront/internal/pkg/constants"
	"github.com/gazelia/storefront/internal/pkg/database"
	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
)

// NotificationRepo implements the notification repository on Redis
type NotificationRepo struct {
	redisClient *database.RedisClient
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(redisClient *database.RedisClient) *NotificationRepo {
	return &NotificationRepo{redisClient: redisClient}
}

// SaveSubscription stores the subscription and indexes its id
func (r *NotificationRepo) SaveSubscription(ctx context.Context, sub *models.PushSubscription) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal subscription: %w", err)
	}

	key := fmt.Sprintf(constants.KeyPushSubscription, sub.ID.String())
	if err := r.redisClient.Set(ctx, key, string(data), 0); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyPushSubscriptions, sub.ID.String()); err != nil {
		return fmt.Errorf("failed to index subscription: %w", err)
	}
	return nil
}

// GetSubscription returns the subscription with the given id, or nil when absent
func (r *NotificationRepo) GetSubscription(ctx context.Context, id string) (*models.PushSubscription, error) {
	key := fmt.Sprintf(constants.KeyPushSubscription, id)
	data, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %s: %w", id, err)
	}

	var sub models.PushSubscription
	if err := json.Unmarshal([]byte(data), &sub); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscription %s: %w", id, err)
	}
	return &sub, nil
}

// DeleteSubscription removes the subscription and its index entry
func (r *NotificationRepo) DeleteSubscription(ctx context.Context, id string) error {
	key := fmt.Sprintf(constants.KeyPushSubscription, id)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete subscription %s: %w", id, err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyPushSubscriptions, id); err != nil {
		return fmt.Errorf("failed to unindex subscription %s: %w", id, err)
	}
	return nil
}

// ListSubscriptions returns every registered subscription. Index entries
// whose payload is gone are skipped.
func (r *NotificationRepo) ListSubscriptions(ctx context.Context) ([]models.PushSubscription, error) {
	ids, err := r.redisClient.SMembers(ctx, constants.KeyPushSubscriptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription ids: %w", err)
	}

	subs := make([]models.PushSubscription, 0, len(ids))
	for _, id := range ids {
		sub, err := r.GetSubscription(ctx, id)
		if err != nil {
			logger.Warn("Skipping unreadable subscription",
				logger.String("subscription_id", id),
				logger.Err(err))
			continue
		}
		if sub == nil {
			continue
		}
		subs = append(subs, *sub)
	}
	return subs, nil
}

// LastPromoCheck returns the time of the last promotion sweep, zero when none ran
func (r *NotificationRepo) LastPromoCheck(ctx context.Context) (time.Time, error) {
	data, err := r.redisClient.Get(ctx, constants.KeyLastPromoCheck)
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last promo check: %w", err)
	}

	t, err := time.Parse(time.RFC3339, data)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last promo check: %w", err)
	}
	return t, nil
}

// SetLastPromoCheck records the time of a promotion sweep
func (r *NotificationRepo) SetLastPromoCheck(ctx context.Context, t time.Time) error {
	if err := r.redisClient.Set(ctx, constants.KeyLastPromoCheck, t.Format(time.RFC3339), 0); err != nil {
		return fmt.Errorf("failed to set last promo check: %w", err)
	}
	return nil
}
