package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/gazelia/storefront/internal/pkg/constants"
	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/catalog"
	"github.com/gazelia/storefront/services/notifications"
)

// zonePrecision gives roughly city-district sized geohash cells
const zonePrecision = 5

// NotificationUC implements the push notification business logic
type NotificationUC struct {
	repo      notifications.NotificationRepo
	catalogUC catalog.CatalogUC
	publisher notifications.EventPublisher
	now       func() time.Time
}

// NewNotificationUC creates the notification usecase
func NewNotificationUC(
	repo notifications.NotificationRepo,
	catalogUC catalog.CatalogUC,
	publisher notifications.EventPublisher,
) *NotificationUC {
	return &NotificationUC{
		repo:      repo,
		catalogUC: catalogUC,
		publisher: publisher,
		now:       time.Now,
	}
}

// Subscribe registers a browser push endpoint
func (uc *NotificationUC) Subscribe(ctx context.Context, sub *models.PushSubscription) (*models.PushSubscription, error) {
	if sub.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	sub.Enabled = true
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = uc.now()
	}

	if err := uc.repo.SaveSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe removes a push endpoint
func (uc *NotificationUC) Unsubscribe(ctx context.Context, id string) error {
	return uc.repo.DeleteSubscription(ctx, id)
}

// UpdatePreferences toggles promotion notifications for a subscription
func (uc *NotificationUC) UpdatePreferences(ctx context.Context, id string, enabled bool) error {
	sub, err := uc.repo.GetSubscription(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("subscription %s not found", id)
	}

	sub.Enabled = enabled
	return uc.repo.SaveSubscription(ctx, sub)
}

// SetZone attaches the subscriber's area to the subscription and returns the
// zone code. Only the geohash prefix is kept, never the raw position.
func (uc *NotificationUC) SetZone(ctx context.Context, id string, origin models.Coordinate) (string, error) {
	if err := origin.Validate(); err != nil {
		return "", err
	}

	sub, err := uc.repo.GetSubscription(ctx, id)
	if err != nil {
		return "", err
	}
	if sub == nil {
		return "", fmt.Errorf("subscription %s not found", id)
	}

	sub.Zone = geohash.EncodeWithPrecision(origin.Latitude, origin.Longitude, zonePrecision)
	if err := uc.repo.SaveSubscription(ctx, sub); err != nil {
		return "", err
	}
	return sub.Zone, nil
}

// CheckPromotions publishes a push event to every enabled subscription for
// each promotion that started since the previous sweep. It returns the
// number of events published.
func (uc *NotificationUC) CheckPromotions(ctx context.Context) (int, error) {
	lastCheck, err := uc.repo.LastPromoCheck(ctx)
	if err != nil {
		return 0, err
	}

	promotions, err := uc.catalogUC.ActivePromotions(ctx)
	if err != nil {
		return 0, err
	}

	fresh := promotions[:0:0]
	for _, promo := range promotions {
		if promo.StartsAt.After(lastCheck) {
			fresh = append(fresh, promo)
		}
	}

	now := uc.now()
	if len(fresh) == 0 {
		return 0, uc.repo.SetLastPromoCheck(ctx, now)
	}

	subs, err := uc.repo.ListSubscriptions(ctx)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, promo := range fresh {
		payload := models.PushPayload{
			Title: promo.Title,
			Body:  promo.Body,
			Icon:  "/icons/icon-192.png",
			Tag:   "promo-" + promo.ID.String(),
			Data:  models.PushPayloadData{URL: "/promotions"},
		}

		for _, sub := range subs {
			if !sub.Enabled {
				continue
			}
			event := models.PushEvent{
				SubscriptionID: sub.ID,
				Endpoint:       sub.Endpoint,
				Keys:           sub.Keys,
				Payload:        payload,
			}
			if err := uc.publisher.Publish(constants.SubjectPushNotifications, event); err != nil {
				logger.Warn("Failed to publish push event",
					logger.String("subscription_id", sub.ID.String()),
					logger.Err(err))
				continue
			}
			published++
		}
	}

	if err := uc.repo.SetLastPromoCheck(ctx, now); err != nil {
		return published, err
	}
	return published, nil
}
