package notifications

import (
	"context"
	"time"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// NotificationRepo defines the interface for push subscription persistence
type NotificationRepo interface {
	SaveSubscription(ctx context.Context, sub *models.PushSubscription) error
	GetSubscription(ctx context.Context, id string) (*models.PushSubscription, error)
	DeleteSubscription(ctx context.Context, id string) error
	ListSubscriptions(ctx context.Context) ([]models.PushSubscription, error)
	LastPromoCheck(ctx context.Context) (time.Time, error)
	SetLastPromoCheck(ctx context.Context, t time.Time) error
}

// EventPublisher publishes push events to the delivery worker
type EventPublisher interface {
	Publish(subject string, message interface{}) error
}
