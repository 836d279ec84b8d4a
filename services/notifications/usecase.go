package notifications

import (
	"context"

	"github.com/gazelia/storefront/internal/pkg/models"
)

// NotificationUC defines the interface for push notification business logic
type NotificationUC interface {
	Subscribe(ctx context.Context, sub *models.PushSubscription) (*models.PushSubscription, error)
	Unsubscribe(ctx context.Context, id string) error
	UpdatePreferences(ctx context.Context, id string, enabled bool) error
	SetZone(ctx context.Context, id string, origin models.Coordinate) (string, error)
	CheckPromotions(ctx context.Context) (int, error)
}
