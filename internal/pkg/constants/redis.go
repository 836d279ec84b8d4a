package constants

// Redis key formats
const (
	// Distance Service
	// KeyDistanceCache mirrors the storefront cache key shape:
	// distances_<lat>_<lng>_<ids>_<mode>
	KeyDistanceCache = "distances_%s_%s_%s_%s"

	// Notification Service
	KeyPushSubscription  = "push:subscription:%s" // Format: push:subscription:{subscription_id}
	KeyPushSubscriptions = "push:subscriptions"   // Set of all subscription IDs
	KeyLastPromoCheck    = "push:last_promo_check"

	// Rate Limiting
	// The middleware appends the route path and caller IP
	KeyRateLimitPrefix = "rate:limit"
)

// NATS subjects
const (
	SubjectPushNotifications = "notifications.push"
)
