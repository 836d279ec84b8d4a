package models

import (
	"time"

	"github.com/google/uuid"
)

// PushKeys holds the browser push encryption keys
type PushKeys struct {
	P256DH string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is a registered browser push endpoint
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	Endpoint  string    `json:"endpoint"`
	Keys      PushKeys  `json:"keys"`
	Zone      string    `json:"zone,omitempty"` // geohash prefix the subscriber cares about
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// PushPayload is the notification body handed to the push delivery worker
type PushPayload struct {
	Title   string          `json:"title"`
	Body    string          `json:"body"`
	Icon    string          `json:"icon,omitempty"`
	Badge   string          `json:"badge,omitempty"`
	Tag     string          `json:"tag,omitempty"`
	Data    PushPayloadData `json:"data"`
	Actions []PushAction    `json:"actions,omitempty"`
}

// PushPayloadData carries the click-through target
type PushPayloadData struct {
	URL string `json:"url"`
}

// PushAction is an optional notification action button
type PushAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// PushEvent is the message published for each subscription to notify
type PushEvent struct {
	SubscriptionID uuid.UUID   `json:"subscription_id"`
	Endpoint       string      `json:"endpoint"`
	Keys           PushKeys    `json:"keys"`
	Payload        PushPayload `json:"payload"`
}
