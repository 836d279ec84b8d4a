package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a gas product sold through the storefront
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	WeightKg    float64   `json:"weight_kg" db:"weight_kg"`
	Usage       string    `json:"usage" db:"usage"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	PriceHint   string    `json:"price_hint" db:"price_hint"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Promotion is a time-bounded storefront promotion
type Promotion struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Body      string     `json:"body" db:"body"`
	ProductID *uuid.UUID `json:"product_id,omitempty" db:"product_id"`
	ImageURL  string     `json:"image_url" db:"image_url"`
	StartsAt  time.Time  `json:"starts_at" db:"starts_at"`
	EndsAt    time.Time  `json:"ends_at" db:"ends_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// ActiveAt reports whether the promotion window covers the given instant
func (p *Promotion) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartsAt) && t.Before(p.EndsAt)
}

// DeliveryPartner is a home-delivery company carrying the products
type DeliveryPartner struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Cities       string    `json:"cities" db:"cities"` // comma separated coverage
	Phone        string    `json:"phone" db:"phone"`
	WhatsApp     string    `json:"whatsapp" db:"whatsapp"`
	WhatsAppLink string    `json:"whatsapp_link" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
