package models

import (
	"time"

	"github.com/google/uuid"
)

// Reseller is a retail outlet selling the company's gas products
type Reseller struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Category        string    `json:"category" db:"category"`
	City            string    `json:"city" db:"city"`
	Address         string    `json:"address" db:"address"`
	Zone            string    `json:"zone" db:"zone"` // geohash prefix of the outlet location
	Products        string    `json:"products" db:"products"`
	Rating          float64   `json:"rating" db:"rating"`
	ReviewCount     int       `json:"review_count" db:"review_count"`
	DeliveryTimeMin int       `json:"delivery_time_min" db:"delivery_time_min"`
	Latitude        float64   `json:"latitude" db:"latitude"`
	Longitude       float64   `json:"longitude" db:"longitude"`
	Phone           string    `json:"phone" db:"phone"`
	WhatsApp        string    `json:"whatsapp" db:"whatsapp"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Coordinate returns the outlet location as a Coordinate
func (r *Reseller) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// ResellerFilter holds the directory filters; empty fields match everything
type ResellerFilter struct {
	Category string `json:"category" query:"category"`
	City     string `json:"city" query:"city"`
	Product  string `json:"product" query:"product"`
	Search   string `json:"search" query:"search"`
}

// Reseller sort orders
const (
	SortByRating      = "rating"
	SortByDeliveryMin = "delivery_time"
	SortByName        = "name"
	SortByReviews     = "review_count"
	SortByDistance    = "distance"
)

// ResellerQuery is a full directory request: filters, sort, pagination and
// the optional origin used to join distance estimates onto the page.
type ResellerQuery struct {
	Filter  ResellerFilter `json:"filter"`
	Sort    string         `json:"sort" query:"sort"`
	Page    int            `json:"page" query:"page"`
	PerPage int            `json:"per_page" query:"per_page"`
	Origin  *Coordinate    `json:"origin,omitempty"`
	Mode    TravelMode     `json:"mode" query:"mode"`
}

// ResellerView is a directory row joined with an optional distance estimate
type ResellerView struct {
	Reseller
	DistanceEstimate *DistanceResult `json:"distance_estimate,omitempty"`
}

// ResellerPage is one page of the filtered directory
type ResellerPage struct {
	Items       []ResellerView `json:"items"`
	Page        int            `json:"page"`
	PerPage     int            `json:"per_page"`
	Total       int            `json:"total"`
	Unreachable int            `json:"unreachable,omitempty"`
}
