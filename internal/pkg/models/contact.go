package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequest is the payload of the general contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Professional contact types
const (
	ProContactReseller = "revendeur"
	ProContactClient   = "client_pro"
)

// ProContactRequest is the payload of the professional contact form
type ProContactRequest struct {
	Type     string `json:"type" validate:"required,oneof=revendeur client_pro"`
	FullName string `json:"fullName" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	City     string `json:"city" validate:"required"`
	Message  string `json:"message" validate:"omitempty"`
}

// Lead is a persisted form submission
type Lead struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Kind      string    `json:"kind" db:"kind"` // contact | contact_pro
	Type      string    `json:"type,omitempty" db:"type"`
	Name      string    `json:"name" db:"name"`
	Company   string    `json:"company,omitempty" db:"company"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	City      string    `json:"city,omitempty" db:"city"`
	Subject   string    `json:"subject,omitempty" db:"subject"`
	Message   string    `json:"message,omitempty" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
