package queries

import (
	"time"
)

// ServiceView represents read-optimized service data
type ServiceView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int       `json:"duration_minutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetView represents read-optimized pet data
type PetView struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Breed     string     `json:"breed"`
	OwnerName string     `json:"owner_name"`
	Phone     string     `json:"phone"`
	PhotoURL  *string    `json:"photo_url,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Weight    *string    `json:"weight,omitempty"`
	Age       *string    `json:"age,omitempty"`
	Chip      *string    `json:"chip,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ServiceSummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

type ResourceSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PetSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
}
