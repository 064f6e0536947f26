package resource

import (
	"strings"
	"time"

	"pet-scheduler/internal/pkg/errs"
)

// DefaultID is the resource bookings fall back to when none is given.
const DefaultID int64 = 1

const (
	MaxResourceNameLength = 255
)

var (
	ErrEmptyResourceName   = errs.Invalidf("resource name cannot be empty")
	ErrResourceNameTooLong = errs.Invalidf("resource name is too long (max 255 characters)")
)

type Resource struct {
	id        int64
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(name string, now time.Time) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	return &Resource{
		name:      strings.TrimSpace(name),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructResource(id int64, name string, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() int64            { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
