package pet

import (
	"net/url"
	"strings"
	"time"

	"pet-scheduler/internal/pkg/errs"
)

const MinPhoneLength = 6

var (
	ErrEmptyName      = errs.Invalidf("pet name cannot be empty")
	ErrEmptyBreed     = errs.Invalidf("breed cannot be empty")
	ErrEmptyOwnerName = errs.Invalidf("owner name cannot be empty")
	ErrPhoneTooShort  = errs.Invalidf("phone must have at least 6 characters")
	ErrInvalidPhoto   = errs.Invalidf("photo url must be an absolute http(s) url")
)

// Details are optional descriptive fields shown on the pet card.
type Details struct {
	PhotoURL  *string
	Color     *string
	Weight    *string
	Age       *string
	Chip      *string
	BirthDate *time.Time
}

type Pet struct {
	id        int64
	name      string
	breed     string
	ownerName string
	phone     string
	details   Details
	createdAt time.Time
}

func NewPet(name, breed, ownerName, phone string, details Details, now time.Time) (*Pet, error) {
	p := &Pet{
		name:      strings.TrimSpace(name),
		breed:     strings.TrimSpace(breed),
		ownerName: strings.TrimSpace(ownerName),
		phone:     strings.TrimSpace(phone),
		details:   details,
		createdAt: now,
	}

	switch {
	case p.name == "":
		return nil, ErrEmptyName
	case p.breed == "":
		return nil, ErrEmptyBreed
	case p.ownerName == "":
		return nil, ErrEmptyOwnerName
	case len(p.phone) < MinPhoneLength:
		return nil, ErrPhoneTooShort
	}
	if details.PhotoURL != nil && !isAbsoluteURL(*details.PhotoURL) {
		return nil, ErrInvalidPhoto
	}
	return p, nil
}

func ReconstructPet(id int64, name, breed, ownerName, phone string, details Details, createdAt time.Time) *Pet {
	return &Pet{
		id:        id,
		name:      name,
		breed:     breed,
		ownerName: ownerName,
		phone:     phone,
		details:   details,
		createdAt: createdAt,
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (p *Pet) ID() int64            { return p.id }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Breed() string        { return p.breed }
func (p *Pet) OwnerName() string    { return p.ownerName }
func (p *Pet) Phone() string        { return p.phone }
func (p *Pet) Details() Details     { return p.details }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
