package response

import (
	"time"

	"pet-scheduler/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	PriceCents      int64     `json:"priceCents"`
	DurationMinutes int       `json:"durationMinutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ResourceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PetResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	OwnerName string    `json:"ownerName"`
	Phone     string    `json:"phone"`
	PhotoURL  *string   `json:"photoUrl,omitempty"`
	Color     *string   `json:"color,omitempty"`
	Weight    *string   `json:"weight,omitempty"`
	Age       *string   `json:"age,omitempty"`
	Chip      *string   `json:"chip,omitempty"`
	BirthDate *string   `json:"birthDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	res := &ServiceResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(vs))
	for i, v := range vs {
		res[i] = FromServiceView(v)
	}
	return res
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	res := &ResourceResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromResourceViews(vs []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, len(vs))
	for i, v := range vs {
		res[i] = FromResourceView(v)
	}
	return res
}

// FromPetView renders the birth date as a plain calendar date.
func FromPetView(v *queries.PetView) *PetResponse {
	res := &PetResponse{
		ID:        v.ID,
		Name:      v.Name,
		Breed:     v.Breed,
		OwnerName: v.OwnerName,
		Phone:     v.Phone,
		PhotoURL:  v.PhotoURL,
		Color:     v.Color,
		Weight:    v.Weight,
		Age:       v.Age,
		Chip:      v.Chip,
		CreatedAt: v.CreatedAt,
	}
	if v.BirthDate != nil {
		d := v.BirthDate.Format(time.DateOnly)
		res.BirthDate = &d
	}
	return res
}

func FromPetViews(vs []*queries.PetView) []*PetResponse {
	res := make([]*PetResponse, len(vs))
	for i, v := range vs {
		res[i] = FromPetView(v)
	}
	return res
}
