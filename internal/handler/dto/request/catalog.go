package request

import (
	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	PriceCents      int64  `json:"priceCents"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
}

func (r CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:            r.Name,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
	}
}

// UpdateServiceRequest is a partial edit; omitted fields keep their value.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	PriceCents      *int64  `json:"priceCents,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

func (r UpdateServiceRequest) ToPatch() service.Patch {
	return service.Patch{
		Name:            r.Name,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		Active:          r.Active,
	}
}

type CreatePetRequest struct {
	Name      string  `json:"name" binding:"required"`
	Breed     string  `json:"breed" binding:"required"`
	OwnerName string  `json:"ownerName" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
	Color     *string `json:"color,omitempty"`
	Weight    *string `json:"weight,omitempty"`
	Age       *string `json:"age,omitempty"`
	Chip      *string `json:"chip,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

func (r CreatePetRequest) ToInput() commands.CreatePetInput {
	return commands.CreatePetInput{
		Name:      r.Name,
		Breed:     r.Breed,
		OwnerName: r.OwnerName,
		Phone:     r.Phone,
		PhotoURL:  r.PhotoURL,
		Color:     r.Color,
		Weight:    r.Weight,
		Age:       r.Age,
		Chip:      r.Chip,
		BirthDate: r.BirthDate,
	}
}

type CreateResourceRequest struct {
	Name string `json:"name" binding:"required"`
}
