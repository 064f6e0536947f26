//go:build unit || e2e

package builder

import (
	"time"

	"pet-scheduler/internal/domain/service"
	reqdto "pet-scheduler/internal/handler/dto/request"
	"pet-scheduler/internal/usecase/queries"
)

type ServiceBuilder struct {
	ID              int64
	Name            string
	PriceCents      int64
	DurationMinutes int
	Active          bool
	Now             time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              1,
		Name:            "Banho e Tosa",
		PriceCents:      9000,
		DurationMinutes: 90,
		Active:          true,
		Now:             time.Date(2024, 8, 19, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (*service.Service, error) {
	return service.NewService(b.Name, b.PriceCents, b.DurationMinutes, b.Now)
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:              b.ID,
		Name:            b.Name,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
		Active:          b.Active,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:            b.Name,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

type PetBuilder struct {
	ID        int64
	Name      string
	Breed     string
	OwnerName string
	Phone     string
	PhotoURL  *string
	Now       time.Time
}

func NewPetBuilder() *PetBuilder {
	return &PetBuilder{
		ID:        1,
		Name:      "Rex",
		Breed:     "Poodle",
		OwnerName: "Maria Silva",
		Phone:     "11999990000",
		Now:       time.Date(2024, 8, 19, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PetBuilder) With(mutate func(*PetBuilder)) *PetBuilder {
	mutate(b)
	return b
}

func (b *PetBuilder) BuildView() *queries.PetView {
	return &queries.PetView{
		ID:        b.ID,
		Name:      b.Name,
		Breed:     b.Breed,
		OwnerName: b.OwnerName,
		Phone:     b.Phone,
		PhotoURL:  b.PhotoURL,
		CreatedAt: b.Now,
	}
}

func (b *PetBuilder) BuildCreateRequestDTO() reqdto.CreatePetRequest {
	return reqdto.CreatePetRequest{
		Name:      b.Name,
		Breed:     b.Breed,
		OwnerName: b.OwnerName,
		Phone:     b.Phone,
		PhotoURL:  b.PhotoURL,
	}
}
