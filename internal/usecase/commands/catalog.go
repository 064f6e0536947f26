package commands

import (
	"context"

	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/internal/usecase/shared"
)

type CreateServiceInput struct {
	Name            string
	PriceCents      int64
	DurationMinutes int
}

type CreatePetInput struct {
	Name      string
	Breed     string
	OwnerName string
	Phone     string
	PhotoURL  *string
	Color     *string
	Weight    *string
	Age       *string
	Chip      *string
	BirthDate *string
}

type CatalogCommands interface {
	CreateService(ctx context.Context, in CreateServiceInput) (*queries.ServiceView, error)
	// UpdateService applies an admin edit. Booked appointments keep their
	// stored interval; only new bookings see a changed duration.
	UpdateService(ctx context.Context, id int64, p service.Patch) (*queries.ServiceView, error)
	CreatePet(ctx context.Context, in CreatePetInput) (*queries.PetView, error)
	CreateResource(ctx context.Context, name string) (*queries.ResourceView, error)
}

type catalogUseCaseImpl struct {
	uow     shared.UnitOfWork
	catalog queries.CatalogQueries
	clock   clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, catalog queries.CatalogQueries, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, catalog: catalog, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, in CreateServiceInput) (*queries.ServiceView, error) {
	svc, err := service.NewService(in.Name, in.PriceCents, in.DurationMinutes, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Services().Create(ctx, tx.DB(), svc)
		if derr != nil {
			return mapServiceWriteErr(derr)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.catalog.GetService(ctx, id)
}

func (uc *catalogUseCaseImpl) UpdateService(ctx context.Context, id int64, p service.Patch) (*queries.ServiceView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Services().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrServiceNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		changed, derr := svc.Apply(p, uc.clock.Now())
		if derr != nil || !changed {
			return derr
		}
		if derr = tx.Services().Update(ctx, tx.DB(), svc); derr != nil {
			return mapServiceWriteErr(derr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.catalog.GetService(ctx, id)
}

func (uc *catalogUseCaseImpl) CreatePet(ctx context.Context, in CreatePetInput) (*queries.PetView, error) {
	details := pet.Details{
		PhotoURL: in.PhotoURL,
		Color:    in.Color,
		Weight:   in.Weight,
		Age:      in.Age,
		Chip:     in.Chip,
	}
	if in.BirthDate != nil {
		d, err := schedule.ParseDate(*in.BirthDate)
		if err != nil {
			return nil, err
		}
		bd := d.Midnight()
		details.BirthDate = &bd
	}

	p, err := pet.NewPet(in.Name, in.Breed, in.OwnerName, in.Phone, details, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Pets().Create(ctx, tx.DB(), p)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.catalog.GetPet(ctx, id)
}

func (uc *catalogUseCaseImpl) CreateResource(ctx context.Context, name string) (*queries.ResourceView, error) {
	r, err := resource.NewResource(name, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Resources().Create(ctx, tx.DB(), r)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.catalog.GetResource(ctx, id)
}

func mapServiceWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.ErrServiceNameTaken
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
