package queries

import (
	"context"

	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/pkg/errs"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id int64) (*ServiceView, error)
	FindActive(ctx context.Context) ([]*ServiceView, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id int64) (*ResourceView, error)
	FindAll(ctx context.Context) ([]*ResourceView, error)
}

type PetReadStore interface {
	FindByID(ctx context.Context, id int64) (*PetView, error)
	FindAll(ctx context.Context) ([]*PetView, error)
}

type CatalogQueries interface {
	GetService(ctx context.Context, id int64) (*ServiceView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetResource(ctx context.Context, id int64) (*ResourceView, error)
	ListResources(ctx context.Context) ([]*ResourceView, error)
	GetPet(ctx context.Context, id int64) (*PetView, error)
	ListPets(ctx context.Context) ([]*PetView, error)
}

type catalogQueriesImpl struct {
	services  ServiceReadStore
	resources ResourceReadStore
	pets      PetReadStore
}

func NewCatalogQueries(services ServiceReadStore, resources ResourceReadStore, pets PetReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		services:  services,
		resources: resources,
		pets:      pets,
	}
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id int64) (*ServiceView, error) {
	v, err := q.services.FindByID(ctx, id)
	return v, mapNotFound(err, errs.ErrServiceNotFound)
}

// ListServices returns active services ordered by name.
func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.services.FindActive(ctx)
}

func (q *catalogQueriesImpl) GetResource(ctx context.Context, id int64) (*ResourceView, error) {
	v, err := q.resources.FindByID(ctx, id)
	return v, mapNotFound(err, errs.ErrResourceNotFound)
}

func (q *catalogQueriesImpl) ListResources(ctx context.Context) ([]*ResourceView, error) {
	return q.resources.FindAll(ctx)
}

func (q *catalogQueriesImpl) GetPet(ctx context.Context, id int64) (*PetView, error) {
	v, err := q.pets.FindByID(ctx, id)
	return v, mapNotFound(err, errs.ErrPetNotFound)
}

func (q *catalogQueriesImpl) ListPets(ctx context.Context) ([]*PetView, error) {
	return q.pets.FindAll(ctx)
}

// mapNotFound swaps a repository NOT_FOUND for the given sentinel.
func mapNotFound(err error, sentinel error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
