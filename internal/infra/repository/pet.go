package repository

import (
	"context"

	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/infra/repository/converter"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
)

type PetWriteQueries interface {
	CreatePet(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePetParams) (int64, error)
}

type PetRepository struct {
	queries PetWriteQueries
	db      sqlc.DBTX
}

func NewPetRepository(queries *sqlc.Queries, db sqlc.DBTX) *PetRepository {
	return &PetRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PetRepository) Create(ctx context.Context, tx sqlc.DBTX, p *pet.Pet) (int64, error) {
	id, err := r.queries.CreatePet(ctx, tx, converter.PetToCreateParams(p))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create pet", err)
	}
	return id, nil
}
