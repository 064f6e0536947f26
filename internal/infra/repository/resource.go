package repository

import (
	"context"

	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/infra"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
)

type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) (int64, error)
	LockResource(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries *sqlc.Queries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) (int64, error) {
	params := sqlc.CreateResourceParams{
		Name:      res.Name(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
	}

	id, err := r.queries.CreateResource(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create resource", err)
	}
	return id, nil
}

// Lock holds the resource row until the transaction ends, so two bookings
// on the same resource run their conflict checks one after the other.
func (r *ResourceRepository) Lock(ctx context.Context, tx sqlc.DBTX, id int64) error {
	if _, err := r.queries.LockResource(ctx, tx, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock resource", err)
	}
	return nil
}
