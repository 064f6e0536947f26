package readstore

import (
	"context"

	"pet-scheduler/internal/infra"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
	"pet-scheduler/internal/usecase/queries"
)

type ServiceReadQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	ListActiveServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id int64) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return toServiceView(row), nil
}

func (r *ServiceReadStore) FindActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListActiveServices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}

	result := make([]*queries.ServiceView, len(rows))
	for i, row := range rows {
		result[i] = toServiceView(row)
	}
	return result, nil
}

func toServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              row.ID,
		Name:            row.Name,
		PriceCents:      row.PriceCents,
		DurationMinutes: int(row.DurationMinutes),
		Active:          row.Active,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
