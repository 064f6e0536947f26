package readstore

import (
	"context"

	"pet-scheduler/internal/infra"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
	"pet-scheduler/internal/usecase/queries"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Resources, error)
	ListResources(ctx context.Context, db sqlc.DBTX) ([]sqlc.Resources, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindAll(ctx context.Context) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResources(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all resources", err)
	}

	result := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		result[i] = toResourceView(row)
	}

	return result, nil
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id int64) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	return toResourceView(row), nil
}

func toResourceView(row sqlc.Resources) *queries.ResourceView {
	return &queries.ResourceView{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
