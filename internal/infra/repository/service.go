package repository

import (
	"context"

	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/infra/repository/converter"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (int64, error)
	GetServiceForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Services, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) error
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries *sqlc.Queries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *service.Service) (int64, error) {
	id, err := r.queries.CreateService(ctx, tx, converter.ServiceToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*service.Service, error) {
	row, err := r.queries.GetServiceForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, s *service.Service) error {
	if err := r.queries.UpdateService(ctx, tx, converter.ServiceToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	return nil
}
