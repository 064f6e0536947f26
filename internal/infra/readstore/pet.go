package readstore

import (
	"context"

	"pet-scheduler/internal/infra"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
	"pet-scheduler/internal/usecase/queries"
)

type PetReadQueries interface {
	GetPetByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Pets, error)
	ListPets(ctx context.Context, db sqlc.DBTX) ([]sqlc.Pets, error)
}

type PetReadStore struct {
	queries PetReadQueries
	db      sqlc.DBTX
}

func NewPetReadStore(queries *sqlc.Queries, db sqlc.DBTX) *PetReadStore {
	return &PetReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PetReadStore) FindByID(ctx context.Context, id int64) (*queries.PetView, error) {
	row, err := r.queries.GetPetByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	return toPetView(row), nil
}

func (r *PetReadStore) FindAll(ctx context.Context) ([]*queries.PetView, error) {
	rows, err := r.queries.ListPets(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}

	result := make([]*queries.PetView, len(rows))
	for i, row := range rows {
		result[i] = toPetView(row)
	}
	return result, nil
}

func toPetView(row sqlc.Pets) *queries.PetView {
	v := &queries.PetView{
		ID:        row.ID,
		Name:      row.Name,
		Breed:     row.Breed,
		OwnerName: row.OwnerName,
		Phone:     row.Phone,
		PhotoURL:  pgconv.StringPtrFromPgtype(row.PhotoUrl),
		Color:     pgconv.StringPtrFromPgtype(row.Color),
		Weight:    pgconv.StringPtrFromPgtype(row.Weight),
		Age:       pgconv.StringPtrFromPgtype(row.Age),
		Chip:      pgconv.StringPtrFromPgtype(row.Chip),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if row.BirthDate.Valid {
		bd := pgconv.DateFromPgtype(row.BirthDate)
		v.BirthDate = &bd
	}
	return v
}
