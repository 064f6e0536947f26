package converter

import (
	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/domain/service"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ServiceToCreateParams(s *service.Service) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams{
		Name:            s.Name(),
		PriceCents:      s.PriceCents(),
		DurationMinutes: pgconv.IntToInt32(s.DurationMinutes()),
		Active:          s.Active(),
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ServiceToUpdateParams(s *service.Service) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:              s.ID(),
		Name:            s.Name(),
		PriceCents:      s.PriceCents(),
		DurationMinutes: pgconv.IntToInt32(s.DurationMinutes()),
		Active:          s.Active(),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func ServiceFromRow(row sqlc.Services) *service.Service {
	return service.ReconstructService(
		row.ID,
		row.Name,
		row.PriceCents,
		int(row.DurationMinutes),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PetToCreateParams(p *pet.Pet) sqlc.CreatePetParams {
	d := p.Details()
	birthDate := pgtype.Date{Valid: false}
	if d.BirthDate != nil {
		birthDate = pgconv.DateToPgtype(*d.BirthDate)
	}

	return sqlc.CreatePetParams{
		Name:      p.Name(),
		Breed:     p.Breed(),
		OwnerName: p.OwnerName(),
		Phone:     p.Phone(),
		PhotoUrl:  pgconv.StringPtrToPgtype(d.PhotoURL),
		Color:     pgconv.StringPtrToPgtype(d.Color),
		Weight:    pgconv.StringPtrToPgtype(d.Weight),
		Age:       pgconv.StringPtrToPgtype(d.Age),
		Chip:      pgconv.StringPtrToPgtype(d.Chip),
		BirthDate: birthDate,
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}
}
