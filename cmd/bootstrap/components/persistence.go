package components

import (
	"pet-scheduler/internal/infra/outbox"
	"pet-scheduler/internal/infra/readstore"
	"pet-scheduler/internal/infra/repository"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/infra/uow"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		NewTxBeginner,
		fx.As(new(shared.TxBeginner)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Appointment
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
			fx.As(new(queries.IntervalReadStore)),
		),
		// Service
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Resource
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		// Pet
		fx.Annotate(
			readstore.NewPetReadStore,
			fx.As(new(queries.PetReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Idempotency cleanup runs outside any request transaction
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(outbox.ExpiredKeyStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(outbox.JobStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
