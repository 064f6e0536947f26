package bootstrap

import (
	"context"

	"pet-scheduler/internal/infra/db"
	"pet-scheduler/internal/pkg/config"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const DefaultResourceID int64 = 1

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// VerifyDefaultResource fails startup when resource 1 is missing; requests
// without a resourceId book against it.
func VerifyDefaultResource(lc fx.Lifecycle, resources queries.ResourceReadStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := resources.FindByID(ctx, DefaultResourceID); err != nil {
				return errs.Wrap(err, "default resource 1 not found, run migrations first")
			}
			return nil
		},
	})
}
