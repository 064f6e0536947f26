package bootstrap

import (
	"context"

	"pet-scheduler/internal/pkg/config"
	"pet-scheduler/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
