package bootstrap

import (
	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

// ScheduleModule freezes the business window into schedule.Config once at
// startup; a bad window or zone stops the application.
var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		clock.NewRealClock,
		NewScheduleConfig,
		schedule.NewEngine,
		schedule.NewValidator,
		NewTransitionPolicy,
	),
)

func NewScheduleConfig(cfg config.Config) (schedule.Config, error) {
	b := cfg.Business
	return schedule.NewConfig(b.Start, b.End, b.SlotMinutes, b.TimeZone)
}

func NewTransitionPolicy(cfg config.Config) (appointment.TransitionPolicy, error) {
	return appointment.PolicyFromName(cfg.Business.Transitions)
}
