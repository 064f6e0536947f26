package components

import (
	"pet-scheduler/internal/handler"
	"pet-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewAppointmentHandler,
		api.NewCatalogHandler,
		func(s *api.SlotHandler, a *api.AppointmentHandler, c *api.CatalogHandler) handler.Handlers {
			return handler.Handlers{Slots: s, Appointments: a, Catalog: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
