package components

import (
	"oceanview-backend/internal/handler"
	"oceanview-backend/internal/handler/api"
	"oceanview-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewInvoiceHandler,
		api.NewRoomHandler,
		api.NewDashboardHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
