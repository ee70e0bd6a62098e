package components

import (
	"toolshed/internal/handler"
	"toolshed/internal/handler/api"
	"toolshed/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewToolHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
