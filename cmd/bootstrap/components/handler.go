package components

import (
	"barber-booking/internal/handler"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewTestimonialHandler,
		api.NewNotificationHandler,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
