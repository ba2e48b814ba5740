package components

import (
	"shopfront/internal/handler"
	"shopfront/internal/handler/api"
	"shopfront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
