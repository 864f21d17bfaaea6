package components

import (
	"vouch-backend/internal/handler"
	"vouch-backend/internal/handler/api"
	"vouch-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVouchHandler,
		api.NewRewardHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
