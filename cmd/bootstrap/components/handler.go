package components

import (
	"playroom-booking/internal/handler"
	"playroom-booking/internal/handler/api"
	"playroom-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewPromoHandler,
		api.NewRewardHandler,
		api.NewCheckoutHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Draft    *api.DraftHandler
	Promo    *api.PromoHandler
	Reward   *api.RewardHandler
	Checkout *api.CheckoutHandler
	Catalog  *api.CatalogHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Draft:    p.Draft,
		Promo:    p.Promo,
		Reward:   p.Reward,
		Checkout: p.Checkout,
		Catalog:  p.Catalog,
	}
}
