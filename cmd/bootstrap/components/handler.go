package components

import (
	"ootd-commerce/internal/handler"
	"ootd-commerce/internal/handler/api"
	"ootd-commerce/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		api.NewRatingHandler,
		api.NewSalesHandler,
		api.NewStoreHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Cart    *api.CartHandler
	Order   *api.OrderHandler
	Coupon  *api.CouponHandler
	Rating  *api.RatingHandler
	Sales   *api.SalesHandler
	Store   *api.StoreHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:    p.Auth,
		Catalog: p.Catalog,
		Cart:    p.Cart,
		Order:   p.Order,
		Coupon:  p.Coupon,
		Rating:  p.Rating,
		Sales:   p.Sales,
		Store:   p.Store,
	}
}
