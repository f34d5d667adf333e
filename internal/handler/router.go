package handler

import (
	"net/http"

	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/handler/api"
	"ootd-commerce/internal/handler/middleware"
	"ootd-commerce/internal/pkg/config"
	"ootd-commerce/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Cart    *api.CartHandler
	Order   *api.OrderHandler
	Coupon  *api.CouponHandler
	Rating  *api.RatingHandler
	Sales   *api.SalesHandler
	Store   *api.StoreHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.HTTPMetrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireSeller := authMiddleware.RequireRoleAtLeast(user.RoleSeller)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// public catalog; a token only personalizes availability
		public := apiGroup.Group("")
		public.Use(authMiddleware.OptionalAuth())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.GetProduct},
			{Method: http.MethodGet, Path: "/stores/:id/products", Handler: h.Catalog.ListStoreProducts},
			{Method: http.MethodGet, Path: "/snapshots/:id", Handler: h.Catalog.GetSnapshot},
			{Method: http.MethodGet, Path: "/products/:id/ratings", Handler: h.Rating.List},
			{Method: http.MethodGet, Path: "/sales/top-products", Handler: h.Sales.TopProducts},
			{Method: http.MethodGet, Path: "/sales/top-keywords", Handler: h.Sales.TopKeywords},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/stores/:id/products", Handler: h.Catalog.CreateListing, Mw: []gin.HandlerFunc{requireSeller}},
			{Method: http.MethodPut, Path: "/products/:id", Handler: h.Catalog.EditListing, Mw: []gin.HandlerFunc{requireSeller}},

			{Method: http.MethodGet, Path: "/stores/:id/orders", Handler: h.Store.Orders, Mw: []gin.HandlerFunc{requireSeller}},
			{Method: http.MethodGet, Path: "/stores/:id/sales", Handler: h.Store.Sales, Mw: []gin.HandlerFunc{requireSeller}},
			{Method: http.MethodGet, Path: "/stores/:id/ratings", Handler: h.Store.Ratings, Mw: []gin.HandlerFunc{requireSeller}},

			{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.List},
			{Method: http.MethodPut, Path: "/cart/items", Handler: h.Cart.Upsert},
			{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.Add},
			{Method: http.MethodDelete, Path: "/cart/items", Handler: h.Cart.Remove},

			{Method: http.MethodPost, Path: "/orders", Handler: h.Order.PlaceOrder},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListOrders},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.GetOrder},

			{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.ListUserCoupons},
			{Method: http.MethodGet, Path: "/coupons/:id/balance", Handler: h.Coupon.GetBalance},

			{Method: http.MethodPost, Path: "/products/:id/ratings", Handler: h.Rating.Submit},
			{Method: http.MethodGet, Path: "/products/:id/ratings/eligibility", Handler: h.Rating.Eligibility},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.ListCoupons},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.CreateCoupon},
				{Method: http.MethodGet, Path: "/coupons/:id", Handler: h.Coupon.GetCoupon},
				{Method: http.MethodPut, Path: "/coupons/:id", Handler: h.Coupon.UpdateCoupon},
				{Method: http.MethodPost, Path: "/coupons/:id/grants", Handler: h.Coupon.Grant},
				{Method: http.MethodPost, Path: "/coupons/:id/grants/all", Handler: h.Coupon.GrantToAll},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
