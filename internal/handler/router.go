package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopfront/internal/handler/api"
	"shopfront/internal/handler/middleware"
	"shopfront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	productHandler *api.ProductHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, productHandler, cartHandler, checkoutHandler, orderHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Provider deliveries authenticate by signature, not bearer token
	engine.POST("/webhooks/payment", webhookHandler.HandleEvent)

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.GetProduct},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.GetCart},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodPut, Path: "/items/:productId", Handler: cartHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: cartHandler.RemoveItem},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/session", Handler: checkoutHandler.CreateSession},
				{Method: http.MethodGet, Path: "/flow", Handler: checkoutHandler.GetFlow},
				{Method: http.MethodPost, Path: "/flow/advance", Handler: checkoutHandler.AdvanceFlow},
				{Method: http.MethodPost, Path: "/flow/back", Handler: checkoutHandler.BackFlow},
				{Method: http.MethodPost, Path: "/postal-lookup", Handler: checkoutHandler.LookupPostalCode},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPut, Path: "/:id/status", Handler: orderHandler.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
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
