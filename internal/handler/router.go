package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-api/internal/handler/api"
	"restaurant-api/internal/handler/middleware"
	"restaurant-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Menu    *api.MenuHandler
	Booking *api.BookingHandler
}

func NewHandlers(auth *api.AuthHandler, menu *api.MenuHandler, booking *api.BookingHandler) Handlers {
	return Handlers{Auth: auth, Menu: menu, Booking: booking}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NoRoute())
	engine.NoMethod(middleware.NoMethod())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	throttle := limiter.Limit()

	menu := engine.Group("/menu")
	{
		addRoutes(menu, []route{
			{Method: http.MethodGet, Path: "/", Handler: h.Menu.List},
			{Method: http.MethodGet, Path: "/:id/", Handler: h.Menu.Get},
			{Method: http.MethodPost, Path: "/", Handler: h.Menu.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id/", Handler: h.Menu.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/:id/", Handler: h.Menu.Patch, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id/", Handler: h.Menu.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})
	}

	booking := engine.Group("/booking")
	booking.Use(requireAuth)
	{
		addRoutes(booking, []route{
			{Method: http.MethodGet, Path: "/", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "/", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:id/", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/:id/", Handler: h.Booking.Update},
			{Method: http.MethodPatch, Path: "/:id/", Handler: h.Booking.Patch},
			{Method: http.MethodDelete, Path: "/:id/", Handler: h.Booking.Delete},
		})
	}

	auth := engine.Group("/auth")
	{
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/users/", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{throttle}},
			{Method: http.MethodGet, Path: "/users/me/", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/jwt/create/", Handler: h.Auth.CreateToken, Mw: []gin.HandlerFunc{throttle}},
			{Method: http.MethodPost, Path: "/jwt/refresh/", Handler: h.Auth.RefreshToken},
			{Method: http.MethodPost, Path: "/jwt/verify/", Handler: h.Auth.VerifyToken},
		})
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/api-token-auth/", Handler: h.Auth.ObtainAuthToken, Mw: []gin.HandlerFunc{throttle}},
	})
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

// addRoutes registers middleware as separate chain entries so that
// c.Next inside them behaves like group middleware.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
