package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"driveshare/internal/domain/user"
	"driveshare/internal/handler/api"
	"driveshare/internal/handler/middleware"
	"driveshare/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	vehicleHandler *api.VehicleHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	presenceHandler *api.PresenceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, vehicleHandler, reservationHandler, reviewHandler, presenceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	vehicleHandler *api.VehicleHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	presenceHandler *api.PresenceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "", Handler: vehicleHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: vehicleHandler.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: vehicleHandler.Availability},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: vehicleHandler.Calendar},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListByVehicle},
				{Method: http.MethodGet, Path: "/:id/presence", Handler: presenceHandler.Viewers},
			})

			ownerRequired := vehicles.Group("")
			ownerRequired.Use(authMiddleware.RequireAuth())
			addRoutes(ownerRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: vehicleHandler.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodPut, Path: "/:id", Handler: vehicleHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: vehicleHandler.Archive, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: vehicleHandler.Reservations},
				{Method: http.MethodPost, Path: "/:id/presence", Handler: presenceHandler.Heartbeat},
				{Method: http.MethodDelete, Path: "/:id/presence", Handler: presenceHandler.Leave},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: reservationHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: reservationHandler.Decline},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: reservationHandler.Complete},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: reviewHandler.Create},
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
