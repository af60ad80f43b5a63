package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"oceanview-backend/internal/domain/user"
	"oceanview-backend/internal/handler/api"
	"oceanview-backend/internal/handler/middleware"
	"oceanview-backend/internal/pkg/config"
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
	reservationHandler *api.ReservationHandler,
	invoiceHandler *api.InvoiceHandler,
	roomHandler *api.RoomHandler,
	dashboardHandler *api.DashboardHandler,
	contactHandler *api.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, invoiceHandler, roomHandler, dashboardHandler, contactHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	invoiceHandler *api.InvoiceHandler,
	roomHandler *api.RoomHandler,
	dashboardHandler *api.DashboardHandler,
	contactHandler *api.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: authHandler.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: authHandler.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: reservationHandler.CheckAvailability},
			})

			authRequired := reservations.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: reservationHandler.UpdateStatus, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPatch, Path: "/:id/payment-status", Handler: reservationHandler.UpdatePaymentStatus, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.DeleteReservation, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth(), staffOnly)
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "", Handler: invoiceHandler.ListInvoices},
				{Method: http.MethodGet, Path: "/reservation/:reservationId", Handler: invoiceHandler.GetByReservation},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			})

			staffRequired := rooms.Group("")
			staffRequired.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(staffRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom},
				{Method: http.MethodPut, Path: "/:id", Handler: roomHandler.UpdateRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeleteRoom},
			})
		}

		roomTypes := apiGroup.Group("/room-types")
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRoomTypes},
			})

			staffRequired := roomTypes.Group("")
			staffRequired.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(staffRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoomType},
				{Method: http.MethodPut, Path: "/:id", Handler: roomHandler.UpdateRoomType},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeleteRoomType},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth(), staffOnly)
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: dashboardHandler.GetStats},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: contactHandler.SendInquiry},
		})
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
