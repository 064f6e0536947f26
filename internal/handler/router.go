package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pet-scheduler/internal/handler/api"
	"pet-scheduler/internal/handler/middleware"
	"pet-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slots        *api.SlotHandler
	Appointments *api.AppointmentHandler
	Catalog      *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	jsonBody := []gin.HandlerFunc{middleware.RequireJSON()}

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.GetSlots},
		})

		appointments := apiGroup.Group("/appointments")
		addRoutes(appointments, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Appointments.List},
			{Method: http.MethodPost, Path: "", Handler: h.Appointments.Create, Mw: jsonBody},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Appointments.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointments.ChangeStatus, Mw: jsonBody},
		})

		services := apiGroup.Group("/services")
		addRoutes(services, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService, Mw: jsonBody},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetService},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateService, Mw: jsonBody},
		})

		pets := apiGroup.Group("/pets")
		addRoutes(pets, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListPets},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreatePet, Mw: jsonBody},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetPet},
		})

		resources := apiGroup.Group("/resources")
		addRoutes(resources, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListResources},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateResource, Mw: jsonBody},
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
