package handlers

import (
	"lawncare/internal/logger"
	"lawncare/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Per-timer status stream (HTTP upgrade) on the same port
	router.GET("/ws/timers/:id", h.wsTimer)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerTimingRoutes(api)
		h.registerTimerRoutes(api)
		h.registerCrabgrassRoutes(api)
		h.registerSupportRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerTimingRoutes(api *gin.RouterGroup) {
	timing := api.Group("/timing")
	{
		timing.GET("/window", h.getWindow)
		timing.GET("/optimal", h.getOptimal)
		timing.GET("/next-window", h.getNextWindow)
		timing.GET("/schedule", h.getSchedule)
		timing.GET("/month/:month", h.getMonthActivities)
	}
}

func (h *Handler) registerTimerRoutes(api *gin.RouterGroup) {
	timers := api.Group("/timers")
	{
		timers.POST("", h.createTimer)
		timers.GET("/:id", h.getTimer)
		timers.POST("/:id/start", h.startTimer)
		timers.POST("/:id/pause", h.pauseTimer)
		timers.POST("/:id/resume", h.resumeTimer)
		timers.POST("/:id/reset", h.resetTimer)
	}
}

func (h *Handler) registerCrabgrassRoutes(api *gin.RouterGroup) {
	cg := api.Group("/crabgrass")
	{
		cg.GET("/guide", h.getGuide)
		cg.POST("/identify", h.identify)
		cg.GET("/treatments", h.getTreatments)
		cg.GET("/lifecycle", h.getLifecycle)
		cg.GET("/prevention", h.getPrevention)
		cg.GET("/calendar", h.getCalendar)
		cg.POST("/diagnose", h.diagnose)
	}
}

func (h *Handler) registerSupportRoutes(api *gin.RouterGroup) {
	support := api.Group("/support")
	{
		support.POST("/requests", h.submitRequest)
		support.GET("/requests", h.listRequests)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
