package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careers-portal/internal/jobs"
	"careers-portal/internal/payments"
	"careers-portal/internal/shared/config"
	"careers-portal/internal/shared/server/middleware"
	"careers-portal/internal/shared/server/respond"
	"careers-portal/internal/tracker"
	"careers-portal/internal/wizard"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	WizardHandler   *wizard.Handler
	TrackerHandler  *tracker.Handler
	JobsHandler     *jobs.Handler
	PaymentsHandler *payments.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	limiter := middleware.NewRateLimiter(nil)
	submitLimit := middleware.RateLimit(limiter, "submit",
		middleware.PerMinute(deps.Config.SubmitRatePerMin))
	lookupLimit := middleware.RateLimit(limiter, "lookup",
		middleware.PerMinute(deps.Config.LookupRatePerMin))

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.WizardHandler != nil {
		deps.WizardHandler.RegisterRoutes(api, submitLimit)
	}
	if deps.TrackerHandler != nil {
		tracked := api.Group("", lookupLimit)
		deps.TrackerHandler.RegisterRoutes(tracked)
	}
	if deps.PaymentsHandler != nil {
		deps.PaymentsHandler.RegisterRoutes(api, lookupLimit)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
