package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appointmenthandler "github.com/medorahq/clinic-api/internal/handler/appointment"
	authhandler "github.com/medorahq/clinic-api/internal/handler/auth"
	billinghandler "github.com/medorahq/clinic-api/internal/handler/billing"
	clinicalhandler "github.com/medorahq/clinic-api/internal/handler/clinical"
	healthhandler "github.com/medorahq/clinic-api/internal/handler/health"
	patienthandler "github.com/medorahq/clinic-api/internal/handler/patient"
	"github.com/medorahq/clinic-api/internal/middleware"
	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/pkg/logger"
	"github.com/medorahq/clinic-api/pkg/metrics"
)

// writePolicy is the authorization table: each create route names the roles
// allowed to invoke it. Reads require authentication only.
var writePolicy = map[string][]string{
	"/api/patients":        {model.RoleAdmin, model.RoleReception, model.RoleDoctor},
	"/api/appointments":    {model.RoleAdmin, model.RoleReception, model.RoleDoctor},
	"/api/notes":           {model.RoleAdmin, model.RoleDoctor},
	"/api/invoices":        {model.RoleAdmin, model.RoleReception},
	"/api/treatment-plans": {model.RoleAdmin, model.RoleDoctor},
	"/api/prescriptions":   {model.RoleAdmin, model.RoleDoctor},
}

// Config carries the router-level knobs.
type Config struct {
	RateLimitRPS     float64
	RateLimitBurst   int
	AllowedOrigins   []string
	MetricsNamespace string
	Registerer       prometheus.Registerer
	Gatherer         prometheus.Gatherer
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.AuthMiddleware
	authH        *authhandler.Handler
	patientH     *patienthandler.Handler
	appointmentH *appointmenthandler.Handler
	clinicalH    *clinicalhandler.Handler
	billingH     *billinghandler.Handler
	healthH      *healthhandler.Handler
	gatherer     prometheus.Gatherer
}

func New(
	log *logger.Logger,
	auth *middleware.AuthMiddleware,
	authH *authhandler.Handler,
	patientH *patienthandler.Handler,
	appointmentH *appointmenthandler.Handler,
	clinicalH *clinicalhandler.Handler,
	billingH *billinghandler.Handler,
	healthH *healthhandler.Handler,
	cfg Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}
	httpMetrics := metrics.NewHTTPMetrics(cfg.MetricsNamespace, cfg.Registerer)

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		httpMetrics.Middleware(),
	)

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", middleware.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		})
		engine.Use(limiter.RateLimit())
	}

	return &Router{
		engine:       engine,
		auth:         auth,
		authH:        authH,
		patientH:     patientH,
		appointmentH: appointmentH,
		clinicalH:    clinicalH,
		billingH:     billingH,
		healthH:      healthH,
		gatherer:     cfg.Gatherer,
	}
}

func (r *Router) Setup() {
	r.engine.GET("/health", r.healthH.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	api := r.engine.Group("/api")
	api.POST("/login", r.authH.Login)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	{
		protected.GET("/me", r.authH.Me)

		protected.GET("/patients", r.patientH.List)
		protected.POST("/patients", r.permit("/api/patients"), r.patientH.Create)

		protected.GET("/appointments", r.appointmentH.List)
		protected.POST("/appointments", r.permit("/api/appointments"), r.appointmentH.Create)

		protected.GET("/notes", r.clinicalH.ListNotes)
		protected.POST("/notes", r.permit("/api/notes"), r.clinicalH.CreateNote)

		protected.GET("/invoices", r.billingH.List)
		protected.POST("/invoices", r.permit("/api/invoices"), r.billingH.Create)
		protected.GET("/invoices/:id/pdf", r.billingH.DownloadPDF)

		protected.GET("/treatment-plans", r.clinicalH.ListTreatmentPlans)
		protected.POST("/treatment-plans", r.permit("/api/treatment-plans"), r.clinicalH.CreateTreatmentPlan)

		protected.GET("/prescriptions", r.clinicalH.ListPrescriptions)
		protected.POST("/prescriptions", r.permit("/api/prescriptions"), r.clinicalH.CreatePrescription)
	}
}

// permit looks the route up in the policy table and applies the generic
// role check.
func (r *Router) permit(route string) gin.HandlerFunc {
	return r.auth.RequireRoles(writePolicy[route]...)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
