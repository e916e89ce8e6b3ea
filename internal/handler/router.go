package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/handler/api"
	"internship-checkout/internal/handler/middleware"
	"internship-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout *api.CheckoutHandler
	Support  *api.SupportHandler
}

type Middlewares struct {
	Logging     *middleware.Logger
	Auth        *middleware.AuthMiddleware
	CouponLimit *middleware.CouponRateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, reg *prometheus.Registry, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, reg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logging.RequestLogger())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reg *prometheus.Registry, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "/config", Handler: h.Checkout.Config},
			})

			variant := checkout.Group("/:variant")
			variant.Use(mw.Auth.RequireAuth())
			addRoutes(variant, []route{
				{Method: http.MethodPost, Path: "/coupons/apply", Handler: h.Checkout.ApplyCoupon, Mw: []gin.HandlerFunc{mw.CouponLimit.Handler()}},
				{Method: http.MethodPost, Path: "/applications", Handler: h.Checkout.SubmitApplication},
				{Method: http.MethodGet, Path: "/applications/:internshipId", Handler: h.Checkout.GetApplication},
				{Method: http.MethodPost, Path: "/applications/:internshipId/resume", Handler: h.Checkout.ResumeCheckout},
				{Method: http.MethodPost, Path: "/applications/:internshipId/payment", Handler: h.Checkout.CompletePayment},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Checkout.Dashboard},
				{Method: http.MethodPost, Path: "/dashboard/refresh", Handler: h.Checkout.RefreshDashboard},
			})
		}

		support := apiGroup.Group("/support")
		support.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRoleAtLeast(session.RoleAdmin))
		{
			addRoutes(support, []route{
				{Method: http.MethodGet, Path: "/verification-failures", Handler: h.Support.VerificationFailures},
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
