package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobportal-api/config"
	"go-jobportal-api/internal/delivery/http/middleware"
	"go-jobportal-api/internal/delivery/http/response"
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/pkg/logger"
	"go-jobportal-api/pkg/validation"
)

type RouterDeps struct {
	ApplicationUC domain.ApplicationUsecase
	Config        *config.Config
	Registry      *prometheus.Registry
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	if deps.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(deps.Registry)
		if err != nil {
			logger.Log.Warn("Prometheus metrics disabled", "error", err)
		} else {
			r.Use(prom.Handler())
			r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
		}
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewApplicationHandler(protected, deps.ApplicationUC, deps.Config.MaxResumeBytes)
	}

	return r
}
