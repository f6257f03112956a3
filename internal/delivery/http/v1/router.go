package v1

import (
	"net/http"
	"time"

	"realestate-form-intake/config"
	"realestate-form-intake/internal/delivery/http/middleware"
	"realestate-form-intake/internal/delivery/http/response"
	"realestate-form-intake/internal/domain"
	"realestate-form-intake/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
	Gatherer  prometheus.Gatherer
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", healthHandler(deps.HealthUC))

	// Public routes
	NewContactHandler(r, deps.ContactUC, time.Duration(deps.Config.RequestTimeoutSeconds)*time.Second)

	// Operations
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// healthHandler godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthHandler(healthUC domain.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := healthUC.Check(c.Request.Context())
		if err != nil {
			_ = c.Error(apperror.Unavailable("Record store unavailable", err))
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	}
}
