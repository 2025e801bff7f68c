package server

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lokesh-patil57/smart-itr-api/docs" // swag-generated docs
	"github.com/lokesh-patil57/smart-itr-api/internal/handlers"
	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/services"
)

// Handler Definitions
var (
	taxHandler    *handlers.TaxHandler
	formHandler   *handlers.FormHandler
	healthHandler *handlers.HealthHandler
)

// InitializeHandlers loads the rule tables and wires the service graph. The
// embedded tables are part of the binary, so a load failure is fatal.
func InitializeHandlers() {
	registry := rules.MustLoad()

	classifierService := services.NewClassifierService(registry)
	taxEngineService := services.NewTaxEngineService(registry)
	recommendationService := services.NewRecommendationService(registry, taxEngineService)
	formCatalogService := services.NewFormCatalogService()

	commonServices := handlers.NewCommonServices(
		classifierService,
		taxEngineService,
		recommendationService,
		formCatalogService,
		registry,
	)

	taxHandler = handlers.NewTaxHandler(commonServices)
	formHandler = handlers.NewFormHandler(commonServices)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware and the API surface on the router.
func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())
	router.Use(handlers.RequestID())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.Health)

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		tax := v1.Group("/tax")
		{
			tax.POST("/classify", taxHandler.ClassifyForm)
			tax.POST("/compute", taxHandler.ComputeTax)
			tax.POST("/recommendations", taxHandler.RecommendSavings)
			tax.GET("/years", taxHandler.ListAssessmentYears)
		}

		forms := v1.Group("/forms")
		{
			forms.GET("", formHandler.ListForms)
			forms.GET("/:form_id", formHandler.GetForm)
		}
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Allow credentials when explicitly enabled
	if credentials, err := strconv.ParseBool(os.Getenv("CORS_ALLOW_CREDENTIALS")); err == nil {
		corsConfig.AllowCredentials = credentials
	}

	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}

// NewRouter builds a fully wired engine, used by main and by tests that
// exercise the whole HTTP surface.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	InitializeHandlers()
	InitializeRoutes(router)
	return router
}
