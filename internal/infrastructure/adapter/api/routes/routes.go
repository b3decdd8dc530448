package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/points-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the ops API
func SetupRoutes(
	router *gin.Engine,
	healthHandler *handler.HealthHandler,
	accountHandler *handler.AccountHandler,
) {
	router.GET("/health", healthHandler.Health)

	accountRoutes := router.Group("/accounts")
	{
		accountRoutes.GET("", accountHandler.ListAccounts)
		accountRoutes.GET("/:userId", accountHandler.GetAccount)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, clock coreport.TimeProvider) {
	// The request logger sits outside recovery so panics are logged as 500s
	router.Use(middleware.Logger(logger, clock))
	router.Use(middleware.ErrorHandler(logger))
}

// NewRouter builds the ops API engine with middlewares and routes attached
func NewRouter(
	logger coreport.Logger,
	clock coreport.TimeProvider,
	healthHandler *handler.HealthHandler,
	accountHandler *handler.AccountHandler,
) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, clock)
	SetupRoutes(router, healthHandler, accountHandler)
	return router
}
