package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/middleware"
)

// SetupWalletRoutes configures the routes served by the wallet binary
func SetupWalletRoutes(router *gin.Engine, walletHandler *handler.WalletHandler) {
	walletRoutes := router.Group("/wallet")
	{
		walletRoutes.GET("/balance", walletHandler.GetBalance)

		walletRoutes.POST("/pay", walletHandler.Pay)
		walletRoutes.POST("/receive", walletHandler.Receive)
		walletRoutes.POST("/topup", walletHandler.TopUp)
		walletRoutes.POST("/withdraw", walletHandler.Withdraw)

		walletRoutes.GET("/transactions", walletHandler.ListTransactions)
		walletRoutes.GET("/contacts", walletHandler.ListContacts)
		walletRoutes.DELETE("/contacts/:id", walletHandler.RemoveContact)

		walletRoutes.GET("/sync/status", walletHandler.SyncStatus)
		walletRoutes.POST("/sync", walletHandler.SyncNow)
	}
}

// SetupMirrorRoutes configures the routes served by the mirror binary
func SetupMirrorRoutes(router *gin.Engine, mirrorHandler *handler.MirrorHandler) {
	router.GET("/health", mirrorHandler.Health)
	router.POST("/sync", mirrorHandler.Sync)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
