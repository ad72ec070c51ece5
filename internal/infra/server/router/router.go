// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/coinkeeper/backend/internal/integration/entrypoint/controller"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	accountController      *controller.AccountController
	categoryController     *controller.CategoryController
	transactionController  *controller.TransactionController
	subscriptionController *controller.SubscriptionController
	installmentController  *controller.InstallmentController
	notificationController *controller.NotificationController
	signInRateLimiter      *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	subscriptionController *controller.SubscriptionController,
	installmentController *controller.InstallmentController,
	notificationController *controller.NotificationController,
	signInRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		accountController:      accountController,
		categoryController:     categoryController,
		transactionController:  transactionController,
		subscriptionController: subscriptionController,
		installmentController:  installmentController,
		notificationController: notificationController,
		signInRateLimiter:      signInRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.signInRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/google", r.signInRateLimiter.Middleware(), r.authController.GoogleSignIn)
			}
		}

		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PUT("/me/push-subscription", r.userController.RegisterPushSubscription)
			}
		}

		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/generate", r.transactionController.Generate)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.subscriptionController != nil && r.authMiddleware != nil {
			subscriptions := v1.Group("/subscriptions")
			subscriptions.Use(r.authMiddleware.Authenticate())
			{
				subscriptions.GET("", r.subscriptionController.List)
				subscriptions.POST("", r.subscriptionController.Create)
				subscriptions.PATCH("/:id", r.subscriptionController.Update)
				subscriptions.DELETE("/:id", r.subscriptionController.Delete)
			}
		}

		if r.installmentController != nil && r.authMiddleware != nil {
			installments := v1.Group("/installments")
			installments.Use(r.authMiddleware.Authenticate())
			{
				installments.GET("", r.installmentController.List)
				installments.POST("", r.installmentController.Create)
				installments.PATCH("/:id", r.installmentController.Update)
				installments.DELETE("/:id", r.installmentController.Delete)
			}
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("/upcoming", r.notificationController.ListUpcoming)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
