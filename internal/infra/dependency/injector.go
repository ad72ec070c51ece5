// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/coinkeeper/backend/config"
	"github.com/coinkeeper/backend/internal/application/usecase/account"
	"github.com/coinkeeper/backend/internal/application/usecase/auth"
	"github.com/coinkeeper/backend/internal/application/usecase/category"
	"github.com/coinkeeper/backend/internal/application/usecase/installment"
	"github.com/coinkeeper/backend/internal/application/usecase/notification"
	"github.com/coinkeeper/backend/internal/application/usecase/recurring"
	"github.com/coinkeeper/backend/internal/application/usecase/subscription"
	"github.com/coinkeeper/backend/internal/application/usecase/transaction"
	"github.com/coinkeeper/backend/internal/application/usecase/user"
	"github.com/coinkeeper/backend/internal/infra/retry"
	"github.com/coinkeeper/backend/internal/infra/server/router"
	"github.com/coinkeeper/backend/internal/integration/adapters"
	"github.com/coinkeeper/backend/internal/integration/ai"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/controller"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/middleware"
	notifier "github.com/coinkeeper/backend/internal/integration/notification"
	"github.com/coinkeeper/backend/internal/integration/persistence"
	"github.com/coinkeeper/backend/internal/jobs"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Router    *router.Router
	Scheduler *jobs.Scheduler
	Metrics   *jobs.MetricsCollector
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	installmentRepo := persistence.NewInstallmentRepository(db)

	// Adapters / services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	googleAuthService := adapters.NewGoogleAuthService()

	aiProvider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to configure ai provider: %w", err)
	}
	aiService := ai.NewService(aiProvider)

	emailSender := notifier.NewResendEmailSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, userRepo)
	pushSender := notifier.NewWebPushSender(cfg.Push.Subscriber, cfg.Push.VAPIDPublicKey, cfg.Push.VAPIDPrivateKey, userRepo)

	// Auth and user use cases
	authenticateUseCase := auth.NewAuthenticateUserUseCase(googleAuthService, userRepo, tokenService)
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	registerPushUseCase := user.NewRegisterPushSubscriptionUseCase(userRepo)

	// Account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, transactionRepo)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, accountRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	generateTransactionUseCase := transaction.NewGenerateTransactionUseCase(aiService)

	// Subscription use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo)
	updateSubscriptionUseCase := subscription.NewUpdateSubscriptionUseCase(subscriptionRepo, transactionRepo)
	deleteSubscriptionUseCase := subscription.NewDeleteSubscriptionUseCase(subscriptionRepo, transactionRepo)

	// Installment use cases
	listInstallmentsUseCase := installment.NewListInstallmentsUseCase(installmentRepo)
	createInstallmentUseCase := installment.NewCreateInstallmentUseCase(installmentRepo)
	updateInstallmentUseCase := installment.NewUpdateInstallmentUseCase(installmentRepo)
	deleteInstallmentUseCase := installment.NewDeleteInstallmentUseCase(installmentRepo, transactionRepo)

	// Background jobs
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	metrics := jobs.NewMetricsCollector()
	retryOpts := retry.DefaultOptions()

	projectSubscriptionsUseCase := recurring.NewProjectSubscriptionsUseCase(transactionRepo, subscriptionRepo)
	projectInstallmentsUseCase := recurring.NewProjectInstallmentsUseCase(installmentRepo, transactionRepo)
	notifyUpcomingPaymentsUseCase := notification.NewNotifyUpcomingPaymentsUseCase(transactionRepo, emailSender, pushSender)
	listUpcomingPaymentsUseCase := notification.NewListUpcomingPaymentsUseCase(transactionRepo)

	recurringJob := jobs.NewUpdateRecurringTransactionsJob(
		projectSubscriptionsUseCase,
		projectInstallmentsUseCase,
		userRepo,
		metrics,
		retryOpts,
	)
	remindersJob := jobs.NewSendPaymentRemindersJob(notifyUpcomingPaymentsUseCase, metrics, retryOpts)

	runLock := jobs.NewRunLock(redisClient, cfg.Jobs.LockTTL)
	scheduler := jobs.NewScheduler(runLock)
	scheduler.Register(jobs.UpdateRecurringTransactionsJobName, cfg.Jobs.RecurringHourUTC, cfg.Jobs.RunOnStart, recurringJob)
	scheduler.Register(jobs.SendPaymentRemindersJobName, cfg.Jobs.ReminderHourUTC, false, remindersJob)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(authenticateUseCase)
	userController := controller.NewUserController(getProfileUseCase, registerPushUseCase)
	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		generateTransactionUseCase,
	)
	subscriptionController := controller.NewSubscriptionController(
		listSubscriptionsUseCase,
		createSubscriptionUseCase,
		updateSubscriptionUseCase,
		deleteSubscriptionUseCase,
	)
	installmentController := controller.NewInstallmentController(
		listInstallmentsUseCase,
		createInstallmentUseCase,
		updateInstallmentUseCase,
		deleteInstallmentUseCase,
	)
	notificationController := controller.NewNotificationController(listUpcomingPaymentsUseCase)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var signInRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		signInRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		signInRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		accountController,
		categoryController,
		transactionController,
		subscriptionController,
		installmentController,
		notificationController,
		signInRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Router:    r,
		Scheduler: scheduler,
		Metrics:   metrics,
	}, nil
}
