// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/config"
	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/application/usecase/budget"
	"github.com/finance-tracker/signals/internal/application/usecase/category"
	creditcard "github.com/finance-tracker/signals/internal/application/usecase/credit_card"
	"github.com/finance-tracker/signals/internal/application/usecase/entry"
	"github.com/finance-tracker/signals/internal/application/usecase/investment"
	"github.com/finance-tracker/signals/internal/application/usecase/rollup"
	"github.com/finance-tracker/signals/internal/application/usecase/signal"
	"github.com/finance-tracker/signals/internal/infra/server/router"
	"github.com/finance-tracker/signals/internal/integration/adapters"
	"github.com/finance-tracker/signals/internal/integration/cache"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/signals/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/signals/internal/integration/persistence"
)

// Options carries the runtime collaborators the injector does not build itself.
type Options struct {
	// Redis is the dismissal store backend. Nil selects the in-memory store.
	Redis *redis.Client
	// Clock defaults to the system clock.
	Clock adapter.Clock
	// DBHealthChecker and CacheHealthChecker feed the health endpoint.
	DBHealthChecker    func() bool
	CacheHealthChecker func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Router            *router.Router
	SignalRateLimiter *middleware.RateLimiter
	BoardSessions     *signal.BoardSessions
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	location, err := time.LoadLocation(cfg.Signals.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Signals.Location, err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	creditCardRepo := persistence.NewCreditCardRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	entryRepo := persistence.NewEntryRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	var dismissals adapter.DismissalStore
	if opts.Redis != nil {
		dismissals = cache.NewRedisDismissalStore(opts.Redis, cache.DefaultDismissalTTL)
	} else {
		slog.Warn("Redis disabled, alert dismissals are kept in memory")
		dismissals = cache.NewMemoryDismissalStore()
	}

	// Create rollup use cases
	rollupOpts := rollup.Options{
		Location:       location,
		DueWindowDays:  cfg.Signals.DueWindowDays,
		BaselineMonths: cfg.Signals.TrendBaselineMonths,
	}
	budgetAlertsUseCase := rollup.NewGetBudgetAlertsUseCase(budgetRepo, entryRepo)
	dueDateAlertsUseCase := rollup.NewGetDueDateAlertsUseCase(entryRepo, clock, rollupOpts)
	trendsUseCase := rollup.NewGetTrendsUseCase(entryRepo, rollupOpts)
	rollupReportUseCase := rollup.NewGetCategoryReportUseCase(budgetRepo, entryRepo)

	// Select where the signal evaluator reads rollups from
	var source adapter.RollupSource
	switch cfg.Signals.Source {
	case config.SourceUpstream:
		source = adapters.NewUpstreamRollupClient(cfg.Signals.UpstreamURL, cfg.Signals.UpstreamTimeout, tokenService)
	case config.SourceDatabase:
		source = rollup.NewSource(budgetAlertsUseCase, dueDateAlertsUseCase, trendsUseCase, rollupReportUseCase)
	default:
		return nil, fmt.Errorf("unknown rollup source %q", cfg.Signals.Source)
	}
	slog.Info("Rollup source selected", "source", cfg.Signals.Source)

	// Create signal use cases
	sessions := signal.NewBoardSessions(source)
	alertBoardUseCase := signal.NewGetAlertBoardUseCase(sessions, dismissals)
	dismissAlertUseCase := signal.NewDismissAlertUseCase(dismissals)
	trendSummaryUseCase := signal.NewGetTrendSummaryUseCase(source)
	categoryReportUseCase := signal.NewGetCategoryReportUseCase(source)

	// Create controllers
	periods := controller.NewPeriodResolver(clock, location)

	healthController := controller.NewHealthController(opts.DBHealthChecker, opts.CacheHealthChecker, cfg.Signals.Source)

	signalController := controller.NewSignalController(
		periods,
		alertBoardUseCase,
		dismissAlertUseCase,
		trendSummaryUseCase,
		categoryReportUseCase,
	)

	rollupController := controller.NewRollupController(
		periods,
		budgetAlertsUseCase,
		dueDateAlertsUseCase,
		trendsUseCase,
		rollupReportUseCase,
	)

	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewUpdateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
	)

	creditCardController := controller.NewCreditCardController(
		creditcard.NewListCreditCardsUseCase(creditCardRepo),
		creditcard.NewCreateCreditCardUseCase(creditCardRepo),
		creditcard.NewUpdateCreditCardUseCase(creditCardRepo),
		creditcard.NewDeleteCreditCardUseCase(creditCardRepo),
	)

	investmentController := controller.NewInvestmentController(
		periods,
		investment.NewListInvestmentsUseCase(investmentRepo),
		investment.NewCreateInvestmentUseCase(investmentRepo, categoryRepo),
		investment.NewUpdateInvestmentUseCase(investmentRepo, categoryRepo),
		investment.NewDeleteInvestmentUseCase(investmentRepo),
	)

	budgetController := controller.NewBudgetController(
		periods,
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo),
		budget.NewDeleteBudgetUseCase(budgetRepo),
	)

	entryController := controller.NewEntryController(
		periods,
		entry.NewListEntriesUseCase(entryRepo),
		entry.NewCreateEntryUseCase(entryRepo, categoryRepo),
		entry.NewPayEntryUseCase(entryRepo, clock),
		entry.NewDeleteEntryUseCase(entryRepo),
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var signalRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		signalRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		signalRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		signalController,
		rollupController,
		categoryController,
		creditCardController,
		investmentController,
		budgetController,
		entryController,
		signalRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		SignalRateLimiter: signalRateLimiter,
		BoardSessions:     sessions,
	}, nil
}
