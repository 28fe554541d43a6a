// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeper/config"
	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/expense"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/income"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/lookup"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/summary"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/wallet"
	"github.com/finance-tracker/bookkeeper/internal/infra/server/router"
	"github.com/finance-tracker/bookkeeper/internal/integration/adapters"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/bookkeeper/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	TokenService adapter.TokenService
	Router       *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// gate bounds concurrent storage-bound requests.
func NewInjector(cfg *config.Config, db *gorm.DB, gate middleware.SlotAcquirer) *Injector {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	lookupRepo := persistence.NewLookupRepository(db)
	summaryRepo := persistence.NewSummaryRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	saveExpensesUseCase := expense.NewSaveExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)
	saveIncomesUseCase := income.NewSaveIncomesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create wallet use cases
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	transferUseCase := wallet.NewTransferUseCase(walletRepo, cfg.Ledger.FeeCategoryID)

	// Create lookup use cases
	listCategoriesUseCase := lookup.NewListCategoriesUseCase(lookupRepo)
	listParentCategoriesUseCase := lookup.NewListParentCategoriesUseCase(lookupRepo)
	listTagsUseCase := lookup.NewListTagsUseCase(lookupRepo)

	generateSummaryUseCase := summary.NewGenerateSummaryUseCase(summaryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		return sqlDB.PingContext(ctx)
	})

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		saveExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		getIncomeUseCase,
		saveIncomesUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	walletController := controller.NewWalletController(listWalletsUseCase, transferUseCase)

	lookupController := controller.NewLookupController(
		listCategoriesUseCase,
		listParentCategoriesUseCase,
		listTagsUseCase,
	)

	summaryController := controller.NewSummaryController(generateSummaryUseCase)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		walletController,
		lookupController,
		summaryController,
		authMiddleware,
		gate,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		TokenService: tokenService,
		Router:       r,
	}
}
