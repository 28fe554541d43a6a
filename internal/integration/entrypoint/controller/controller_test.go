package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/application/usecase/expense"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/lookup"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/summary"
	"github.com/finance-tracker/bookkeeper/internal/application/usecase/wallet"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeExpenseRepository struct {
	err        error
	lastFilter valueobject.ListFilter
	inserted   []entity.SaveExpense
	detail     *entity.ExpenseDetail
}

func (f *fakeExpenseRepository) FindAll(_ context.Context, filter valueobject.ListFilter) ([]*entity.ExpenseListItem, error) {
	f.lastFilter = filter
	return []*entity.ExpenseListItem{}, f.err
}

func (f *fakeExpenseRepository) FindOne(_ context.Context, _ int64) (*entity.ExpenseDetail, error) {
	return f.detail, f.err
}

func (f *fakeExpenseRepository) FindLatest(_ context.Context) (*entity.ExpenseDetail, error) {
	return f.detail, f.err
}

func (f *fakeExpenseRepository) InsertBulk(_ context.Context, expenses []entity.SaveExpense) error {
	f.inserted = expenses
	return f.err
}

func (f *fakeExpenseRepository) Update(_ context.Context, _ int64, _ entity.SaveExpense) error {
	return f.err
}

func (f *fakeExpenseRepository) Delete(_ context.Context, _ int64) error {
	return f.err
}

func expenseRouter(repo *fakeExpenseRepository) *gin.Engine {
	c := NewExpenseController(
		expense.NewListExpensesUseCase(repo),
		expense.NewGetExpenseUseCase(repo),
		expense.NewSaveExpensesUseCase(repo),
		expense.NewUpdateExpenseUseCase(repo),
		expense.NewDeleteExpenseUseCase(repo),
	)
	router := gin.New()
	router.GET("/expenses", c.List)
	router.POST("/expenses", c.Create)
	router.GET("/expenses/latest", c.Latest)
	router.GET("/expenses/:id", c.Get)
	router.PUT("/expenses/:id", c.Update)
	router.DELETE("/expenses/:id", c.Delete)
	return router
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validExpense = `{"amount":100,"date":"2025-05-06","priority":1,"categoryId":1,"walletId":1,"tagIds":[1]}`

func TestExpenseControllerStatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		repoErr        error
		expectedStatus int
		expectedCode   domainerror.LedgerErrorCode
	}{
		{name: "list", method: http.MethodGet, target: "/expenses", expectedStatus: http.StatusOK},
		{name: "create", method: http.MethodPost, target: "/expenses", body: `{"expenses":[` + validExpense + `]}`, expectedStatus: http.StatusCreated},
		{name: "create empty batch", method: http.MethodPost, target: "/expenses", body: `{"expenses":[]}`, expectedStatus: http.StatusBadRequest, expectedCode: domainerror.ErrCodeEmptyBatch},
		{name: "create malformed json", method: http.MethodPost, target: "/expenses", body: `{"expenses":`, expectedStatus: http.StatusBadRequest, expectedCode: domainerror.ErrCodeInvalidBody},
		{name: "create bad date", method: http.MethodPost, target: "/expenses", body: `{"expenses":[{"amount":1,"date":"06/05/2025","priority":1,"categoryId":1,"walletId":1,"tagIds":[]}]}`, expectedStatus: http.StatusBadRequest, expectedCode: domainerror.ErrCodeInvalidDate},
		{name: "create conflict", method: http.MethodPost, target: "/expenses", body: `{"expenses":[` + validExpense + `]}`, repoErr: domainerror.ErrConflict, expectedStatus: http.StatusConflict},
		{name: "get not found", method: http.MethodGet, target: "/expenses/9", repoErr: domainerror.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "get bad id", method: http.MethodGet, target: "/expenses/abc", expectedStatus: http.StatusBadRequest, expectedCode: domainerror.ErrCodeInvalidPathID},
		{name: "update", method: http.MethodPut, target: "/expenses/1", body: validExpense, expectedStatus: http.StatusNoContent},
		{name: "update not found", method: http.MethodPut, target: "/expenses/1", body: validExpense, repoErr: domainerror.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "delete", method: http.MethodDelete, target: "/expenses/1", expectedStatus: http.StatusNoContent},
		{name: "delete negative id", method: http.MethodDelete, target: "/expenses/-1", expectedStatus: http.StatusBadRequest},
		{name: "internal", method: http.MethodGet, target: "/expenses", repoErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeExpenseRepository{err: tt.repoErr, detail: &entity.ExpenseDetail{ID: 9, Tags: []entity.Tag{}}}
			rec := serve(expenseRouter(repo), tt.method, tt.target, tt.body)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.expectedStatus, rec.Body.String())
			}
			if tt.expectedCode != "" {
				var response dto.ErrorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if response.Code != string(tt.expectedCode) {
					t.Errorf("code = %s, want %s", response.Code, tt.expectedCode)
				}
			}
		})
	}
}

func TestExpenseControllerListClampsQuery(t *testing.T) {
	repo := &fakeExpenseRepository{}
	rec := serve(expenseRouter(repo), http.MethodGet, "/expenses?limit=500&offset=-3&startDate=nope&endDate=2025-05-31", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if repo.lastFilter.Limit != valueobject.MaxPaginationLimit || repo.lastFilter.Offset != 0 {
		t.Errorf("pagination = %+v", repo.lastFilter.Pagination)
	}
	if repo.lastFilter.StartDate != nil {
		t.Errorf("StartDate = %v, want nil", repo.lastFilter.StartDate)
	}
	if repo.lastFilter.EndDate == nil || valueobject.FormatDate(*repo.lastFilter.EndDate) != "2025-05-31" {
		t.Errorf("EndDate = %v", repo.lastFilter.EndDate)
	}
	if rec.Body.String() != `{"expenses":[]}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestExpenseControllerLatestRoute(t *testing.T) {
	repo := &fakeExpenseRepository{detail: &entity.ExpenseDetail{ID: 9, Tags: []entity.Tag{}}}
	rec := serve(expenseRouter(repo), http.MethodGet, "/expenses/latest", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var response dto.ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.ID != 9 {
		t.Errorf("ID = %d, want 9", response.ID)
	}
}

type fakeWalletRepository struct {
	fee *entity.TransferFee
}

func (f *fakeWalletRepository) FindMany(_ context.Context, _ valueobject.Pagination) ([]*entity.SimpleEntity, error) {
	return []*entity.SimpleEntity{{ID: 1, Name: "Cash"}}, nil
}

func (f *fakeWalletRepository) InsertTransferWithFee(_ context.Context, _ entity.WalletTransfer, fee *entity.TransferFee) error {
	f.fee = fee
	return nil
}

func TestWalletControllerTransfer(t *testing.T) {
	repo := &fakeWalletRepository{}
	c := NewWalletController(wallet.NewListWalletsUseCase(repo), wallet.NewTransferUseCase(repo, 1))
	router := gin.New()
	router.GET("/wallets", c.List)
	router.POST("/wallets/transfer", c.Transfer)

	rec := serve(router, http.MethodPost, "/wallets/transfer",
		`{"sourceWalletId":1,"targetWalletId":2,"amount":100,"fee":10,"date":"2025-05-06"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if repo.fee == nil || repo.fee.Amount != 10 || repo.fee.Priority != entity.PriorityLow {
		t.Errorf("fee = %+v", repo.fee)
	}

	rec = serve(router, http.MethodGet, "/wallets", "")
	if rec.Body.String() != `{"wallets":[{"id":1,"name":"Cash"}]}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

type fakeLookupRepository struct {
	important *bool
}

func (f *fakeLookupRepository) FindManyCategories(_ context.Context, _ valueobject.Pagination) ([]*entity.SimpleEntity, error) {
	return nil, nil
}

func (f *fakeLookupRepository) FindManyParentCategories(_ context.Context, _ valueobject.Pagination) ([]*entity.ParentCategory, error) {
	return nil, nil
}

func (f *fakeLookupRepository) FindManyTags(_ context.Context, important *bool, _ valueobject.Pagination) ([]*entity.Tag, error) {
	f.important = important
	return nil, nil
}

func TestLookupControllerTagsFilter(t *testing.T) {
	tests := []struct {
		query    string
		expected *bool
	}{
		{query: "", expected: nil},
		{query: "?markImportantValue=true", expected: boolPtr(true)},
		{query: "?markImportantValue=false", expected: boolPtr(false)},
		{query: "?markImportantValue=maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			repo := &fakeLookupRepository{}
			c := NewLookupController(
				lookup.NewListCategoriesUseCase(repo),
				lookup.NewListParentCategoriesUseCase(repo),
				lookup.NewListTagsUseCase(repo),
			)
			router := gin.New()
			router.GET("/tags", c.Tags)
			router.GET("/categories", c.Categories)

			rec := serve(router, http.MethodGet, "/tags"+tt.query, "")
			if rec.Code != http.StatusOK || rec.Body.String() != `{"tags":[]}` {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			switch {
			case tt.expected == nil && repo.important != nil:
				t.Errorf("important = %v, want nil", *repo.important)
			case tt.expected != nil && (repo.important == nil || *repo.important != *tt.expected):
				t.Errorf("important = %v, want %v", repo.important, *tt.expected)
			}

			rec = serve(router, http.MethodGet, "/categories", "")
			if rec.Body.String() != `{"categories":[]}` {
				t.Errorf("categories body = %s", rec.Body.String())
			}
		})
	}
}

type fakeSummaryRepository struct{}

func (fakeSummaryRepository) Generate(_ context.Context, request entity.SummaryRequest) (*entity.Summary, error) {
	return &entity.Summary{Expense: entity.ExpenseSummary{Amount: int64(len(request.ExcludeCategoryIDs))}}, nil
}

func TestSummaryControllerGenerate(t *testing.T) {
	c := NewSummaryController(summary.NewGenerateSummaryUseCase(fakeSummaryRepository{}))
	router := gin.New()
	router.POST("/summaries/generate/raw", c.Generate)

	rec := serve(router, http.MethodPost, "/summaries/generate/raw",
		`{"startDate":"2025-01-01","endDate":"2025-01-31","excludeCategoryIds":[1,2]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var response dto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Expense.Amount != 2 {
		t.Errorf("Amount = %d, want 2", response.Expense.Amount)
	}

	rec = serve(router, http.MethodPost, "/summaries/generate/raw", `{"startDate":"2025-01-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHealthController(t *testing.T) {
	tests := []struct {
		name           string
		checker        func(context.Context) error
		expectedStatus int
	}{
		{name: "healthy", checker: func(context.Context) error { return nil }, expectedStatus: http.StatusOK},
		{name: "database down", checker: func(context.Context) error { return errors.New("down") }, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthController(tt.checker).Check)

			rec := serve(router, http.MethodGet, "/health", "")
			if rec.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
