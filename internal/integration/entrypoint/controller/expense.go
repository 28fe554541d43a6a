package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/application/usecase/expense"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	getUseCase    *expense.GetExpenseUseCase
	saveUseCase   *expense.SaveExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	saveUseCase *expense.SaveExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		saveUseCase:   saveUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	filter := valueobject.ResolveListFilter(
		optionalQuery(ctx, "limit"),
		optionalQuery(ctx, "offset"),
		optionalQuery(ctx, "startDate"),
		optionalQuery(ctx, "endDate"),
	)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{Filter: filter})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	c.show(ctx, expense.GetExpenseInput{ExpenseID: &id})
}

// Latest handles GET /expenses/latest requests.
func (c *ExpenseController) Latest(ctx *gin.Context) {
	c.show(ctx, expense.GetExpenseInput{})
}

func (c *ExpenseController) show(ctx *gin.Context, input expense.GetExpenseInput) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.SaveBatchExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	expenses, err := req.ToEntities()
	if err != nil {
		handleError(ctx, err)
		return
	}

	if _, err := c.saveUseCase.Execute(ctx.Request.Context(), expense.SaveExpensesInput{Expenses: expenses}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.SaveExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payload, err := req.ToEntity()
	if err != nil {
		handleError(ctx, err)
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{ExpenseID: id, Expense: payload}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ExpenseID: id}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
