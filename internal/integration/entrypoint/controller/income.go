package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/application/usecase/income"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	getUseCase    *income.GetIncomeUseCase
	saveUseCase   *income.SaveIncomesUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	getUseCase *income.GetIncomeUseCase,
	saveUseCase *income.SaveIncomesUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		saveUseCase:   saveUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	filter := valueobject.ResolveListFilter(
		optionalQuery(ctx, "limit"),
		optionalQuery(ctx, "offset"),
		optionalQuery(ctx, "startDate"),
		optionalQuery(ctx, "endDate"),
	)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{Filter: filter})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// Get handles GET /incomes/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	c.show(ctx, income.GetIncomeInput{IncomeID: &id})
}

// Latest handles GET /incomes/latest requests.
func (c *IncomeController) Latest(ctx *gin.Context) {
	c.show(ctx, income.GetIncomeInput{})
}

func (c *IncomeController) show(ctx *gin.Context, input income.GetIncomeInput) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.SaveBatchIncomeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	incomes, err := req.ToEntities()
	if err != nil {
		handleError(ctx, err)
		return
	}

	if _, err := c.saveUseCase.Execute(ctx.Request.Context(), income.SaveIncomesInput{Incomes: incomes}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.SaveIncomeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payload, err := req.ToEntity()
	if err != nil {
		handleError(ctx, err)
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{IncomeID: id, Income: payload}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{IncomeID: id}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
