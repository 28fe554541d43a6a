package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/application/usecase/summary"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

// SummaryController handles summary endpoints.
type SummaryController struct {
	generateUseCase *summary.GenerateSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(generateUseCase *summary.GenerateSummaryUseCase) *SummaryController {
	return &SummaryController{
		generateUseCase: generateUseCase,
	}
}

// Generate handles POST /summaries/generate/raw requests.
func (c *SummaryController) Generate(ctx *gin.Context) {
	var req dto.GenerateSummaryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input, err := req.ToInput()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}
