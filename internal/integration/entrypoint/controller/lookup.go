package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/application/usecase/lookup"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

// LookupController handles the category, parent category and tag listings.
type LookupController struct {
	categoriesUseCase       *lookup.ListCategoriesUseCase
	parentCategoriesUseCase *lookup.ListParentCategoriesUseCase
	tagsUseCase             *lookup.ListTagsUseCase
}

// NewLookupController creates a new lookup controller instance.
func NewLookupController(
	categoriesUseCase *lookup.ListCategoriesUseCase,
	parentCategoriesUseCase *lookup.ListParentCategoriesUseCase,
	tagsUseCase *lookup.ListTagsUseCase,
) *LookupController {
	return &LookupController{
		categoriesUseCase:       categoriesUseCase,
		parentCategoriesUseCase: parentCategoriesUseCase,
		tagsUseCase:             tagsUseCase,
	}
}

// Categories handles GET /categories requests.
func (c *LookupController) Categories(ctx *gin.Context) {
	input := lookup.ListCategoriesInput{Pagination: pagination(ctx)}

	output, err := c.categoriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// ParentCategories handles GET /parent-categories requests.
func (c *LookupController) ParentCategories(ctx *gin.Context) {
	input := lookup.ListParentCategoriesInput{Pagination: pagination(ctx)}

	output, err := c.parentCategoriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParentCategoryListResponse(output.ParentCategories))
}

// Tags handles GET /tags requests.
// The optional markImportantValue query filters on importance; anything
// that is not a boolean is ignored.
func (c *LookupController) Tags(ctx *gin.Context) {
	input := lookup.ListTagsInput{
		Important:  valueobject.ResolveBool(optionalQuery(ctx, "markImportantValue")),
		Pagination: pagination(ctx),
	}

	output, err := c.tagsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagListResponse(output.Tags))
}

func pagination(ctx *gin.Context) valueobject.Pagination {
	return valueobject.ResolvePagination(optionalQuery(ctx, "limit"), optionalQuery(ctx, "offset"))
}
