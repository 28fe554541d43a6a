package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/bookkeeper/internal/application/usecase/wallet"
	"github.com/finance-tracker/bookkeeper/internal/domain/valueobject"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

// WalletController handles wallet endpoints.
type WalletController struct {
	listUseCase     *wallet.ListWalletsUseCase
	transferUseCase *wallet.TransferUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(listUseCase *wallet.ListWalletsUseCase, transferUseCase *wallet.TransferUseCase) *WalletController {
	return &WalletController{
		listUseCase:     listUseCase,
		transferUseCase: transferUseCase,
	}
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	pagination := valueobject.ResolvePagination(optionalQuery(ctx, "limit"), optionalQuery(ctx, "offset"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), wallet.ListWalletsInput{Pagination: pagination})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output.Wallets))
}

// Transfer handles POST /wallets/transfer requests.
func (c *WalletController) Transfer(ctx *gin.Context) {
	var req dto.SaveTransferRequest
	if !bindJSON(ctx, &req) {
		return
	}

	transfer, fee, err := req.ToEntity()
	if err != nil {
		handleError(ctx, err)
		return
	}

	if _, err := c.transferUseCase.Execute(ctx.Request.Context(), wallet.TransferInput{Transfer: transfer, Fee: fee}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}
