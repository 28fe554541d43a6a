package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
)

// SlotAcquirer hands out storage slots. release must be called exactly once.
type SlotAcquirer interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// ConnectionGate admits a request only when a storage slot is free within
// the acquirer's timeout. Otherwise it fails fast with an internal error.
func ConnectionGate(acquirer SlotAcquirer) gin.HandlerFunc {
	return func(c *gin.Context) {
		release, err := acquirer.Acquire(c.Request.Context())
		if err != nil {
			code := domainerror.ErrCodeInternal
			var ledgerErr *domainerror.LedgerError
			if errors.As(err, &ledgerErr) {
				code = ledgerErr.Code
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Storage is unavailable",
				Code:  string(code),
			})
			return
		}
		defer release()

		c.Next()
	}
}
