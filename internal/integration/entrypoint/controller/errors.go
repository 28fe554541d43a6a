// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/bookkeeper/internal/domain/error"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/bookkeeper/internal/integration/entrypoint/middleware"
)

// handleError maps a classified error to its HTTP status and logs it once.
func handleError(ctx *gin.Context, err error) {
	status, code := statusForError(err)

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		code = ledgerErr.Code
	}

	attrs := []any{
		"request_id", middleware.GetRequestID(ctx),
		"path", ctx.FullPath(),
		"status", status,
		"error", err,
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
		message = "An internal error occurred"
	} else {
		slog.Debug("request rejected", attrs...)
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

func statusForError(err error) (int, domainerror.LedgerErrorCode) {
	switch {
	case errors.Is(err, domainerror.ErrValidation):
		return http.StatusBadRequest, domainerror.ErrCodeInvalidBody
	case errors.Is(err, domainerror.ErrNotFound):
		return http.StatusNotFound, domainerror.ErrCodeNotFound
	case errors.Is(err, domainerror.ErrConflict):
		return http.StatusConflict, domainerror.ErrCodeConflict
	default:
		return http.StatusInternalServerError, domainerror.ErrCodeInternal
	}
}

// bindJSON decodes and validates the request body, answering 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		handleError(ctx, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBody,
			"Invalid request body: "+err.Error(),
			domainerror.ErrValidation,
		))
		return false
	}
	return true
}

// pathID parses the :id path parameter, answering 400 when it is not a positive integer.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		handleError(ctx, domainerror.NewValidationError(domainerror.ErrCodeInvalidPathID, "id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// optionalQuery returns the query value for key, or nil when absent.
func optionalQuery(ctx *gin.Context, key string) *string {
	value, ok := ctx.GetQuery(key)
	if !ok {
		return nil
	}
	return &value
}
