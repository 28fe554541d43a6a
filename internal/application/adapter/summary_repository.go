// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// SummaryRepository defines the aggregation engine over the ledger tables.
type SummaryRepository interface {
	// Generate computes expense and income totals and their group-bys for
	// the request's inclusive date range.
	Generate(ctx context.Context, request entity.SummaryRequest) (*entity.Summary, error)
}
