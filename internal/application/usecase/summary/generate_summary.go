// Package summary contains the summary aggregation use case.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
	"github.com/finance-tracker/bookkeeper/internal/domain/entity"
)

// GenerateSummaryInput represents the input for summary generation.
type GenerateSummaryInput struct {
	StartDate          time.Time
	EndDate            time.Time
	ExcludeCategoryIDs []int64
}

// GenerateSummaryOutput represents the output of summary generation.
type GenerateSummaryOutput struct {
	Summary *entity.Summary
}

// GenerateSummaryUseCase handles summary aggregation over a date range.
type GenerateSummaryUseCase struct {
	summaryRepo adapter.SummaryRepository
}

// NewGenerateSummaryUseCase creates a new GenerateSummaryUseCase instance.
func NewGenerateSummaryUseCase(summaryRepo adapter.SummaryRepository) *GenerateSummaryUseCase {
	return &GenerateSummaryUseCase{
		summaryRepo: summaryRepo,
	}
}

// Execute computes the summary. A nil exclusion list excludes nothing.
func (uc *GenerateSummaryUseCase) Execute(ctx context.Context, input GenerateSummaryInput) (*GenerateSummaryOutput, error) {
	excluded := input.ExcludeCategoryIDs
	if excluded == nil {
		excluded = []int64{}
	}

	summary, err := uc.summaryRepo.Generate(ctx, entity.SummaryRequest{
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		ExcludeCategoryIDs: excluded,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	return &GenerateSummaryOutput{
		Summary: summary,
	}, nil
}
