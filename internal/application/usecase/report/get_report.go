package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneymap/backend/internal/application/adapter"
	domainerror "github.com/moneymap/backend/internal/domain/error"
)

// GetReportInput represents the input for building a report.
type GetReportInput struct {
	Period Period
	Anchor time.Time
}

// GetReportOutput represents the output of building a report.
type GetReportOutput struct {
	Report *Report
}

// GetReportUseCase handles building the dashboard report, with a cache in
// front of the aggregation pass. Cache failures are never fatal: the
// report is recomputed from the repository snapshot.
type GetReportUseCase struct {
	recordRepo adapter.RecordRepository
	cache      adapter.ReportCache
	cacheTTL   time.Duration
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(
	recordRepo adapter.RecordRepository,
	cache adapter.ReportCache,
	cacheTTL time.Duration,
) *GetReportUseCase {
	return &GetReportUseCase{
		recordRepo: recordRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Execute builds the report for the given period and anchor date.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	key := cacheKey(input.Period, input.Anchor)

	if payload, err := uc.cache.Get(ctx, key); err != nil {
		slog.Debug("Report cache lookup failed", "key", key, "error", err)
	} else if payload != nil {
		var cached Report
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &GetReportOutput{Report: &cached}, nil
		}
		slog.Debug("Discarding undecodable cached report", "key", key)
	}

	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	result := BuildReport(records, input.Period, input.Anchor)

	if payload, err := json.Marshal(result); err == nil {
		if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			slog.Debug("Report cache store failed", "key", key, "error", err)
		}
	}

	return &GetReportOutput{Report: result}, nil
}

// validateInput validates the input parameters.
func (uc *GetReportUseCase) validateInput(input GetReportInput) error {
	if !IsValidPeriod(input.Period) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: weekly, monthly, or yearly",
			domainerror.ErrInvalidPeriod,
		)
	}

	if input.Anchor.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingAnchorDate,
			"anchor date is required",
			domainerror.ErrMissingAnchorDate,
		)
	}

	return nil
}

// cacheKey builds the cache key for one period selection.
func cacheKey(period Period, anchor time.Time) string {
	return fmt.Sprintf("report:%s:%s", period, anchor.Format(dateLayout))
}
