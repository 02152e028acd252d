package report

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
	domainerror "github.com/moneymap/backend/internal/domain/error"
)

// stubRecordRepository serves a fixed record set and counts FindAll calls.
type stubRecordRepository struct {
	records     []*entity.Record
	findAllErr  error
	findAllHits int
}

func (s *stubRecordRepository) Create(_ context.Context, _ *entity.Record) error { return nil }

func (s *stubRecordRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Record, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (s *stubRecordRepository) FindAll(_ context.Context) ([]*entity.Record, error) {
	s.findAllHits++
	if s.findAllErr != nil {
		return nil, s.findAllErr
	}
	return s.records, nil
}

func (s *stubRecordRepository) Update(_ context.Context, _ *entity.Record) error { return nil }
func (s *stubRecordRepository) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

// memoryCache is an in-memory ReportCache for use case tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	payload, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return payload, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	return nil
}

func TestGetReportUseCase_Execute(t *testing.T) {
	records := []*entity.Record{
		testRecord(entity.RecordTypeIncome, "1000.00", "", "2024-03-01"),
		testRecord(entity.RecordTypeExpense, "200.00", "Food", "2024-03-05"),
	}
	anchor := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	t.Run("builds the report from the repository on a cache miss", func(t *testing.T) {
		repo := &stubRecordRepository{records: records}
		uc := NewGetReportUseCase(repo, newMemoryCache(), time.Minute)

		output, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodMonthly, Anchor: anchor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Report.Totals.Balance.Equal(decimal.RequireFromString("800")) {
			t.Errorf("expected balance 800, got %s", output.Report.Totals.Balance)
		}
		if repo.findAllHits != 1 {
			t.Errorf("expected 1 repository read, got %d", repo.findAllHits)
		}
	})

	t.Run("serves the second request from the cache", func(t *testing.T) {
		repo := &stubRecordRepository{records: records}
		uc := NewGetReportUseCase(repo, newMemoryCache(), time.Minute)
		input := GetReportInput{Period: PeriodMonthly, Anchor: anchor}

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.findAllHits != 1 {
			t.Errorf("expected cached second read, repository hit %d times", repo.findAllHits)
		}
		if !output.Report.Totals.Income.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected income 1000 from cache, got %s", output.Report.Totals.Income)
		}
	})

	t.Run("different period selections use different cache keys", func(t *testing.T) {
		repo := &stubRecordRepository{records: records}
		uc := NewGetReportUseCase(repo, newMemoryCache(), time.Minute)

		if _, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodMonthly, Anchor: anchor}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodYearly, Anchor: anchor}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.findAllHits != 2 {
			t.Errorf("expected 2 repository reads, got %d", repo.findAllHits)
		}
	})

	t.Run("cache failures fall back to recomputation", func(t *testing.T) {
		repo := &stubRecordRepository{records: records}
		cache := newMemoryCache()
		cache.getErr = errors.New("connection refused")
		cache.setErr = errors.New("connection refused")
		uc := NewGetReportUseCase(repo, cache, time.Minute)

		output, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodMonthly, Anchor: anchor})
		if err != nil {
			t.Fatalf("expected cache failure to be non-fatal, got %v", err)
		}
		if !output.Report.Totals.Balance.Equal(decimal.RequireFromString("800")) {
			t.Errorf("expected balance 800, got %s", output.Report.Totals.Balance)
		}
	})

	t.Run("undecodable cached payload is discarded", func(t *testing.T) {
		repo := &stubRecordRepository{records: records}
		cache := newMemoryCache()
		cache.entries[cacheKey(PeriodMonthly, anchor)] = []byte("{not json")
		uc := NewGetReportUseCase(repo, cache, time.Minute)

		output, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodMonthly, Anchor: anchor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.findAllHits != 1 {
			t.Errorf("expected rebuild from repository, got %d reads", repo.findAllHits)
		}
		if output.Report == nil {
			t.Fatal("expected a report")
		}
	})

	t.Run("invalid period is rejected", func(t *testing.T) {
		uc := NewGetReportUseCase(&stubRecordRepository{}, newMemoryCache(), time.Minute)

		_, err := uc.Execute(context.Background(), GetReportInput{Period: "daily", Anchor: anchor})

		var repErr *domainerror.ReportError
		if !errors.As(err, &repErr) {
			t.Fatalf("expected ReportError, got %v", err)
		}
		if repErr.Code != domainerror.ErrCodeInvalidPeriod {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPeriod, repErr.Code)
		}
	})

	t.Run("zero anchor is rejected", func(t *testing.T) {
		uc := NewGetReportUseCase(&stubRecordRepository{}, newMemoryCache(), time.Minute)

		_, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodMonthly})

		var repErr *domainerror.ReportError
		if !errors.As(err, &repErr) {
			t.Fatalf("expected ReportError, got %v", err)
		}
		if repErr.Code != domainerror.ErrCodeMissingAnchorDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingAnchorDate, repErr.Code)
		}
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		repo := &stubRecordRepository{findAllErr: errors.New("db down")}
		uc := NewGetReportUseCase(repo, newMemoryCache(), time.Minute)

		if _, err := uc.Execute(context.Background(), GetReportInput{Period: PeriodMonthly, Anchor: anchor}); err == nil {
			t.Fatal("expected error")
		}
	})
}
