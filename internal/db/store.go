// Package db archives finished research reports.
package db

import (
	"context"
	"errors"
	"sync"

	"github.com/spacesedan/researchflow/internal/models"
)

var ErrReportNotFound = errors.New("report not found")

type ReportStore interface {
	SaveReport(ctx context.Context, report models.ResearchReport) error
	GetReport(ctx context.Context, id string) (models.ResearchReport, error)
	ListReports(ctx context.Context, limit int) ([]models.ResearchReport, error)
}

// MemoryReportStore keeps reports for the life of the process. It backs the
// dashboard when no DynamoDB table is configured.
type MemoryReportStore struct {
	mu      sync.RWMutex
	reports map[string]models.ResearchReport
}

func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{reports: make(map[string]models.ResearchReport)}
}

func (s *MemoryReportStore) SaveReport(_ context.Context, report models.ResearchReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	return nil
}

func (s *MemoryReportStore) GetReport(_ context.Context, id string) (models.ResearchReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return models.ResearchReport{}, ErrReportNotFound
	}
	return report, nil
}

func (s *MemoryReportStore) ListReports(_ context.Context, limit int) ([]models.ResearchReport, error) {
	s.mu.RLock()
	reports := make([]models.ResearchReport, 0, len(s.reports))
	for _, r := range s.reports {
		reports = append(reports, r)
	}
	s.mu.RUnlock()
	return newestFirst(reports, limit), nil
}
