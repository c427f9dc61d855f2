package dashboard

import (
	"fmt"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

// snapshotDays is how far back the single record fetch reaches; it covers
// today, the 7-day KPI window and the 30-day chart in one query.
const snapshotDays = 30

// Service derives the dashboard from one snapshot read: active batches,
// their last 30 days of records and, in generic-schema deployments, the
// product catalog. The four derivers are pure and never see different data
// within one pass.
type Service struct {
	batches repo.BatchRepository
	records repo.RecordRepository
	catalog repo.CatalogRepository
	cfg     AggregatorConfig
	now     func() time.Time
}

// NewService wires the orchestrator. catalog is nil for graded-schema
// deployments, which need no product lookup.
func NewService(batches repo.BatchRepository, records repo.RecordRepository, catalog repo.CatalogRepository, cfg AggregatorConfig) *Service {
	return &Service{
		batches: batches,
		records: records,
		catalog: catalog,
		cfg:     cfg,
		now:     time.Now,
	}
}

// WithClock substitutes the time source. Tests use it to pin the derivation
// day.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// EmptyDashboard is the canonical no-active-batches result: all KPIs null,
// empty chart and classification, one informational alert.
func EmptyDashboard() DashboardData {
	return DashboardData{
		Kpis:           KpiSummary{},
		Chart:          []ChartPoint{},
		Classification: []ClassificationEntry{},
		Alerts: []Alert{{
			ID:       "no-cortes",
			Severity: SeverityInfo,
			Message:  "No hay cortes activos. Crea un corte para comenzar a registrar producción.",
		}},
	}
}

// GetDashboardData runs one derivation pass. An empty or unreachable fleet
// yields the canonical empty dashboard; a failure on the record or catalog
// fetch is terminal and returns no partial result.
func (s *Service) GetDashboardData() (DashboardData, error) {
	now := s.now()
	today := TodayWindow(now)
	weekStart := DaysAgo(now, 7)
	monthStart := DaysAgo(now, snapshotDays)

	batches, err := s.batches.ListActive()
	if err != nil || len(batches) == 0 {
		return EmptyDashboard(), nil
	}

	batchIDs := make([]int, len(batches))
	for i, b := range batches {
		batchIDs[i] = b.ID
	}

	records, err := s.records.ListByBatches(batchIDs, monthStart, nil)
	if err != nil {
		return DashboardData{}, fmt.Errorf("fetching production records: %w", err)
	}

	var catalog []models.Product
	if s.catalog != nil {
		catalog, err = s.catalog.GetAll()
		if err != nil {
			return DashboardData{}, fmt.Errorf("fetching product catalog: %w", err)
		}
	}

	agg := NewAggregator(s.cfg, catalog)
	return DashboardData{
		Kpis:           deriveKpis(batches, records, today, weekStart, agg),
		Chart:          deriveChart(records, agg),
		Classification: deriveClassification(records, today, agg),
		Alerts:         deriveAlerts(batches, records, today, agg),
	}, nil
}
