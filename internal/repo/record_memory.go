package repo

import (
	"slices"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// InMemoryRecordRepository is an in-memory implementation of RecordRepository.
type InMemoryRecordRepository struct {
	records []models.ProductionRecord
}

// NewInMemoryRecordRepository creates a new instance of InMemoryRecordRepository.
func NewInMemoryRecordRepository() *InMemoryRecordRepository {
	return &InMemoryRecordRepository{records: []models.ProductionRecord{}}
}

func (r *InMemoryRecordRepository) ListByBatches(batchIDs []int, from time.Time, to *time.Time) ([]models.ProductionRecord, error) {
	var matched []models.ProductionRecord
	for _, rec := range r.records {
		if !slices.Contains(batchIDs, rec.BatchID) {
			continue
		}
		if rec.Date.Before(from) {
			continue
		}
		if to != nil && !rec.Date.Before(*to) {
			continue
		}
		matched = append(matched, rec)
	}
	slices.SortStableFunc(matched, func(a, b models.ProductionRecord) int {
		return a.Date.Compare(b.Date)
	})
	return matched, nil
}

func (r *InMemoryRecordRepository) Create(rec models.ProductionRecord) (models.ProductionRecord, error) {
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *InMemoryRecordRepository) Clear() {
	r.records = []models.ProductionRecord{}
}
