package repo

import (
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// RecordRepository defines the interface for production record data
// operations. ListByBatches returns records for the given batches with
// fecha >= from and, when to is non-nil, fecha < to, in ascending date order.
type RecordRepository interface {
	ListByBatches(batchIDs []int, from time.Time, to *time.Time) ([]models.ProductionRecord, error)
	Create(rec models.ProductionRecord) (models.ProductionRecord, error)
}
