package repo

import (
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// BatchRepository defines the interface for batch (corte) data operations.
type BatchRepository interface {
	ListActive() ([]models.Batch, error)
	GetByID(id int) (models.Batch, error)
	Create(b models.Batch) (models.Batch, error)
	Close(id int, endDate time.Time) (models.Batch, error)
}
