package repo

import (
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// InMemoryBatchRepository is an in-memory implementation of BatchRepository.
type InMemoryBatchRepository struct {
	batches []models.Batch
	nextID  int
}

// NewInMemoryBatchRepository creates a new instance of InMemoryBatchRepository.
func NewInMemoryBatchRepository() *InMemoryBatchRepository {
	return &InMemoryBatchRepository{
		batches: []models.Batch{},
		nextID:  1,
	}
}

func (r *InMemoryBatchRepository) ListActive() ([]models.Batch, error) {
	var active []models.Batch
	for _, b := range r.batches {
		if b.Status == models.BatchActive {
			active = append(active, b)
		}
	}
	return active, nil
}

func (r *InMemoryBatchRepository) GetByID(id int) (models.Batch, error) {
	for _, b := range r.batches {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Batch{}, ErrBatchNotFound
}

func (r *InMemoryBatchRepository) Create(b models.Batch) (models.Batch, error) {
	b.ID = r.nextID
	r.nextID++
	b.Status = models.BatchActive
	b.CreatedAt = time.Now().UTC()
	r.batches = append(r.batches, b)
	return b, nil
}

func (r *InMemoryBatchRepository) Close(id int, endDate time.Time) (models.Batch, error) {
	for i, b := range r.batches {
		if b.ID == id && b.Status == models.BatchActive {
			b.Status = models.BatchClosed
			b.EndDate = &endDate
			r.batches[i] = b
			return b, nil
		}
	}
	return models.Batch{}, ErrBatchNotFound
}

func (r *InMemoryBatchRepository) Clear() {
	r.batches = []models.Batch{}
	r.nextID = 1
}
