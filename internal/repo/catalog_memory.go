package repo

import (
	"fmt"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// InMemoryCatalogRepository is an in-memory implementation of CatalogRepository.
type InMemoryCatalogRepository struct {
	products []models.Product
	nextCode int
}

// NewInMemoryCatalogRepository creates a new instance of InMemoryCatalogRepository.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		products: []models.Product{},
		nextCode: 1,
	}
}

func (r *InMemoryCatalogRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

func (r *InMemoryCatalogRepository) Create(p models.Product) (models.Product, error) {
	if p.Code == 0 {
		p.Code = r.nextCode
		r.nextCode++
	} else if p.Code >= r.nextCode {
		r.nextCode = p.Code + 1
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("producto-%d", p.Code)
	}
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryCatalogRepository) Clear() {
	r.products = []models.Product{}
	r.nextCode = 1
}
