package repo

import "github.com/granjasoft/avicola-tracker/internal/models"

// CatalogRepository defines the interface for product catalog operations.
// Only generic-schema deployments carry a catalog.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	Create(p models.Product) (models.Product, error)
}
