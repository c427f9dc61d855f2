package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, codigo, descripcion, unidad_medida_codigo FROM productos ORDER BY codigo`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var descr sql.NullString
		if err := rows.Scan(&p.ID, &p.Code, &descr, &p.UnitCode); err != nil {
			return nil, err
		}
		p.Description = descr.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresCatalogRepository) Create(p models.Product) (models.Product, error) {
	// codigo is assigned by the store (autoincrement), mirroring the id.
	query := `INSERT INTO productos (descripcion, unidad_medida_codigo) VALUES ($1, $2) RETURNING id, codigo`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Description, p.UnitCode).Scan(&p.ID, &p.Code)
	return p, err
}

// ErrProductNotFound is returned when a catalog entry is not found.
var ErrProductNotFound = errors.New("product not found")
