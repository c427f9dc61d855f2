package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

type PostgresBatchRepository struct {
	db *sql.DB
}

func NewPostgresBatchRepository(db *sql.DB) *PostgresBatchRepository {
	return &PostgresBatchRepository{db: db}
}

func (r *PostgresBatchRepository) ListActive() ([]models.Batch, error) {
	query := `SELECT id, galpon_id, numero_aves, tipo_ave, fecha_inicio, fecha_final, notas, estado, created_at
	          FROM cortes WHERE estado = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, models.BatchActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []models.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *PostgresBatchRepository) GetByID(id int) (models.Batch, error) {
	query := `SELECT id, galpon_id, numero_aves, tipo_ave, fecha_inicio, fecha_final, notas, estado, created_at
	          FROM cortes WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	b, err := scanBatch(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Batch{}, ErrBatchNotFound
	}
	return b, err
}

func (r *PostgresBatchRepository) Create(b models.Batch) (models.Batch, error) {
	query := `INSERT INTO cortes (galpon_id, numero_aves, tipo_ave, fecha_inicio, notas, estado, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	b.Status = models.BatchActive
	b.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, b.HouseID, b.BirdCount, b.BirdType, b.StartDate, b.Notes, b.Status, b.CreatedAt).Scan(&b.ID)
	return b, err
}

func (r *PostgresBatchRepository) Close(id int, endDate time.Time) (models.Batch, error) {
	query := `UPDATE cortes SET estado = $1, fecha_final = $2 WHERE id = $3 AND estado = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, models.BatchClosed, endDate, id, models.BatchActive)
	if err != nil {
		return models.Batch{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Batch{}, ErrBatchNotFound
	}
	return r.GetByID(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (models.Batch, error) {
	var b models.Batch
	var houseID sql.NullInt64
	var endDate sql.NullTime
	var notes sql.NullString
	err := row.Scan(&b.ID, &houseID, &b.BirdCount, &b.BirdType, &b.StartDate, &endDate, &notes, &b.Status, &b.CreatedAt)
	if err != nil {
		return models.Batch{}, err
	}
	if houseID.Valid {
		v := int(houseID.Int64)
		b.HouseID = &v
	}
	if endDate.Valid {
		t := endDate.Time
		b.EndDate = &t
	}
	b.Notes = notes.String
	return b, nil
}

// ErrBatchNotFound is returned when a batch is not found in the repository.
var ErrBatchNotFound = errors.New("batch not found")
