package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// PostgresGenericRecordRepository reads the generic produccion_items table
// (one row per product code and quantity, resolved against the catalog).
type PostgresGenericRecordRepository struct {
	db *sql.DB
}

func NewPostgresGenericRecordRepository(db *sql.DB) *PostgresGenericRecordRepository {
	return &PostgresGenericRecordRepository{db: db}
}

func (r *PostgresGenericRecordRepository) ListByBatches(batchIDs []int, from time.Time, to *time.Time) ([]models.ProductionRecord, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	query := `SELECT corte_id, fecha, numero_secuencia, producto_codigo, cantidad
	          FROM produccion_items WHERE corte_id IN (` + placeholders(len(batchIDs), 1) + `)`
	args := make([]any, 0, len(batchIDs)+2)
	for _, id := range batchIDs {
		args = append(args, id)
	}
	argIdx := len(batchIDs) + 1
	query += fmt.Sprintf(" AND fecha >= $%d", argIdx)
	args = append(args, from)
	argIdx++
	if to != nil {
		query += fmt.Sprintf(" AND fecha < $%d", argIdx)
		args = append(args, *to)
	}
	query += " ORDER BY fecha, numero_secuencia"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ProductionRecord
	for rows.Next() {
		rec := models.ProductionRecord{Schema: models.SchemaGeneric}
		var qty sql.NullFloat64
		if err := rows.Scan(&rec.BatchID, &rec.Date, &rec.Sequence, &rec.ProductCode, &qty); err != nil {
			return nil, err
		}
		rec.Quantity = qty.Float64
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresGenericRecordRepository) Create(rec models.ProductionRecord) (models.ProductionRecord, error) {
	query := `INSERT INTO produccion_items (corte_id, fecha, numero_secuencia, producto_codigo, cantidad)
	          VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, rec.BatchID, rec.Date, rec.Sequence, rec.ProductCode, rec.Quantity)
	rec.Schema = models.SchemaGeneric
	return rec, err
}
