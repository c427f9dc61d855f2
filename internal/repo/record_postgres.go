package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// PostgresGradedRecordRepository reads the fixed-column produccion table
// (one column per egg grade plus alimento and muertes).
type PostgresGradedRecordRepository struct {
	db *sql.DB
}

func NewPostgresGradedRecordRepository(db *sql.DB) *PostgresGradedRecordRepository {
	return &PostgresGradedRecordRepository{db: db}
}

func (r *PostgresGradedRecordRepository) ListByBatches(batchIDs []int, from time.Time, to *time.Time) ([]models.ProductionRecord, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	query := `SELECT corte_id, fecha, huevos_y, huevos_aaa, huevos_aa, huevos_a, huevos_b, huevos_c, huevos_blancos, alimento, muertes, notas
	          FROM produccion WHERE corte_id IN (` + placeholders(len(batchIDs), 1) + `)`
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
	query += " ORDER BY fecha"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ProductionRecord
	for rows.Next() {
		rec := models.ProductionRecord{Schema: models.SchemaGraded, Eggs: map[models.Grade]int{}}
		counts := make([]sql.NullInt64, len(models.Grades))
		dest := []any{&rec.BatchID, &rec.Date}
		for i := range counts {
			dest = append(dest, &counts[i])
		}
		var feed sql.NullFloat64
		var deaths sql.NullInt64
		var notes sql.NullString
		dest = append(dest, &feed, &deaths, &notes)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i, g := range models.Grades {
			if counts[i].Valid {
				rec.Eggs[g] = int(counts[i].Int64)
			}
		}
		if feed.Valid {
			rec.FeedKg = &feed.Float64
		}
		if deaths.Valid {
			v := int(deaths.Int64)
			rec.Deaths = &v
		}
		rec.Notes = notes.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresGradedRecordRepository) Create(rec models.ProductionRecord) (models.ProductionRecord, error) {
	query := `INSERT INTO produccion (corte_id, fecha, huevos_y, huevos_aaa, huevos_aa, huevos_a, huevos_b, huevos_c, huevos_blancos, alimento, muertes, notas)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	args := []any{rec.BatchID, rec.Date}
	for _, g := range models.Grades {
		args = append(args, rec.Eggs[g])
	}
	args = append(args, rec.FeedKg, rec.Deaths, rec.Notes)
	_, err := r.db.ExecContext(ctx, query, args...)
	rec.Schema = models.SchemaGraded
	return rec, err
}

func placeholders(n, start int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ps, ", ")
}
