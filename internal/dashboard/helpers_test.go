package dashboard

import (
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// Fixed derivation instant shared by the engine tests: mid-morning so the
// today window has room on both sides.
var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func gradedRecord(batchID int, date time.Time, eggs map[models.Grade]int) models.ProductionRecord {
	return models.ProductionRecord{
		BatchID: batchID,
		Date:    date,
		Schema:  models.SchemaGraded,
		Eggs:    eggs,
	}
}

func genericRecord(batchID int, date time.Time, code int, qty float64) models.ProductionRecord {
	return models.ProductionRecord{
		BatchID:     batchID,
		Date:        date,
		Schema:      models.SchemaGeneric,
		ProductCode: code,
		Quantity:    qty,
	}
}

func activeBatch(id, birds int) models.Batch {
	return models.Batch{
		ID:        id,
		BirdCount: birds,
		StartDate: testNow.AddDate(0, -2, 0),
		Status:    models.BatchActive,
	}
}

func testCatalog() []models.Product {
	cfg := DefaultAggregatorConfig()
	return []models.Product{
		{ID: "p1", Code: 1, Description: "Huevo AA", UnitCode: "und"},
		{ID: "p2", Code: 2, Description: "Huevo B", UnitCode: "und"},
		{ID: "p3", Code: cfg.FeedCode, Description: "Alimento concentrado", UnitCode: "kg"},
		{ID: "p4", Code: cfg.MortalityCode, Description: "Mortalidad", UnitCode: "und"},
	}
}

func gradedAggregator() *Aggregator {
	return NewAggregator(DefaultAggregatorConfig(), nil)
}

func genericAggregator() *Aggregator {
	return NewAggregator(DefaultAggregatorConfig(), testCatalog())
}
