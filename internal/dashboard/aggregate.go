package dashboard

import (
	"strings"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// AggregatorConfig carries the constants that turn raw record rows into
// output, feed and mortality quantities. It is injected rather than kept as
// package globals so alternate tables can be substituted.
type AggregatorConfig struct {
	// GradeMassKg is the average unit mass per egg grade, used for FCR.
	GradeMassKg map[models.Grade]float64
	// GenericUnitMassKg is the average egg mass applied to generic-schema
	// rows, which carry no per-grade breakdown.
	GenericUnitMassKg float64
	// OutputDescriptionMatch classifies a generic-schema product as egg
	// output when its catalog description contains this substring
	// (case-insensitive). Fragile against catalog data entry; the reserved
	// codes below take precedence.
	OutputDescriptionMatch string
	// FeedCode and MortalityCode are the reserved generic-schema product
	// codes for feed consumption and death counts.
	FeedCode      int
	MortalityCode int
}

// DefaultAggregatorConfig returns the production mass table and reserved
// codes. Masses are kg per egg.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		GradeMassKg: map[models.Grade]float64{
			models.GradeY:      0.073,
			models.GradeAAA:    0.067,
			models.GradeAA:     0.062,
			models.GradeA:      0.056,
			models.GradeB:      0.049,
			models.GradeC:      0.042,
			models.GradeBlanco: 0.060,
		},
		GenericUnitMassKg:      0.060,
		OutputDescriptionMatch: "huevo",
		FeedCode:               900,
		MortalityCode:          901,
	}
}

// Aggregator resolves per-record quantities for both record schemas. For the
// generic schema it consults the product catalog; rows whose code is absent
// from the catalog classify as nothing and contribute zero everywhere.
type Aggregator struct {
	cfg     AggregatorConfig
	catalog map[int]models.Product
}

func NewAggregator(cfg AggregatorConfig, catalog []models.Product) *Aggregator {
	idx := make(map[int]models.Product, len(catalog))
	for _, p := range catalog {
		idx[p.Code] = p
	}
	return &Aggregator{cfg: cfg, catalog: idx}
}

// IsOutputRecord reports whether the record represents egg output. Every
// graded-schema record is an output record (its grade columns may all be
// zero); a generic-schema record must resolve to an egg product.
func (a *Aggregator) IsOutputRecord(r models.ProductionRecord) bool {
	switch r.Schema {
	case models.SchemaGraded:
		return true
	case models.SchemaGeneric:
		if r.ProductCode == a.cfg.FeedCode || r.ProductCode == a.cfg.MortalityCode {
			return false
		}
		p, ok := a.catalog[r.ProductCode]
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(p.Description), strings.ToLower(a.cfg.OutputDescriptionMatch))
	}
	return false
}

// IsFeedRecord reports whether a generic-schema record carries feed.
func (a *Aggregator) IsFeedRecord(r models.ProductionRecord) bool {
	return r.Schema == models.SchemaGeneric && r.ProductCode == a.cfg.FeedCode
}

// IsMortalityRecord reports whether a generic-schema record carries deaths.
func (a *Aggregator) IsMortalityRecord(r models.ProductionRecord) bool {
	return r.Schema == models.SchemaGeneric && r.ProductCode == a.cfg.MortalityCode
}

// IsClassified reports whether the record resolves to any role at all.
// Unclassifiable generic rows are excluded from every numeric aggregate but
// still count as "the batch reported something today".
func (a *Aggregator) IsClassified(r models.ProductionRecord) bool {
	if r.Schema == models.SchemaGraded {
		return true
	}
	return a.IsOutputRecord(r) || a.IsFeedRecord(r) || a.IsMortalityRecord(r)
}

// TotalOutput is the egg count of the record: the sum of all grade columns,
// or the row quantity when the row is catalog-classified as output.
func (a *Aggregator) TotalOutput(r models.ProductionRecord) float64 {
	switch r.Schema {
	case models.SchemaGraded:
		sum := 0
		for _, g := range models.Grades {
			sum += r.Eggs[g]
		}
		return float64(sum)
	case models.SchemaGeneric:
		if a.IsOutputRecord(r) {
			return r.Quantity
		}
	}
	return 0
}

// OutputMass is the egg mass in kg: grade counts weighted by the mass table,
// or quantity times the single generic unit mass.
func (a *Aggregator) OutputMass(r models.ProductionRecord) float64 {
	switch r.Schema {
	case models.SchemaGraded:
		mass := 0.0
		for _, g := range models.Grades {
			mass += float64(r.Eggs[g]) * a.cfg.GradeMassKg[g]
		}
		return mass
	case models.SchemaGeneric:
		if a.IsOutputRecord(r) {
			return r.Quantity * a.cfg.GenericUnitMassKg
		}
	}
	return 0
}

// FeedAmount is the feed quantity of the record in kg.
func (a *Aggregator) FeedAmount(r models.ProductionRecord) float64 {
	switch r.Schema {
	case models.SchemaGraded:
		if r.FeedKg != nil {
			return *r.FeedKg
		}
	case models.SchemaGeneric:
		if a.IsFeedRecord(r) {
			return r.Quantity
		}
	}
	return 0
}

// MortalityCount is the death count of the record.
func (a *Aggregator) MortalityCount(r models.ProductionRecord) int {
	switch r.Schema {
	case models.SchemaGraded:
		if r.Deaths != nil {
			return *r.Deaths
		}
	case models.SchemaGeneric:
		if a.IsMortalityRecord(r) {
			return int(r.Quantity)
		}
	}
	return 0
}

// ClassificationLabel is the breakdown bucket of a generic-schema output
// record: its catalog description. Graded rows spread across several grade
// buckets at once, so the classification deriver sums their columns directly
// and this returns false for them, as it does for non-output rows.
func (a *Aggregator) ClassificationLabel(r models.ProductionRecord) (string, bool) {
	if r.Schema != models.SchemaGeneric || !a.IsOutputRecord(r) {
		return "", false
	}
	return a.catalog[r.ProductCode].Description, true
}
