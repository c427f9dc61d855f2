package models

import "time"

// RecordSchema distinguishes the two production record layouts. A deployment
// uses exactly one of them, never both.
type RecordSchema string

const (
	// SchemaGraded stores one column per egg grade plus feed and deaths.
	SchemaGraded RecordSchema = "graded"
	// SchemaGeneric stores one row per product code and quantity, resolved
	// against the product catalog.
	SchemaGeneric RecordSchema = "generic"
)

// Grade is an egg size/quality bucket of the graded layout.
type Grade string

const (
	GradeY      Grade = "huevos_y"
	GradeAAA    Grade = "huevos_aaa"
	GradeAA     Grade = "huevos_aa"
	GradeA      Grade = "huevos_a"
	GradeB      Grade = "huevos_b"
	GradeC      Grade = "huevos_c"
	GradeBlanco Grade = "huevos_blancos"
)

// Grades lists every grade bucket in presentation order.
var Grades = []Grade{GradeY, GradeAAA, GradeAA, GradeA, GradeB, GradeC, GradeBlanco}

// GradeLabels maps grade buckets to their display labels.
var GradeLabels = map[Grade]string{
	GradeY:      "Y",
	GradeAAA:    "AAA",
	GradeAA:     "AA",
	GradeA:      "A",
	GradeB:      "B",
	GradeC:      "C",
	GradeBlanco: "Blancos",
}

// ProductionRecord is one day's output/feed/mortality entry for a batch, in
// either of the two layouts. Schema tags which set of fields is meaningful.
// Nil numeric fields read as zero during aggregation.
type ProductionRecord struct {
	BatchID int          `json:"corte_id"`
	Date    time.Time    `json:"fecha"`
	Schema  RecordSchema `json:"-"`

	// Graded layout.
	Eggs   map[Grade]int `json:"huevos,omitempty"`
	FeedKg *float64      `json:"alimento,omitempty"`
	Deaths *int          `json:"muertes,omitempty"`
	Notes  string        `json:"notas,omitempty"`

	// Generic layout.
	Sequence    int     `json:"numero_secuencia,omitempty"`
	ProductCode int     `json:"producto_codigo,omitempty"`
	Quantity    float64 `json:"cantidad,omitempty"`
}
