package models

import "time"

// BatchStatus is the lifecycle state of a batch (corte).
type BatchStatus string

const (
	BatchActive BatchStatus = "activo"
	BatchClosed BatchStatus = "finalizado"
)

// Batch represents a corte: a cohort of birds tracked as a unit from start to
// closure. Only active batches participate in dashboard derivation.
type Batch struct {
	ID        int         `json:"id"`
	HouseID   *int        `json:"galpon_id,omitempty"`
	BirdCount int         `json:"numero_aves"`
	BirdType  string      `json:"tipo_ave,omitempty"`
	StartDate time.Time   `json:"fecha_inicio"`
	EndDate   *time.Time  `json:"fecha_final,omitempty"`
	Notes     string      `json:"notas,omitempty"`
	Status    BatchStatus `json:"estado"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
}
