package handlers

import "time"

type BatchRequest struct {
	HouseID   *int      `json:"galpon_id,omitempty"`
	BirdCount int       `json:"numero_aves"`
	BirdType  string    `json:"tipo_ave"`
	StartDate time.Time `json:"fecha_inicio"`
	Notes     string    `json:"notas,omitempty"`
}

type BatchResponse struct {
	Id        int        `json:"id"`
	HouseID   *int       `json:"galpon_id,omitempty"`
	BirdCount int        `json:"numero_aves"`
	BirdType  string     `json:"tipo_ave,omitempty"`
	StartDate time.Time  `json:"fecha_inicio"`
	EndDate   *time.Time `json:"fecha_final,omitempty"`
	Status    string     `json:"estado"`
}

// RecordRequest covers both record layouts; which fields are honoured
// depends on the deployment's record schema.
type RecordRequest struct {
	BatchID int       `json:"corte_id"`
	Date    time.Time `json:"fecha"`

	// Graded layout.
	EggsY      *int     `json:"huevos_y,omitempty"`
	EggsAAA    *int     `json:"huevos_aaa,omitempty"`
	EggsAA     *int     `json:"huevos_aa,omitempty"`
	EggsA      *int     `json:"huevos_a,omitempty"`
	EggsB      *int     `json:"huevos_b,omitempty"`
	EggsC      *int     `json:"huevos_c,omitempty"`
	EggsBlanco *int     `json:"huevos_blancos,omitempty"`
	FeedKg     *float64 `json:"alimento,omitempty"`
	Deaths     *int     `json:"muertes,omitempty"`
	Notes      string   `json:"notas,omitempty"`

	// Generic layout.
	Sequence    int     `json:"numero_secuencia,omitempty"`
	ProductCode int     `json:"producto_codigo,omitempty"`
	Quantity    float64 `json:"cantidad,omitempty"`
}

type ProductRequest struct {
	Description string `json:"descripcion"`
	UnitCode    string `json:"unidad_medida_codigo"`
}

type ProductResponse struct {
	Id          string `json:"id"`
	Code        int    `json:"codigo"`
	Description string `json:"descripcion,omitempty"`
	UnitCode    string `json:"unidad_medida_codigo"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
