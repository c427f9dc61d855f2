package models

// Product is a catalog entry of the generic record layout. Whether a record
// row counts as egg output, feed or mortality is inferred from its product's
// description and reserved codes.
type Product struct {
	ID          string `json:"id"`
	Code        int    `json:"codigo"`
	Description string `json:"descripcion,omitempty"`
	UnitCode    string `json:"unidad_medida_codigo"`
}
