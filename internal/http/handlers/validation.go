package handlers

import (
	"strings"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateBatch(b BatchRequest) []ValidationError {
	errs := []ValidationError{}
	if b.BirdCount <= 0 {
		errs = append(errs, ValidationError{Field: "numero_aves", Description: "Bird count must be greater than zero"})
	}
	if b.StartDate.IsZero() {
		errs = append(errs, ValidationError{Field: "fecha_inicio", Description: "Start date is required"})
	}
	return errs
}

func validateRecord(r RecordRequest, schema models.RecordSchema) []ValidationError {
	errs := []ValidationError{}
	if r.BatchID <= 0 {
		errs = append(errs, ValidationError{Field: "corte_id", Description: "Batch id is required"})
	}
	if r.Date.IsZero() {
		errs = append(errs, ValidationError{Field: "fecha", Description: "Date is required"})
	}
	if schema == models.SchemaGeneric {
		if r.ProductCode <= 0 {
			errs = append(errs, ValidationError{Field: "producto_codigo", Description: "Product code is required"})
		}
		if r.Quantity < 0 {
			errs = append(errs, ValidationError{Field: "cantidad", Description: "Quantity cannot be negative"})
		}
	}
	return errs
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.UnitCode) == "" {
		errs = append(errs, ValidationError{Field: "unidad_medida_codigo", Description: "Unit code is required"})
	}
	return errs
}
