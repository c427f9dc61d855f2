package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

// CreateRecordHandler godoc
// @Summary Register a daily production record
// @Description Accepts the graded or the generic layout depending on the deployment schema.
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body RecordRequest true "Record to register"
// @Success 201 {object} models.ProductionRecord
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Unknown batch"
// @Router /records [post]
func CreateRecordHandler(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateRecord(req, recordSchema)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	if _, err := batchRepo.GetByID(req.BatchID); err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "unknown batch", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch batch", http.StatusInternalServerError)
		return
	}

	created, err := recordRepo.Create(toRecord(req, recordSchema))
	if err != nil {
		http.Error(w, "could not create record", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func toRecord(req RecordRequest, schema models.RecordSchema) models.ProductionRecord {
	rec := models.ProductionRecord{
		BatchID: req.BatchID,
		Date:    req.Date,
		Schema:  schema,
	}

	if schema == models.SchemaGeneric {
		rec.Sequence = req.Sequence
		rec.ProductCode = req.ProductCode
		rec.Quantity = req.Quantity
		return rec
	}

	rec.Eggs = map[models.Grade]int{}
	for grade, count := range map[models.Grade]*int{
		models.GradeY:      req.EggsY,
		models.GradeAAA:    req.EggsAAA,
		models.GradeAA:     req.EggsAA,
		models.GradeA:      req.EggsA,
		models.GradeB:      req.EggsB,
		models.GradeC:      req.EggsC,
		models.GradeBlanco: req.EggsBlanco,
	} {
		if count != nil {
			rec.Eggs[grade] = *count
		}
	}
	rec.FeedKg = req.FeedKg
	rec.Deaths = req.Deaths
	rec.Notes = req.Notes
	return rec
}
