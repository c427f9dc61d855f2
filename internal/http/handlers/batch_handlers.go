package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

// GetBatchesHandler godoc
// @Summary List active batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BatchResponse
// @Failure 500 {string} string "Internal error"
// @Router /batches [get]
func GetBatchesHandler(w http.ResponseWriter, r *http.Request) {
	batches, err := batchRepo.ListActive()
	if err != nil {
		http.Error(w, "could not fetch batches", http.StatusInternalServerError)
		return
	}

	response := make([]BatchResponse, len(batches))
	for i, b := range batches {
		response[i] = toBatchResponse(b)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CreateBatchHandler godoc
// @Summary Start a new batch
// @Description Registers a cohort of birds; the batch starts active.
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body BatchRequest true "Batch to start"
// @Success 201 {object} BatchResponse
// @Failure 400 {array} ValidationError
// @Router /batches [post]
func CreateBatchHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateBatch(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := batchRepo.Create(models.Batch{
		HouseID:   req.HouseID,
		BirdCount: req.BirdCount,
		BirdType:  req.BirdType,
		StartDate: req.StartDate,
		Notes:     req.Notes,
	})
	if err != nil {
		http.Error(w, "could not create batch", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toBatchResponse(created))
}

// CloseBatchHandler godoc
// @Summary Close an active batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch id"
// @Success 200 {object} BatchResponse
// @Failure 404 {string} string "Not found"
// @Router /batches/{id}/close [put]
func CloseBatchHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid batch id", http.StatusBadRequest)
		return
	}

	closed, err := batchRepo.Close(id, time.Now())
	if err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "batch not found or already closed", http.StatusNotFound)
			return
		}
		http.Error(w, "could not close batch", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toBatchResponse(closed))
}

// GetBatchRecordsHandler godoc
// @Summary List a batch's production records for the last 30 days
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch id"
// @Success 200 {array} models.ProductionRecord
// @Failure 404 {string} string "Not found"
// @Router /batches/{id}/records [get]
func GetBatchRecordsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid batch id", http.StatusBadRequest)
		return
	}

	if _, err := batchRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrBatchNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch batch", http.StatusInternalServerError)
		return
	}

	from := time.Now().AddDate(0, 0, -30)
	records, err := recordRepo.ListByBatches([]int{id}, from, nil)
	if err != nil {
		http.Error(w, "could not fetch records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.ProductionRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

func toBatchResponse(b models.Batch) BatchResponse {
	return BatchResponse{
		Id:        b.ID,
		HouseID:   b.HouseID,
		BirdCount: b.BirdCount,
		BirdType:  b.BirdType,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    string(b.Status),
	}
}
