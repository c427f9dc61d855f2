package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// GetProductsHandler godoc
// @Summary List the product catalog
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if catalogRepo == nil {
		http.Error(w, "no product catalog in this deployment", http.StatusNotFound)
		return
	}

	products, err := catalogRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{Id: p.ID, Code: p.Code, Description: p.Description, UnitCode: p.UnitCode}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// CreateProductHandler godoc
// @Summary Create a catalog product
// @Description The store assigns the product code.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	if catalogRepo == nil {
		http.Error(w, "no product catalog in this deployment", http.StatusNotFound)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := catalogRepo.Create(models.Product{
		Description: req.Description,
		UnitCode:    req.UnitCode,
	})
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ProductResponse{Id: created.ID, Code: created.Code, Description: created.Description, UnitCode: created.UnitCode})
}
