package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/granjasoft/avicola-tracker/internal/dashboard"
	api "github.com/granjasoft/avicola-tracker/internal/http"
	handler "github.com/granjasoft/avicola-tracker/internal/http/handlers"
	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

func TestCreateRecordHandler_UnknownBatch(t *testing.T) {
	t.Cleanup(clearAllBatches)
	r := api.NewRouter()

	w := createRecord(r, handler.RecordRequest{
		BatchID: 77,
		Date:    todayAt(8),
		EggsAA:  intp(10),
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateRecordHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllBatches)
	r := api.NewRouter()

	w := createRecord(r, handler.RecordRequest{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	for _, field := range []string{"corte_id", "fecha"} {
		found := false
		for _, err := range resp {
			if strings.EqualFold(err.Field, field) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected error for field %q, but not found", field)
		}
	}
}

// switchToGenericSchema rewires the handlers and dashboard for the generic
// record layout and registers a cleanup restoring the graded default.
func switchToGenericSchema(t *testing.T) *repo.InMemoryCatalogRepository {
	t.Helper()

	catalogRepo := repo.NewInMemoryCatalogRepository()
	handler.SetCatalogRepo(catalogRepo)
	handler.SetRecordSchema(models.SchemaGeneric)
	handler.SetDashboardService(dashboard.NewService(batchRepo, recordRepo, catalogRepo, dashboard.DefaultAggregatorConfig()))

	t.Cleanup(func() {
		clearAllBatches()
		handler.SetCatalogRepo(nil)
		handler.SetRecordSchema(models.SchemaGraded)
		handler.SetDashboardService(dashboard.NewService(batchRepo, recordRepo, nil, dashboard.DefaultAggregatorConfig()))
	})
	return catalogRepo
}

func TestCreateRecordHandler_GenericSchema(t *testing.T) {
	r := api.NewRouter()
	catalogRepo := switchToGenericSchema(t)

	product, err := catalogRepo.Create(models.Product{Description: "Huevo AA", UnitCode: "und"})
	if err != nil {
		t.Fatalf("error seeding catalog: %v", err)
	}

	w := createBatch(r, handler.BatchRequest{BirdCount: 100, StartDate: daysAgo(10)})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var batch handler.BatchResponse
	json.NewDecoder(w.Body).Decode(&batch)

	rw := createRecord(r, handler.RecordRequest{
		BatchID:     batch.Id,
		Date:        todayAt(9),
		ProductCode: product.Code,
		Quantity:    90,
	})
	if rw.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", rw.Code)
	}

	dw := authorizedGet(r, "/dashboard")
	var data dashboard.DashboardData
	if err := json.NewDecoder(dw.Body).Decode(&data); err != nil {
		t.Fatalf("error decoding dashboard: %v", err)
	}

	if data.Kpis.TodayProduction == nil || *data.Kpis.TodayProduction != 90 {
		t.Errorf("expected todayProduction 90, got %v", data.Kpis.TodayProduction)
	}
	if len(data.Classification) != 1 || data.Classification[0].Classification != "Huevo AA" {
		t.Errorf("expected one Huevo AA classification entry, got %+v", data.Classification)
	}
}

func TestCreateRecordHandler_GenericSchemaMissingProduct(t *testing.T) {
	r := api.NewRouter()
	switchToGenericSchema(t)

	w := createBatch(r, handler.BatchRequest{BirdCount: 50, StartDate: daysAgo(2)})
	var batch handler.BatchResponse
	json.NewDecoder(w.Body).Decode(&batch)

	rw := createRecord(r, handler.RecordRequest{
		BatchID: batch.Id,
		Date:    todayAt(9),
	})
	if rw.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request without a product code, got %d", rw.Code)
	}
}

func TestProductHandlers_GenericSchema(t *testing.T) {
	r := api.NewRouter()
	switchToGenericSchema(t)

	w := createProduct(r, handler.ProductRequest{Description: "Alimento concentrado", UnitCode: "kg"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.Code == 0 {
		t.Error("expected the store to assign a product code")
	}

	listW := authorizedGet(r, "/products")
	if listW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", listW.Code)
	}
	var products []handler.ProductResponse
	if err := json.NewDecoder(listW.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	if len(products) != 1 || products[0].Description != "Alimento concentrado" {
		t.Errorf("unexpected product list: %+v", products)
	}
}
