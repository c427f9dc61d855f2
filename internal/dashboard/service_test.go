package dashboard

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

var errStoreDown = errors.New("store unavailable")

type failingBatchRepo struct{}

func (failingBatchRepo) ListActive() ([]models.Batch, error)        { return nil, errStoreDown }
func (failingBatchRepo) GetByID(int) (models.Batch, error)          { return models.Batch{}, errStoreDown }
func (failingBatchRepo) Create(models.Batch) (models.Batch, error)  { return models.Batch{}, errStoreDown }
func (failingBatchRepo) Close(int, time.Time) (models.Batch, error) { return models.Batch{}, errStoreDown }

type failingRecordRepo struct{}

func (failingRecordRepo) ListByBatches([]int, time.Time, *time.Time) ([]models.ProductionRecord, error) {
	return nil, errStoreDown
}
func (failingRecordRepo) Create(models.ProductionRecord) (models.ProductionRecord, error) {
	return models.ProductionRecord{}, errStoreDown
}

type failingCatalogRepo struct{}

func (failingCatalogRepo) GetAll() ([]models.Product, error)          { return nil, errStoreDown }
func (failingCatalogRepo) Create(models.Product) (models.Product, error) {
	return models.Product{}, errStoreDown
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func seededService(t *testing.T) (*Service, *repo.InMemoryBatchRepository, *repo.InMemoryRecordRepository) {
	t.Helper()
	batches := repo.NewInMemoryBatchRepository()
	records := repo.NewInMemoryRecordRepository()
	svc := NewService(batches, records, nil, DefaultAggregatorConfig()).WithClock(fixedClock())
	return svc, batches, records
}

func TestServiceEmptyFleetYieldsCanonicalDashboard(t *testing.T) {
	svc, _, records := seededService(t)
	// Residual records without an active batch must not leak in.
	records.Create(gradedRecord(99, testNow, map[models.Grade]int{models.GradeAA: 500}))

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("empty fleet is not an error: %v", err)
	}

	if !reflect.DeepEqual(data, EmptyDashboard()) {
		t.Fatalf("expected canonical empty dashboard, got %+v", data)
	}
	if len(data.Alerts) != 1 || data.Alerts[0].ID != "no-cortes" {
		t.Fatalf("expected the single no-cortes alert, got %+v", data.Alerts)
	}
	if data.Alerts[0].Message != "No hay cortes activos. Crea un corte para comenzar a registrar producción." {
		t.Errorf("unexpected message: %q", data.Alerts[0].Message)
	}
}

func TestServiceBatchFetchFailureYieldsEmptyDashboard(t *testing.T) {
	svc := NewService(failingBatchRepo{}, repo.NewInMemoryRecordRepository(), nil, DefaultAggregatorConfig()).WithClock(fixedClock())

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(data, EmptyDashboard()) {
		t.Fatalf("expected canonical empty dashboard, got %+v", data)
	}
}

func TestServiceRecordFetchFailureIsTerminal(t *testing.T) {
	batches := repo.NewInMemoryBatchRepository()
	batches.Create(models.Batch{BirdCount: 1000, StartDate: testNow.AddDate(0, -1, 0)})
	svc := NewService(batches, failingRecordRepo{}, nil, DefaultAggregatorConfig()).WithClock(fixedClock())

	_, err := svc.GetDashboardData()
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected terminal store error, got %v", err)
	}
}

func TestServiceCatalogFetchFailureIsTerminal(t *testing.T) {
	batches := repo.NewInMemoryBatchRepository()
	batches.Create(models.Batch{BirdCount: 1000, StartDate: testNow.AddDate(0, -1, 0)})
	svc := NewService(batches, repo.NewInMemoryRecordRepository(), failingCatalogRepo{}, DefaultAggregatorConfig()).WithClock(fixedClock())

	_, err := svc.GetDashboardData()
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected terminal store error, got %v", err)
	}
}

func TestServiceDerivesAllArtifactsFromOneSnapshot(t *testing.T) {
	svc, batches, records := seededService(t)
	b, _ := batches.Create(models.Batch{BirdCount: 1000, StartDate: testNow.AddDate(0, -1, 0)})

	rec := gradedRecord(b.ID, testNow, map[models.Grade]int{models.GradeAA: 500, models.GradeA: 320})
	rec.Deaths = intp(1)
	records.Create(rec)

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Kpis.TodayProduction == nil || *data.Kpis.TodayProduction != 820 {
		t.Errorf("expected todayProduction 820, got %v", data.Kpis.TodayProduction)
	}
	if data.Kpis.ProductionRate == nil || *data.Kpis.ProductionRate != 82.0 {
		t.Errorf("expected rate 82.0, got %v", data.Kpis.ProductionRate)
	}
	if len(data.Chart) != 1 || data.Chart[0].Total != 820 {
		t.Errorf("expected one chart point of 820, got %+v", data.Chart)
	}
	if len(data.Classification) != 2 {
		t.Errorf("expected AA and A buckets, got %+v", data.Classification)
	}
	if len(data.Alerts) != 0 {
		t.Errorf("82%% with data today must produce no alerts, got %+v", data.Alerts)
	}
}

func TestServiceGenericSchemaFetchesCatalog(t *testing.T) {
	batches := repo.NewInMemoryBatchRepository()
	records := repo.NewInMemoryRecordRepository()
	catalog := repo.NewInMemoryCatalogRepository()
	for _, p := range testCatalog() {
		catalog.Create(p)
	}
	svc := NewService(batches, records, catalog, DefaultAggregatorConfig()).WithClock(fixedClock())

	b, _ := batches.Create(models.Batch{BirdCount: 1000, StartDate: testNow.AddDate(0, -1, 0)})
	records.Create(genericRecord(b.ID, testNow, 1, 850))

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Kpis.TodayProduction == nil || *data.Kpis.TodayProduction != 850 {
		t.Errorf("expected 850, got %v", data.Kpis.TodayProduction)
	}
	if len(data.Classification) != 1 || data.Classification[0].Classification != "Huevo AA" {
		t.Errorf("expected Huevo AA bucket, got %+v", data.Classification)
	}
}

func TestServiceDerivationIsIdempotent(t *testing.T) {
	svc, batches, records := seededService(t)
	b, _ := batches.Create(models.Batch{BirdCount: 1000, StartDate: testNow.AddDate(0, -1, 0)})
	for i := 1; i <= 10; i++ {
		rec := gradedRecord(b.ID, testNow.AddDate(0, 0, -i), map[models.Grade]int{models.GradeAA: 700, models.GradeB: 20})
		rec.Deaths = intp(2)
		rec.FeedKg = floatp(55)
		records.Create(rec)
	}

	first, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b2, _ := json.Marshal(second)
	if string(a) != string(b2) {
		t.Fatalf("identical snapshots must derive byte-identical results:\n%s\n%s", a, b2)
	}
}

func TestServiceKpiJSONRendersNullNotZero(t *testing.T) {
	svc, batches, _ := seededService(t)
	batches.Create(models.Batch{BirdCount: 1000, StartDate: testNow.AddDate(0, -1, 0)})

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, _ := json.Marshal(data.Kpis)
	for _, field := range []string{"todayProduction", "productionRate", "weeklyMortality", "fcr"} {
		if !strings.Contains(string(out), `"`+field+`":null`) {
			t.Errorf("expected %s to render as null, got %s", field, out)
		}
	}
}
