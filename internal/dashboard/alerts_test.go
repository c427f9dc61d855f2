package dashboard

import (
	"strings"
	"testing"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

func TestAlertNoDataTodayPerBatch(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 500), activeBatch(2, 500)}
	records := []models.ProductionRecord{
		gradedRecord(1, testNow, map[models.Grade]int{models.GradeAA: 450}),
	}

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	var noData []Alert
	for _, a := range alerts {
		if strings.HasPrefix(a.ID, "sin-datos-") {
			noData = append(noData, a)
		}
	}
	if len(noData) != 1 {
		t.Fatalf("expected exactly one no-data alert, got %+v", alerts)
	}
	if noData[0].ID != "sin-datos-2" || noData[0].Severity != SeverityInfo {
		t.Errorf("expected info alert for batch 2, got %+v", noData[0])
	}
	if noData[0].Message != "Corte #2 no tiene datos de producción para hoy." {
		t.Errorf("unexpected message: %q", noData[0].Message)
	}
}

// mortalityHistory builds n distinct prior days with deathsPerDay deaths
// each, plus a today record with todayDeaths.
func mortalityHistory(batchID, n, deathsPerDay, todayDeaths int) []models.ProductionRecord {
	var records []models.ProductionRecord
	for i := 1; i <= n; i++ {
		rec := gradedRecord(batchID, testNow.AddDate(0, 0, -i), map[models.Grade]int{models.GradeAA: 400})
		rec.Deaths = intp(deathsPerDay)
		records = append(records, rec)
	}
	today := gradedRecord(batchID, testNow, map[models.Grade]int{models.GradeAA: 400})
	today.Deaths = intp(todayDeaths)
	return append(records, today)
}

func TestAlertHighMortalitySpike(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 500)}
	records := mortalityHistory(1, 10, 2, 5)

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	if len(alerts) == 0 || alerts[0].ID != "mortalidad-1" {
		t.Fatalf("expected mortality alert first, got %+v", alerts)
	}
	if alerts[0].Severity != SeverityError {
		t.Errorf("expected error severity, got %v", alerts[0].Severity)
	}
	if alerts[0].Message != "Alta mortalidad en Corte #1: 5 muertes hoy (promedio: 2)." {
		t.Errorf("unexpected message: %q", alerts[0].Message)
	}
}

func TestAlertMortalityExactDoubleIsNotASpike(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 500)}
	records := mortalityHistory(1, 10, 2, 4) // 4 is not > 2*2

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	for _, a := range alerts {
		if a.ID == "mortalidad-1" {
			t.Fatalf("4 deaths against an average of 2 must not alert: %+v", a)
		}
	}
}

func TestAlertMortalityNeedsSevenDaysOfHistory(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 500)}
	records := mortalityHistory(1, 5, 2, 50)

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	for _, a := range alerts {
		if a.ID == "mortalidad-1" {
			t.Fatalf("5 days of history must never alert regardless of spike: %+v", a)
		}
	}
}

func TestAlertMortalityZeroBaselineIsSkipped(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 500)}
	records := mortalityHistory(1, 10, 0, 8)

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	for _, a := range alerts {
		if a.ID == "mortalidad-1" {
			t.Fatalf("zero historical average must not alert: %+v", a)
		}
	}
}

func TestAlertLowProductionRate(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 1000)}
	records := []models.ProductionRecord{
		gradedRecord(1, testNow, map[models.Grade]int{models.GradeAA: 750}),
	}

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	if len(alerts) != 1 || alerts[0].ID != "baja-produccion" {
		t.Fatalf("expected only the low-rate warning, got %+v", alerts)
	}
	if alerts[0].Severity != SeverityWarning {
		t.Errorf("expected warning severity, got %v", alerts[0].Severity)
	}
	if alerts[0].Message != "Tasa de producción baja: 75.0% (objetivo: ≥80%)." {
		t.Errorf("unexpected message: %q", alerts[0].Message)
	}
}

func TestAlertNoWarningAtOrAboveTarget(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 1000)}
	records := []models.ProductionRecord{
		gradedRecord(1, testNow, map[models.Grade]int{models.GradeAA: 820}),
	}

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	if len(alerts) != 0 {
		t.Fatalf("82%% must not warn, got %+v", alerts)
	}
}

func TestAlertZeroRateIsNotReportedAsLowRate(t *testing.T) {
	batches := []models.Batch{activeBatch(1, 1000)}
	records := []models.ProductionRecord{
		gradedRecord(1, testNow, map[models.Grade]int{}),
	}

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	for _, a := range alerts {
		if a.ID == "baja-produccion" {
			t.Fatalf("rate of exactly 0 must not raise the low-rate warning: %+v", a)
		}
	}
}

func TestAlertsSortedBySeverityWithStableTies(t *testing.T) {
	// Batch 1 spikes (error), fleet rate is low (warning), batches 2 and 3
	// have no data today (two info alerts in discovery order).
	batches := []models.Batch{activeBatch(1, 1000), activeBatch(2, 100), activeBatch(3, 100)}
	records := mortalityHistory(1, 10, 2, 5)

	alerts := deriveAlerts(batches, records, TodayWindow(testNow), gradedAggregator())

	wantIDs := []string{"mortalidad-1", "baja-produccion", "sin-datos-2", "sin-datos-3"}
	if len(alerts) != len(wantIDs) {
		t.Fatalf("expected %d alerts, got %+v", len(wantIDs), alerts)
	}
	for i, id := range wantIDs {
		if alerts[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, alerts[i].ID)
		}
	}
}
