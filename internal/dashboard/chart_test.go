package dashboard

import (
	"testing"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

func TestChartGroupsByDayAscending(t *testing.T) {
	records := []models.ProductionRecord{
		gradedRecord(1, testNow, map[models.Grade]int{models.GradeAA: 100}),
		gradedRecord(2, testNow, map[models.Grade]int{models.GradeA: 50}),
		gradedRecord(1, testNow.AddDate(0, 0, -2), map[models.Grade]int{models.GradeAA: 80}),
		gradedRecord(1, testNow.AddDate(0, 0, -1), map[models.Grade]int{models.GradeAA: 90}),
	}

	points := deriveChart(records, gradedAggregator())

	want := []ChartPoint{
		{Date: "13/03/2025", Total: 80},
		{Date: "14/03/2025", Total: 90},
		{Date: "15/03/2025", Total: 150},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("point %d: expected %+v, got %+v", i, want[i], p)
		}
	}
}

func TestChartEmptyWithoutRecords(t *testing.T) {
	points := deriveChart(nil, gradedAggregator())
	if points == nil || len(points) != 0 {
		t.Fatalf("expected empty slice, got %v", points)
	}
}

func TestChartGenericSkipsNonOutputRows(t *testing.T) {
	cfg := DefaultAggregatorConfig()
	records := []models.ProductionRecord{
		genericRecord(1, testNow, 1, 120),
		genericRecord(1, testNow, cfg.FeedCode, 40),
		genericRecord(1, testNow, 4242, 999), // unclassifiable
	}

	points := deriveChart(records, genericAggregator())

	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].Total != 120 {
		t.Errorf("expected total 120, got %v", points[0].Total)
	}
}

func TestChartMergesRecordsAtDifferentHoursOfOneDay(t *testing.T) {
	morning := testNow.Add(-4 * time.Hour)
	records := []models.ProductionRecord{
		gradedRecord(1, morning, map[models.Grade]int{models.GradeAA: 30}),
		gradedRecord(1, testNow, map[models.Grade]int{models.GradeAA: 70}),
	}

	points := deriveChart(records, gradedAggregator())

	if len(points) != 1 {
		t.Fatalf("expected a single merged day, got %d points", len(points))
	}
	if points[0].Total != 100 {
		t.Errorf("expected 100, got %v", points[0].Total)
	}
}
