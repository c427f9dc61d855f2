package dashboard

import (
	"math"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

func deriveKpis(batches []models.Batch, records []models.ProductionRecord, today Window, weekStart time.Time, agg *Aggregator) KpiSummary {
	totalBirds := 0
	for _, b := range batches {
		totalBirds += b.BirdCount
	}

	var kpis KpiSummary

	// Today's production: nil when no output record exists for today, so
	// "nobody reported yet" never renders as a production of zero.
	todayOutput := 0.0
	todayHasOutput := false
	for _, rec := range records {
		if today.Contains(rec.Date) && agg.IsOutputRecord(rec) {
			todayOutput += agg.TotalOutput(rec)
			todayHasOutput = true
		}
	}
	if todayHasOutput {
		kpis.TodayProduction = &todayOutput
	}

	if todayHasOutput && totalBirds > 0 {
		rate := math.Round(todayOutput/float64(totalBirds)*1000) / 10
		kpis.ProductionRate = &rate
	}

	// 7-day window: mortality sum and feed conversion ratio over the same
	// classified rows.
	deaths := 0
	feed := 0.0
	eggMass := 0.0
	weekHasRecords := false
	for _, rec := range records {
		if rec.Date.Before(weekStart) || !agg.IsClassified(rec) {
			continue
		}
		weekHasRecords = true
		deaths += agg.MortalityCount(rec)
		feed += agg.FeedAmount(rec)
		eggMass += agg.OutputMass(rec)
	}
	if weekHasRecords {
		kpis.WeeklyMortality = &deaths
	}
	if eggMass > 0 {
		fcr := math.Round(feed/eggMass*100) / 100
		kpis.FCR = &fcr
	}

	return kpis
}
