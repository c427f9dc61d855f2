package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// Policy constants of the alert rules. The source system hard-codes both;
// they stay named constants rather than configuration.
const (
	// lowRateThresholdPct is the production rate below which the fleet gets
	// a low-production warning.
	lowRateThresholdPct = 80.0
	// mortalitySpikeFactor is how far above the historical daily average
	// today's deaths must be to raise the high-mortality alert.
	mortalitySpikeFactor = 2.0
	// mortalityMinHistoryDays is the minimum distinct prior days a batch
	// needs before the mortality baseline is considered meaningful.
	mortalityMinHistoryDays = 7
)

func deriveAlerts(batches []models.Batch, records []models.ProductionRecord, today Window, agg *Aggregator) []Alert {
	alerts := []Alert{}

	// Rule 1: batches with no record at all today. This is a presence check,
	// so even an unclassifiable row counts as "reported".
	reportedToday := map[int]bool{}
	for _, rec := range records {
		if today.Contains(rec.Date) {
			reportedToday[rec.BatchID] = true
		}
	}
	for _, b := range batches {
		if !reportedToday[b.ID] {
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("sin-datos-%d", b.ID),
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Corte #%d no tiene datos de producción para hoy.", b.ID),
			})
		}
	}

	// Rule 2: today's deaths spiking above the historical daily average.
	// Batches with a short history or a zero baseline are skipped silently:
	// absence of signal, not an error.
	for _, b := range batches {
		priorByDay := map[time.Time]float64{}
		todayDeaths := 0
		for _, rec := range records {
			if rec.BatchID != b.ID {
				continue
			}
			if today.Contains(rec.Date) {
				todayDeaths += agg.MortalityCount(rec)
				continue
			}
			if rec.Date.Before(today.Start) {
				day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, rec.Date.Location())
				priorByDay[day] += float64(agg.MortalityCount(rec))
			}
		}
		if len(priorByDay) < mortalityMinHistoryDays {
			continue
		}
		daily := make([]float64, 0, len(priorByDay))
		for _, deaths := range priorByDay {
			daily = append(daily, deaths)
		}
		avg, err := stats.Mean(daily)
		if err != nil || avg <= 0 {
			continue
		}
		if float64(todayDeaths) > avg*mortalitySpikeFactor {
			alerts = append(alerts, Alert{
				ID:       fmt.Sprintf("mortalidad-%d", b.ID),
				Severity: SeverityError,
				Message:  fmt.Sprintf("Alta mortalidad en Corte #%d: %d muertes hoy (promedio: %d).", b.ID, todayDeaths, int(math.Round(avg))),
			})
		}
	}

	// Rule 3: fleet-wide production rate below target. A rate of exactly
	// zero is not reported here; rule 1 already covers the batches involved.
	totalBirds := 0
	for _, b := range batches {
		totalBirds += b.BirdCount
	}
	todayOutput := 0.0
	todayHasOutput := false
	for _, rec := range records {
		if today.Contains(rec.Date) && agg.IsOutputRecord(rec) {
			todayOutput += agg.TotalOutput(rec)
			todayHasOutput = true
		}
	}
	if todayHasOutput && totalBirds > 0 {
		rate := todayOutput / float64(totalBirds) * 100
		if rate > 0 && rate < lowRateThresholdPct {
			alerts = append(alerts, Alert{
				ID:       "baja-produccion",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Tasa de producción baja: %.1f%% (objetivo: ≥80%%).", rate),
			})
		}
	}

	// error > warning > info, ties keep discovery order.
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank[alerts[i].Severity] < severityRank[alerts[j].Severity]
	})
	return alerts
}
