package dashboard

import (
	"sort"
	"time"

	"github.com/granjasoft/avicola-tracker/internal/models"
)

// chartDateLayout renders day labels as es-CO short dates.
const chartDateLayout = "02/01/2006"

func deriveChart(records []models.ProductionRecord, agg *Aggregator) []ChartPoint {
	byDay := map[time.Time]float64{}
	for _, rec := range records {
		if !agg.IsOutputRecord(rec) {
			continue
		}
		day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, rec.Date.Location())
		byDay[day] += agg.TotalOutput(rec)
	}
	if len(byDay) == 0 {
		return []ChartPoint{}
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]ChartPoint, 0, len(days))
	for _, day := range days {
		points = append(points, ChartPoint{Date: day.Format(chartDateLayout), Total: byDay[day]})
	}
	return points
}
