package dashboard

import "github.com/granjasoft/avicola-tracker/internal/models"

// deriveClassification buckets today's output by grade (graded schema) or by
// catalog description (generic schema), dropping empty buckets. Buckets keep
// a stable order (grade table order, or first appearance in the snapshot) so
// identical snapshots derive identical breakdowns.
func deriveClassification(records []models.ProductionRecord, today Window, agg *Aggregator) []ClassificationEntry {
	var todayRecords []models.ProductionRecord
	for _, rec := range records {
		if today.Contains(rec.Date) {
			todayRecords = append(todayRecords, rec)
		}
	}
	if len(todayRecords) == 0 {
		return []ClassificationEntry{}
	}

	entries := []ClassificationEntry{}

	if todayRecords[0].Schema == models.SchemaGraded {
		for _, g := range models.Grades {
			count := 0
			for _, rec := range todayRecords {
				count += rec.Eggs[g]
			}
			if count > 0 {
				entries = append(entries, ClassificationEntry{Classification: models.GradeLabels[g], Count: float64(count)})
			}
		}
		return entries
	}

	byLabel := map[string]float64{}
	var order []string
	for _, rec := range todayRecords {
		label, ok := agg.ClassificationLabel(rec)
		if !ok {
			continue
		}
		if _, seen := byLabel[label]; !seen {
			order = append(order, label)
		}
		byLabel[label] += rec.Quantity
	}
	for _, label := range order {
		if byLabel[label] > 0 {
			entries = append(entries, ClassificationEntry{Classification: label, Count: byLabel[label]})
		}
	}
	return entries
}
