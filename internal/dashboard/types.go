package dashboard

// KpiSummary holds the four headline metrics. A nil field means "no data",
// which is distinct from zero: todayProduction is nil when no qualifying
// record exists for today, never 0.
type KpiSummary struct {
	TodayProduction *float64 `json:"todayProduction"`
	ProductionRate  *float64 `json:"productionRate"`
	WeeklyMortality *int     `json:"weeklyMortality"`
	FCR             *float64 `json:"fcr"`
}

// ChartPoint is one day's total output in the 30-day series.
type ChartPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ClassificationEntry is today's output count for one grade or catalog
// category. Zero-count entries are dropped.
type ClassificationEntry struct {
	Classification string  `json:"classification"`
	Count          float64 `json:"count"`
}

// Severity orders alerts: error before warning before info.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

var severityRank = map[Severity]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityInfo:    2,
}

// Alert is one rule-based operational notice.
type Alert struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// DashboardData is the full derivation result handed to the presentation
// layer. All four artifacts come from one immutable snapshot.
type DashboardData struct {
	Kpis           KpiSummary            `json:"kpis"`
	Chart          []ChartPoint          `json:"chart"`
	Classification []ClassificationEntry `json:"classification"`
	Alerts         []Alert               `json:"alerts"`
}
