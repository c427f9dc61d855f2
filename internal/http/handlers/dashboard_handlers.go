package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// GetDashboardHandler godoc
// @Summary Derive the dashboard snapshot
// @Description KPIs, 30-day production chart, today's classification and alerts for the active batches.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboard.DashboardData
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	data, err := dashboardSvc.GetDashboardData()
	if err != nil {
		log.Printf("Dashboard derivation failed: %v", err)
		http.Error(w, "could not derive dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
