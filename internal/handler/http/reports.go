package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog/internal/utils"
	"github.com/MKhiriev/go-catalog/models"
)

func (h *Handler) ordersReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.ReportService.OrdersReport(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeRows(w, rows)
}

func (h *Handler) criticalStockReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.ReportService.CriticalStockReport(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeRows(w, rows)
}

// writeRows answers with a JSON array of rows; no rows is "[]".
func writeRows(w http.ResponseWriter, rows []models.Row) {
	if rows == nil {
		rows = []models.Row{}
	}
	utils.WriteJSON(w, rows, http.StatusOK)
}
