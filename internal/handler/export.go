package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/pkordes/travel-planner/internal/domain"
)

// csvHeaders is the first row of every CSV export.
var csvHeaders = []string{
	"trip_id", "trip_title", "trip_start_date", "trip_end_date",
	"stop_position", "stop_location", "arrival_at", "departure_at",
	"activity_title", "activity_category", "activity_cost",
}

// GetExport handles GET /export?format=csv|json. JSON is the default.
// One row per activity; trips and stops without children still get a row.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	format, err := queryString(r, "format")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if format != "" && format != "csv" && format != "json" {
		badRequest(w, `format must be "csv" or "json"`)
		return
	}

	rows, err := s.export.Export(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, r, err, tripNotFound)
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, len(rows))
	for i, row := range rows {
		out[i] = exportRowToResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV buffers the whole export so a Content-Length can be sent.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	//nolint:errcheck // bytes.Buffer writes never fail.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

func exportRowToResponse(r domain.ExportRow) ExportRow {
	return ExportRow{
		TripID:           r.TripID,
		TripTitle:        r.TripTitle,
		TripStartDate:    r.TripStartDate,
		TripEndDate:      r.TripEndDate,
		StopPosition:     r.StopPosition,
		StopLocation:     r.StopLocation,
		ArrivalAt:        r.ArrivalAt,
		DepartureAt:      r.DepartureAt,
		ActivityTitle:    r.ActivityTitle,
		ActivityCategory: r.ActivityCategory,
		ActivityCost:     r.ActivityCost,
	}
}

func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripTitle,
		r.TripStartDate,
		r.TripEndDate,
		r.StopPosition,
		r.StopLocation,
		formatOptionalTime(r.ArrivalAt),
		formatOptionalTime(r.DepartureAt),
		r.ActivityTitle,
		r.ActivityCategory,
		r.ActivityCost,
	}
}

// formatOptionalTime returns t in RFC 3339 UTC, or "" when t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
