package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"injury-report-service/internal/domain"
	"injury-report-service/internal/poller"
	"injury-report-service/internal/report"
)

// ReportSource supplies the latest report and the poller's health.
type ReportSource interface {
	Latest() *report.Report
	Status() poller.Status
}

// Handler wires HTTP routes to the latest aggregation report.
type Handler struct {
	reports ReportSource
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(reports ReportSource, logger *slog.Logger) *Handler {
	return &Handler{reports: reports, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/report":
		h.Report(w, r)
	case strings.HasPrefix(r.URL.Path, "/report/"):
		h.SportReport(w, r)
	case r.URL.Path == "/changes":
		h.Changes(w, r)
	case r.URL.Path == "/impact":
		h.Impact(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	status := h.reports.Status()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Report serves the latest full aggregation report.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rep, h.logger)
}

// SportReport serves one sport's section of the latest report.
func (h *Handler) SportReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest(w, r)
	if !ok {
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/report/")
	sport, ok := domain.ParseSport(raw)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown sport", h.logger)
		return
	}
	section := rep.ForSport(sport)
	if section == nil {
		writeError(w, r, http.StatusNotFound, "sport not covered by this run", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, section, h.logger)
}

// Changes serves the status changes detected by the latest run.
func (h *Handler) Changes(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest(w, r)
	if !ok {
		return
	}
	changes := rep.Changes()
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":  rep.RunID,
		"count":   len(changes),
		"changes": changes,
	}, h.logger)
}

// Impact serves the urgent entries: players on teams playing today.
func (h *Handler) Impact(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest(w, r)
	if !ok {
		return
	}
	impact := rep.TodayImpact()
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id": rep.RunID,
		"count":  len(impact),
		"impact": impact,
	}, h.logger)
}

// latest fetches the current report, answering 503 before the first
// completed run.
func (h *Handler) latest(w http.ResponseWriter, r *http.Request) (*report.Report, bool) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return nil, false
	}
	rep := h.reports.Latest()
	if rep == nil {
		writeError(w, r, http.StatusServiceUnavailable, "no report yet", h.logger)
		return nil, false
	}
	return rep, true
}
