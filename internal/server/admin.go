package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

func (s *Server) handleAdminListRequests(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := getPaging(r, adminDefaultLimit, adminMaxLimit)

	filter := repository.RequestFilter{
		Status:        r.URL.Query().Get("status"),
		Type:          r.URL.Query().Get("type"),
		ResidentQuery: r.URL.Query().Get("resident"),
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := storage.ParseDay(fromStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'from' date. Use YYYY-MM-DD")
			return
		}
		filter.ScheduledFrom = from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := storage.ParseDay(toStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'to' date. Use YYYY-MM-DD")
			return
		}
		filter.ScheduledTo = to
	}

	requests, total, err := s.lifecycle.ListRequests(r.Context(), filter, limit, offset)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, buildPaged(requests, page, limit, total))
}

func (s *Server) handleAdminSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var scheduleRequest struct {
		ScheduledDate string `json:"scheduled_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&scheduleRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := storage.ParseDay(scheduleRequest.ScheduledDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	req, err := s.lifecycle.AdminSchedule(r.Context(), id, date)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleAdminSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var statusRequest struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := s.lifecycle.AdminSetStatus(r.Context(), id, statusRequest.Status)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		respondError(w, http.StatusBadRequest, "Missing 'date' parameter")
		return
	}
	date, err := storage.ParseDay(dateStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	info, err := s.lifecycle.Capacity(r.Context(), date)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// handlePaybackReport defaults to the trailing 30 days when no window is
// given.
func (s *Server) handlePaybackReport(w http.ResponseWriter, r *http.Request) {
	// day-aligned bounds in the same zone ParseDay uses
	today := storage.DayStart(time.Now())
	to := today.AddDate(0, 0, 1)
	from := today.AddDate(0, 0, -30)

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := storage.ParseDay(fromStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'from' date. Use YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := storage.ParseDay(toStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'to' date. Use YYYY-MM-DD")
			return
		}
		// make the upper bound inclusive of the named day
		to = parsed.AddDate(0, 0, 1)
	}

	report, err := s.ledger.Report(r.Context(), from, to)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
