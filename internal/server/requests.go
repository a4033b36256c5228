package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecocollect/waste-service/internal/storage"
)

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var createRequest struct {
		Type          string `json:"type"`
		Description   string `json:"description"`
		PreferredDate string `json:"preferred_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	preferred, err := storage.ParseDay(createRequest.PreferredDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	req, err := s.scheduler.PlaceRequest(r.Context(), storage.PlaceParams{
		ResidentID:    user.ID,
		Type:          createRequest.Type,
		Description:   createRequest.Description,
		PreferredDate: preferred,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, req)
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	page, limit, offset := getPaging(r, residentDefaultLimit, residentMaxLimit)

	requests, total, err := s.scheduler.ListRequests(r.Context(), user.ID, limit, offset)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, buildPaged(requests, page, limit, total))
}

func (s *Server) handleReviseRequest(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var reviseRequest struct {
		Description   *string `json:"description"`
		PreferredDate *string `json:"preferred_date"`
		Cancel        bool    `json:"cancel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reviseRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := storage.ReviseParams{
		ID:          id,
		ResidentID:  user.ID,
		Description: reviseRequest.Description,
		Cancel:      reviseRequest.Cancel,
	}
	if reviseRequest.PreferredDate != nil {
		preferred, err := storage.ParseDay(*reviseRequest.PreferredDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		params.PreferredDate = &preferred
	}

	req, err := s.scheduler.ReviseRequest(r.Context(), params)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleCancelRequest(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	req, err := s.scheduler.CancelRequest(r.Context(), id, user.ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleProbeAvailability(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := storage.ParseDay(dateStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
			return
		}
		from = parsed
	}

	days, err := s.scheduler.ProbeAvailability(r.Context(), from)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"available_dates": days,
	})
}
