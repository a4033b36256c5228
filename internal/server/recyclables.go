package server

import (
	"encoding/json"
	"net/http"

	"github.com/ecocollect/waste-service/internal/storage"
)

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var createRequest struct {
		Items []storage.RecyclableItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := s.ledger.CreateSubmission(r.Context(), user.ID, createRequest.Items)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	page, limit, offset := getPaging(r, residentDefaultLimit, residentMaxLimit)

	subs, total, err := s.ledger.ListSubmissions(r.Context(), user.ID, limit, offset)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, buildPaged(subs, page, limit, total))
}

func (s *Server) handleUpdateSubmission(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	var updateRequest struct {
		Items  []storage.RecyclableItem `json:"items"`
		Cancel bool                     `json:"cancel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := s.ledger.UpdateSubmission(r.Context(), storage.UpdateSubmissionParams{
		ID:         id,
		ResidentID: user.ID,
		Items:      updateRequest.Items,
		Cancel:     updateRequest.Cancel,
	})
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sub)
}

// handleCompleteSubmission returns 200 when the payback credited and 502
// with the same payload when the submission closed but the credit write
// failed. The caller sees the receipt either way.
func (s *Server) handleCompleteSubmission(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	result, err := s.ledger.CompleteSubmission(r.Context(), id, user.ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	status := http.StatusOK
	if !result.Credited {
		status = http.StatusBadGateway
	}
	respondJSON(w, status, result)
}

func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	receipt, err := s.ledger.Receipt(r.Context(), id, user.ID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}
