package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if email, _, ok := r.BasicAuth(); ok {
			entry.UserEmail = email
		}
		if id, ok := mux.Vars(r)["id"]; ok {
			entry.EntityID = id
		}

		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		cw := newCaptureWriter(w)

		next.ServeHTTP(cw, r)

		entry.StatusCode = cw.Status()
		entry.Response = string(cw.Body())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/api/admin/special-requests"):
		if strings.HasSuffix(path, "/schedule") {
			return "handleAdminSchedule"
		}
		if strings.HasSuffix(path, "/status") {
			return "handleAdminSetStatus"
		}
		return "handleAdminListRequests"
	case strings.HasPrefix(path, "/api/admin/capacity"):
		return "handleCapacity"
	case strings.HasPrefix(path, "/api/admin/reports"):
		return "handlePaybackReport"
	case strings.HasPrefix(path, "/api/special-requests/availability"):
		return "handleProbeAvailability"
	case strings.HasPrefix(path, "/api/special-requests"):
		switch method {
		case http.MethodPost:
			return "handleCreateRequest"
		case http.MethodPatch:
			return "handleReviseRequest"
		case http.MethodDelete:
			return "handleCancelRequest"
		default:
			return "handleListRequests"
		}
	case strings.HasPrefix(path, "/api/recyclables"):
		if strings.HasSuffix(path, "/complete") {
			return "handleCompleteSubmission"
		}
		if strings.HasSuffix(path, "/receipt") {
			return "handleReceipt"
		}
		switch method {
		case http.MethodPost:
			return "handleCreateSubmission"
		case http.MethodPatch:
			return "handleUpdateSubmission"
		default:
			return "handleListSubmissions"
		}
	case strings.HasPrefix(path, "/api/notifications"):
		if strings.HasSuffix(path, "/read") {
			return "handleMarkNotificationRead"
		}
		return "handleListNotifications"
	}

	return "unknown"
}
