//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

type SchedulerService interface {
	PlaceRequest(ctx context.Context, p storage.PlaceParams) (*storage.PickupRequest, error)
	ReviseRequest(ctx context.Context, p storage.ReviseParams) (*storage.PickupRequest, error)
	CancelRequest(ctx context.Context, id, residentID uuid.UUID) (*storage.PickupRequest, error)
	ProbeAvailability(ctx context.Context, from time.Time) ([]string, error)
	ListRequests(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*storage.PickupRequest, int, error)
}

type LifecycleService interface {
	AdminSchedule(ctx context.Context, id uuid.UUID, date time.Time) (*storage.PickupRequest, error)
	AdminSetStatus(ctx context.Context, id uuid.UUID, status string) (*storage.PickupRequest, error)
	Capacity(ctx context.Context, date time.Time) (*storage.CapacityInfo, error)
	ListRequests(ctx context.Context, filter repository.RequestFilter, limit, offset int) ([]*storage.PickupRequest, int, error)
}

type LedgerService interface {
	CreateSubmission(ctx context.Context, residentID uuid.UUID, items []storage.RecyclableItem) (*storage.RecyclableSubmission, error)
	UpdateSubmission(ctx context.Context, p storage.UpdateSubmissionParams) (*storage.RecyclableSubmission, error)
	ListSubmissions(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*storage.RecyclableSubmission, int, error)
	CompleteSubmission(ctx context.Context, id, residentID uuid.UUID) (*storage.CompletionResult, error)
	Receipt(ctx context.Context, id, residentID uuid.UUID) (*storage.Receipt, error)
	Report(ctx context.Context, from, to time.Time) (*storage.PaybackReport, error)
}

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*storage.Notification, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type UserRepo interface {
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
}

type Server struct {
	scheduler     SchedulerService
	lifecycle     LifecycleService
	ledger        LedgerService
	notifications NotificationService
	users         UserRepo
	server        *http.Server
	AuditManager  *AuditManager
	logger        *zap.Logger
}

func New(
	scheduler SchedulerService,
	lifecycle LifecycleService,
	ledger LedgerService,
	notifications NotificationService,
	users UserRepo,
	auditManager *AuditManager,
	logger *zap.Logger,
) *Server {
	return &Server{
		scheduler:     scheduler,
		lifecycle:     lifecycle,
		ledger:        ledger,
		notifications: notifications,
		users:         users,
		AuditManager:  auditManager,
		logger:        logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("http server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.auditLogMiddleware)
	api.Use(s.basicAuthMiddleware)

	// availability is registered before {id} so gorilla does not swallow
	// it as a path variable
	api.HandleFunc("/special-requests/availability", s.handleProbeAvailability).Methods(http.MethodGet)
	api.HandleFunc("/special-requests", s.handleCreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/special-requests", s.handleListRequests).Methods(http.MethodGet)
	api.HandleFunc("/special-requests/{id}", s.handleReviseRequest).Methods(http.MethodPatch)
	api.HandleFunc("/special-requests/{id}", s.handleCancelRequest).Methods(http.MethodDelete)

	api.HandleFunc("/recyclables", s.handleCreateSubmission).Methods(http.MethodPost)
	api.HandleFunc("/recyclables", s.handleListSubmissions).Methods(http.MethodGet)
	api.HandleFunc("/recyclables/{id}", s.handleUpdateSubmission).Methods(http.MethodPatch)
	api.HandleFunc("/recyclables/{id}/complete", s.handleCompleteSubmission).Methods(http.MethodPost)
	api.HandleFunc("/recyclables/{id}/receipt", s.handleReceipt).Methods(http.MethodGet)

	api.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", s.handleMarkNotificationRead).Methods(http.MethodPatch)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(s.requireAdmin)
	admin.HandleFunc("/special-requests", s.handleAdminListRequests).Methods(http.MethodGet)
	admin.HandleFunc("/special-requests/{id}/schedule", s.handleAdminSchedule).Methods(http.MethodPatch)
	admin.HandleFunc("/special-requests/{id}/status", s.handleAdminSetStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/capacity", s.handleCapacity).Methods(http.MethodGet)
	admin.HandleFunc("/reports/paybacks", s.handlePaybackReport).Methods(http.MethodGet)

	return router
}

// handleHealth is the unauthenticated liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "waste-service",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError translates domain sentinels into HTTP statuses.
// Validation gets field detail, missing entities 404, illegal state or
// capacity conflicts 409, everything else 500.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	var vErr *storage.ValidationError
	if errors.As(err, &vErr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrCapacityExhausted),
		errors.Is(err, storage.ErrCapacityFull),
		errors.Is(err, storage.ErrInvalidTransition),
		errors.Is(err, storage.ErrInvalidStatus),
		errors.Is(err, storage.ErrAlreadyCompleted):
		respondError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
