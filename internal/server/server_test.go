package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ecocollect/waste-service/internal/repository"
	mock_server "github.com/ecocollect/waste-service/internal/server/mocks"
	"github.com/ecocollect/waste-service/internal/storage"
)

type serverFixture struct {
	scheduler     *mock_server.MockSchedulerService
	lifecycle     *mock_server.MockLifecycleService
	ledger        *mock_server.MockLedgerService
	notifications *mock_server.MockNotificationService
	users         *mock_server.MockUserRepo
	srv           *Server
}

func newServerFixture(t *testing.T, ctrl *gomock.Controller) *serverFixture {
	t.Helper()
	f := &serverFixture{
		scheduler:     mock_server.NewMockSchedulerService(ctrl),
		lifecycle:     mock_server.NewMockLifecycleService(ctrl),
		ledger:        mock_server.NewMockLedgerService(ctrl),
		notifications: mock_server.NewMockNotificationService(ctrl),
		users:         mock_server.NewMockUserRepo(ctrl),
	}
	f.srv = New(f.scheduler, f.lifecycle, f.ledger, f.notifications, f.users, nil, zap.NewNop())
	return f
}

func testResident() *repository.User {
	return &repository.User{
		ID:    uuid.New(),
		Email: "resident@example.com",
		Name:  "Resident",
		Role:  "resident",
	}
}

// authedRequest builds a request carrying the user the auth middleware
// would have resolved.
func authedRequest(user *repository.User, method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), userContextKey, user)
	return req.WithContext(ctx)
}

func withID(req *http.Request, id uuid.UUID) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id.String()})
}

func TestHandleCreateRequest(t *testing.T) {
	user := testResident()

	t.Run("successful creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		placed := &storage.PickupRequest{
			ID:            uuid.New(),
			ResidentID:    user.ID,
			Type:          "bulky",
			Status:        storage.StatusScheduled,
			ScheduledDate: "2025-05-01",
		}
		f.scheduler.EXPECT().PlaceRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p storage.PlaceParams) (*storage.PickupRequest, error) {
				assert.Equal(t, user.ID, p.ResidentID)
				assert.Equal(t, "bulky", p.Type)
				assert.Equal(t, "2025-05-01", storage.FormatDay(p.PreferredDate))
				return placed, nil
			})

		body := []byte(`{"type":"bulky","description":"sofa","preferred_date":"2025-05-01"}`)
		req := authedRequest(user, http.MethodPost, "/api/special-requests", body)
		rec := httptest.NewRecorder()

		f.srv.handleCreateRequest(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got storage.PickupRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, placed.ID, got.ID)
		assert.Equal(t, storage.StatusScheduled, got.Status)
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		body := []byte(`{"type":"bulky","preferred_date":"01.05.2025"}`)
		req := authedRequest(user, http.MethodPost, "/api/special-requests", body)
		rec := httptest.NewRecorder()

		f.srv.handleCreateRequest(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.scheduler.EXPECT().PlaceRequest(gomock.Any(), gomock.Any()).
			Return(nil, &storage.ValidationError{Fields: map[string]string{"type": "must be bulky or ewaste"}})

		body := []byte(`{"type":"hazardous","preferred_date":"2025-05-01"}`)
		req := authedRequest(user, http.MethodPost, "/api/special-requests", body)
		rec := httptest.NewRecorder()

		f.srv.handleCreateRequest(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var got struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "validation failed", got.Error)
		assert.Contains(t, got.Fields, "type")
	})

	t.Run("horizon exhausted maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.scheduler.EXPECT().PlaceRequest(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrCapacityExhausted)

		body := []byte(`{"type":"bulky","preferred_date":"2025-05-01"}`)
		req := authedRequest(user, http.MethodPost, "/api/special-requests", body)
		rec := httptest.NewRecorder()

		f.srv.handleCreateRequest(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleReviseRequest(t *testing.T) {
	user := testResident()

	t.Run("revise preferred date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		revised := &storage.PickupRequest{ID: id, Status: storage.StatusScheduled}
		f.scheduler.EXPECT().ReviseRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p storage.ReviseParams) (*storage.PickupRequest, error) {
				assert.Equal(t, id, p.ID)
				assert.Equal(t, user.ID, p.ResidentID)
				require.NotNil(t, p.PreferredDate)
				assert.Equal(t, "2025-05-02", storage.FormatDay(*p.PreferredDate))
				assert.Nil(t, p.Description)
				return revised, nil
			})

		body := []byte(`{"preferred_date":"2025-05-02"}`)
		req := withID(authedRequest(user, http.MethodPatch, "/api/special-requests/"+id.String(), body), id)
		rec := httptest.NewRecorder()

		f.srv.handleReviseRequest(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		req := authedRequest(user, http.MethodPatch, "/api/special-requests/not-a-uuid", []byte(`{}`))
		req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
		rec := httptest.NewRecorder()

		f.srv.handleReviseRequest(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCancelRequest(t *testing.T) {
	user := testResident()

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		f.scheduler.EXPECT().CancelRequest(gomock.Any(), id, user.ID).
			Return(nil, repository.ErrObjectNotFound)

		req := withID(authedRequest(user, http.MethodDelete, "/api/special-requests/"+id.String(), nil), id)
		rec := httptest.NewRecorder()

		f.srv.handleCancelRequest(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("already canceled maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		f.scheduler.EXPECT().CancelRequest(gomock.Any(), id, user.ID).
			Return(nil, storage.ErrInvalidTransition)

		req := withID(authedRequest(user, http.MethodDelete, "/api/special-requests/"+id.String(), nil), id)
		rec := httptest.NewRecorder()

		f.srv.handleCancelRequest(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleProbeAvailability(t *testing.T) {
	user := testResident()

	t.Run("explicit start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.scheduler.EXPECT().ProbeAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from time.Time) ([]string, error) {
				assert.Equal(t, "2025-05-01", storage.FormatDay(from))
				return []string{"2025-05-01", "2025-05-02"}, nil
			})

		req := authedRequest(user, http.MethodGet, "/api/special-requests/availability?date=2025-05-01", nil)
		rec := httptest.NewRecorder()

		f.srv.handleProbeAvailability(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			AvailableDates []string `json:"available_dates"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []string{"2025-05-01", "2025-05-02"}, got.AvailableDates)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		req := authedRequest(user, http.MethodGet, "/api/special-requests/availability?date=soon", nil)
		rec := httptest.NewRecorder()

		f.srv.handleProbeAvailability(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleListRequests(t *testing.T) {
	user := testResident()

	t.Run("paginates with resident defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.scheduler.EXPECT().ListRequests(gomock.Any(), user.ID, 10, 10).
			Return([]*storage.PickupRequest{{ID: uuid.New()}}, 21, nil)

		req := authedRequest(user, http.MethodGet, "/api/special-requests?page=2", nil)
		rec := httptest.NewRecorder()

		f.srv.handleListRequests(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Meta pageMeta `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.Meta.Page)
		assert.Equal(t, 21, got.Meta.Total)
		assert.Equal(t, 3, got.Meta.Pages)
		assert.True(t, got.Meta.HasNext)
		assert.True(t, got.Meta.HasPrev)
	})
}

func TestHandleCompleteSubmission(t *testing.T) {
	user := testResident()

	t.Run("credited completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		result := &storage.CompletionResult{
			Submission: &storage.RecyclableSubmission{ID: id, Status: storage.SubmissionCompleted},
			Credited:   true,
		}
		f.ledger.EXPECT().CompleteSubmission(gomock.Any(), id, user.ID).Return(result, nil)

		req := withID(authedRequest(user, http.MethodPost, "/api/recyclables/"+id.String()+"/complete", nil), id)
		rec := httptest.NewRecorder()

		f.srv.handleCompleteSubmission(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("credit failure degrades to 502 with payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		result := &storage.CompletionResult{
			Submission: &storage.RecyclableSubmission{ID: id, Status: storage.SubmissionCompleted},
			Credited:   false,
			CreditErr:  "ledger down",
		}
		f.ledger.EXPECT().CompleteSubmission(gomock.Any(), id, user.ID).Return(result, nil)

		req := withID(authedRequest(user, http.MethodPost, "/api/recyclables/"+id.String()+"/complete", nil), id)
		rec := httptest.NewRecorder()

		f.srv.handleCompleteSubmission(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		var got storage.CompletionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.False(t, got.Credited)
		assert.Equal(t, "ledger down", got.CreditErr)
	})

	t.Run("second completion conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		f.ledger.EXPECT().CompleteSubmission(gomock.Any(), id, user.ID).
			Return(nil, storage.ErrAlreadyCompleted)

		req := withID(authedRequest(user, http.MethodPost, "/api/recyclables/"+id.String()+"/complete", nil), id)
		rec := httptest.NewRecorder()

		f.srv.handleCompleteSubmission(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandleAdminSchedule(t *testing.T) {
	admin := &repository.User{ID: uuid.New(), Email: "admin@example.com", Role: "admin"}

	t.Run("full day conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		f.lifecycle.EXPECT().AdminSchedule(gomock.Any(), id, gomock.Any()).
			Return(nil, storage.ErrCapacityFull)

		body := []byte(`{"scheduled_date":"2025-05-01"}`)
		req := withID(authedRequest(admin, http.MethodPatch, "/api/admin/special-requests/"+id.String()+"/schedule", body), id)
		rec := httptest.NewRecorder()

		f.srv.handleAdminSchedule(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("schedules onto a free day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		id := uuid.New()
		scheduled := &storage.PickupRequest{ID: id, Status: storage.StatusScheduled, ScheduledDate: "2025-05-01"}
		f.lifecycle.EXPECT().AdminSchedule(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, date time.Time) (*storage.PickupRequest, error) {
				assert.Equal(t, "2025-05-01", storage.FormatDay(date))
				return scheduled, nil
			})

		body := []byte(`{"scheduled_date":"2025-05-01"}`)
		req := withID(authedRequest(admin, http.MethodPatch, "/api/admin/special-requests/"+id.String()+"/schedule", body), id)
		rec := httptest.NewRecorder()

		f.srv.handleAdminSchedule(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandleCapacity(t *testing.T) {
	admin := &repository.User{ID: uuid.New(), Role: "admin"}

	t.Run("missing date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		req := authedRequest(admin, http.MethodGet, "/api/admin/capacity", nil)
		rec := httptest.NewRecorder()

		f.srv.handleCapacity(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reports the day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.lifecycle.EXPECT().Capacity(gomock.Any(), gomock.Any()).
			Return(&storage.CapacityInfo{Date: "2025-05-01", ScheduledCount: 4, MaxPerDay: 20, Remaining: 16}, nil)

		req := authedRequest(admin, http.MethodGet, "/api/admin/capacity?date=2025-05-01", nil)
		rec := httptest.NewRecorder()

		f.srv.handleCapacity(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got storage.CapacityInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 16, got.Remaining)
	})
}

func TestHandleHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newServerFixture(t, ctrl)

	// served outside the /api subrouter, so no credentials are needed
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	f.srv.setupRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "waste-service", got["service"])
	_, err := time.Parse(time.RFC3339, got["time"])
	assert.NoError(t, err)
}

func TestHandlePaybackReport(t *testing.T) {
	admin := &repository.User{ID: uuid.New(), Role: "admin"}

	t.Run("default window is day aligned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.ledger.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) (*storage.PaybackReport, error) {
				assert.True(t, from.Equal(storage.DayStart(from)))
				assert.True(t, to.Equal(storage.DayStart(to)))
				assert.True(t, to.Equal(from.AddDate(0, 0, 31)))
				return &storage.PaybackReport{}, nil
			})

		req := authedRequest(admin, http.MethodGet, "/api/admin/reports/paybacks", nil)
		rec := httptest.NewRecorder()

		f.srv.handlePaybackReport(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit window includes the named to day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.ledger.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) (*storage.PaybackReport, error) {
				assert.Equal(t, "2025-05-01", storage.FormatDay(from))
				assert.Equal(t, "2025-06-01", storage.FormatDay(to))
				return &storage.PaybackReport{}, nil
			})

		req := authedRequest(admin, http.MethodGet, "/api/admin/reports/paybacks?from=2025-05-01&to=2025-05-31", nil)
		rec := httptest.NewRecorder()

		f.srv.handlePaybackReport(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid from date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		req := authedRequest(admin, http.MethodGet, "/api/admin/reports/paybacks?from=31.05.2025", nil)
		rec := httptest.NewRecorder()

		f.srv.handlePaybackReport(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRespondDomainError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newServerFixture(t, ctrl)

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", repository.ErrObjectNotFound, http.StatusNotFound},
		{"capacity exhausted", storage.ErrCapacityExhausted, http.StatusConflict},
		{"capacity full", storage.ErrCapacityFull, http.StatusConflict},
		{"invalid transition", storage.ErrInvalidTransition, http.StatusConflict},
		{"invalid status", storage.ErrInvalidStatus, http.StatusConflict},
		{"already completed", storage.ErrAlreadyCompleted, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.srv.respondDomainError(rec, tc.err)
			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newServerFixture(t, ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := f.srv.requireAdmin(next)

	t.Run("resident is rejected", func(t *testing.T) {
		req := authedRequest(testResident(), http.MethodGet, "/api/admin/capacity", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		admin := &repository.User{ID: uuid.New(), Role: "admin"}
		req := authedRequest(admin, http.MethodGet, "/api/admin/capacity", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestBasicAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		require.NotNil(t, user)
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/special-requests", nil)
		rec := httptest.NewRecorder()
		f.srv.basicAuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("valid credentials resolve the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		user := testResident()
		f.users.EXPECT().Authenticate(gomock.Any(), user.Email, "secret").Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/special-requests", nil)
		req.SetBasicAuth(user.Email, "secret")
		rec := httptest.NewRecorder()
		f.srv.basicAuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newServerFixture(t, ctrl)

		f.users.EXPECT().Authenticate(gomock.Any(), "ghost@example.com", "nope").
			Return(nil, repository.ErrObjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/special-requests", nil)
		req.SetBasicAuth("ghost@example.com", "nope")
		rec := httptest.NewRecorder()
		f.srv.basicAuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
