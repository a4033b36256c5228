package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/ecocollect/waste-service/internal/db/mocks"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
	mock_storage "github.com/ecocollect/waste-service/internal/storage/mocks"
)

type schedulerFixture struct {
	db            *mock_database.MockDB
	tx            *mock_database.MockTx
	requests      *mock_storage.MockRequestRepository
	notifications *mock_storage.MockNotificationRepository
	outbox        *mock_storage.MockOutboxTaskRepository
	cache         *mock_storage.MockActiveRequestCache
	scheduler     *storage.Scheduler
}

func newSchedulerFixture(t *testing.T, ctrl *gomock.Controller) *schedulerFixture {
	t.Helper()
	f := &schedulerFixture{
		db:            mock_database.NewMockDB(ctrl),
		tx:            mock_database.NewMockTx(ctrl),
		requests:      mock_storage.NewMockRequestRepository(ctrl),
		notifications: mock_storage.NewMockNotificationRepository(ctrl),
		outbox:        mock_storage.NewMockOutboxTaskRepository(ctrl),
		cache:         mock_storage.NewMockActiveRequestCache(ctrl),
	}
	f.scheduler = storage.NewScheduler(f.db, f.requests, f.notifications, f.outbox, f.cache, 20, zap.NewNop())
	return f
}

// expectCommit wires a successful transaction around the write path.
func (f *schedulerFixture) expectCommit() {
	f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := storage.ParseDay(s)
	require.NoError(t, err)
	return day
}

func TestPlaceRequest(t *testing.T) {
	ctx := context.Background()
	residentID := uuid.New()

	t.Run("preferred date has room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		preferred := mustDay(t, "2025-03-10")
		// three candidates collected, preferred included
		f.requests.EXPECT().CountActiveOn(gomock.Any(), gomock.Any(), uuid.Nil).Return(5, nil).Times(3)

		f.expectCommit()
		f.requests.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, req *repository.PickupRequest) error {
				assert.Equal(t, storage.StatusScheduled, req.Status)
				assert.Equal(t, preferred, req.ScheduledDate)
				assert.Nil(t, req.ConflictNote)
				return nil
			})
		f.notifications.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Set(gomock.Any())

		req, err := f.scheduler.PlaceRequest(ctx, storage.PlaceParams{
			ResidentID:    residentID,
			Type:          storage.TypeBulky,
			Description:   "old sofa",
			PreferredDate: preferred,
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusScheduled, req.Status)
		assert.Equal(t, "2025-03-10", req.ScheduledDate)
		assert.Empty(t, req.Alternatives)
		assert.Empty(t, req.ConflictNote)
	})

	t.Run("one slot below the daily maximum still has room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		preferred := mustDay(t, "2025-03-10")
		f.requests.EXPECT().CountActiveOn(gomock.Any(), gomock.Any(), uuid.Nil).Return(19, nil).Times(3)

		f.expectCommit()
		f.requests.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.notifications.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Set(gomock.Any())

		req, err := f.scheduler.PlaceRequest(ctx, storage.PlaceParams{
			ResidentID:    residentID,
			Type:          storage.TypeEwaste,
			PreferredDate: preferred,
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusScheduled, req.Status)
	})

	t.Run("preferred date full proposes alternatives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		preferred := mustDay(t, "2025-03-10")
		dayAfter := mustDay(t, "2025-03-11")
		f.requests.EXPECT().CountActiveOn(gomock.Any(), preferred, uuid.Nil).Return(20, nil)
		f.requests.EXPECT().CountActiveOn(gomock.Any(), mustDay(t, "2025-03-11"), uuid.Nil).Return(0, nil)
		f.requests.EXPECT().CountActiveOn(gomock.Any(), mustDay(t, "2025-03-12"), uuid.Nil).Return(0, nil)
		f.requests.EXPECT().CountActiveOn(gomock.Any(), mustDay(t, "2025-03-13"), uuid.Nil).Return(0, nil)

		f.expectCommit()
		f.requests.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, req *repository.PickupRequest) error {
				assert.Equal(t, storage.StatusPending, req.Status)
				assert.Equal(t, dayAfter, req.ScheduledDate)
				require.NotNil(t, req.ConflictNote)
				assert.Equal(t, "Preferred date full; proposed alternatives.", *req.ConflictNote)
				return nil
			})
		f.notifications.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Set(gomock.Any())

		req, err := f.scheduler.PlaceRequest(ctx, storage.PlaceParams{
			ResidentID:    residentID,
			Type:          storage.TypeBulky,
			PreferredDate: preferred,
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusPending, req.Status)
		assert.Equal(t, "2025-03-11", req.ScheduledDate)
		assert.Equal(t, []string{"2025-03-11", "2025-03-12", "2025-03-13"}, req.Alternatives)
	})

	t.Run("whole horizon full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		f.requests.EXPECT().CountActiveOn(gomock.Any(), gomock.Any(), uuid.Nil).Return(20, nil).Times(14)

		req, err := f.scheduler.PlaceRequest(ctx, storage.PlaceParams{
			ResidentID:    residentID,
			Type:          storage.TypeBulky,
			PreferredDate: mustDay(t, "2025-03-10"),
		})
		assert.ErrorIs(t, err, storage.ErrCapacityExhausted)
		assert.Nil(t, req)
	})

	t.Run("invalid params create nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		req, err := f.scheduler.PlaceRequest(ctx, storage.PlaceParams{
			ResidentID: residentID,
			Type:       "hazardous",
		})
		require.Error(t, err)
		var vErr *storage.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "type")
		assert.Contains(t, vErr.Fields, "preferred_date")
		assert.Nil(t, req)
	})
}

func TestReviseRequest(t *testing.T) {
	ctx := context.Background()
	residentID := uuid.New()

	t.Run("re-placement excludes own slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		preferred := mustDay(t, "2025-03-10")
		existing := &repository.PickupRequest{
			ID:            uuid.New(),
			ResidentID:    residentID,
			Type:          storage.TypeBulky,
			Status:        storage.StatusScheduled,
			PreferredDate: preferred,
			ScheduledDate: preferred,
		}
		f.cache.EXPECT().Get(existing.ID).Return(existing, true)

		// own id is excluded so a full-looking day with only this request
		// does not block the revise
		f.requests.EXPECT().CountActiveOn(gomock.Any(), gomock.Any(), existing.ID).Return(19, nil).Times(3)

		f.expectCommit()
		f.requests.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.notifications.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Set(gomock.Any())

		newDate := mustDay(t, "2025-03-12")
		req, err := f.scheduler.ReviseRequest(ctx, storage.ReviseParams{
			ID:            existing.ID,
			ResidentID:    residentID,
			PreferredDate: &newDate,
		})
		require.NoError(t, err)
		assert.Equal(t, storage.StatusScheduled, req.Status)
		assert.Equal(t, "2025-03-12", req.ScheduledDate)
	})

	t.Run("terminal request cannot be revised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		existing := &repository.PickupRequest{
			ID:         uuid.New(),
			ResidentID: residentID,
			Status:     storage.StatusCompleted,
		}
		f.cache.EXPECT().Get(existing.ID).Return(existing, true)

		desc := "updated"
		_, err := f.scheduler.ReviseRequest(ctx, storage.ReviseParams{
			ID:          existing.ID,
			ResidentID:  residentID,
			Description: &desc,
		})
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("another resident's request looks missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		existing := &repository.PickupRequest{
			ID:         uuid.New(),
			ResidentID: uuid.New(),
			Status:     storage.StatusPending,
		}
		f.cache.EXPECT().Get(existing.ID).Return(existing, true)

		_, err := f.scheduler.ReviseRequest(ctx, storage.ReviseParams{
			ID:         existing.ID,
			ResidentID: residentID,
			Cancel:     true,
		})
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestCancelRequest(t *testing.T) {
	ctx := context.Background()
	residentID := uuid.New()

	t.Run("pending request cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		existing := &repository.PickupRequest{
			ID:         uuid.New(),
			ResidentID: residentID,
			Status:     storage.StatusPending,
		}
		f.cache.EXPECT().Get(existing.ID).Return(nil, false)
		f.requests.EXPECT().GetByIDForResident(gomock.Any(), existing.ID, residentID).Return(existing, nil)

		f.expectCommit()
		f.requests.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, req *repository.PickupRequest) error {
				assert.Equal(t, storage.StatusCanceled, req.Status)
				return nil
			})
		f.notifications.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.outbox.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(existing.ID)

		req, err := f.scheduler.CancelRequest(ctx, existing.ID, residentID)
		require.NoError(t, err)
		assert.Equal(t, storage.StatusCanceled, req.Status)
	})

	t.Run("canceled request stays canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		existing := &repository.PickupRequest{
			ID:         uuid.New(),
			ResidentID: residentID,
			Status:     storage.StatusCanceled,
		}
		f.cache.EXPECT().Get(existing.ID).Return(existing, true)

		_, err := f.scheduler.CancelRequest(ctx, existing.ID, residentID)
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})
}

func TestProbeAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("stops after five free days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		f.requests.EXPECT().CountActiveOn(gomock.Any(), gomock.Any(), uuid.Nil).Return(0, nil).Times(5)

		days, err := f.scheduler.ProbeAvailability(ctx, mustDay(t, "2025-03-10"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13", "2025-03-14",
		}, days)
	})

	t.Run("fully booked stretch terminates at ten days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSchedulerFixture(t, ctrl)

		f.requests.EXPECT().CountActiveOn(gomock.Any(), gomock.Any(), uuid.Nil).Return(20, nil).Times(10)

		days, err := f.scheduler.ProbeAvailability(ctx, mustDay(t, "2025-03-10"))
		require.NoError(t, err)
		assert.Empty(t, days)
	})
}
