package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/metrics"
	"github.com/ecocollect/waste-service/internal/repository"
)

// Lifecycle owns the admin side of a request's state machine:
// pending -> scheduled|canceled, scheduled -> completed|canceled,
// completed/canceled terminal.
type Lifecycle struct {
	db            db.DB
	requests      RequestRepository
	notifications NotificationRepository
	outbox        OutboxTaskRepository
	cache         ActiveRequestCache
	maxPerDay     int
	logger        *zap.Logger
}

func NewLifecycle(
	database db.DB,
	requests RequestRepository,
	notifications NotificationRepository,
	outbox OutboxTaskRepository,
	cache ActiveRequestCache,
	maxPerDay int,
	logger *zap.Logger,
) *Lifecycle {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	return &Lifecycle{
		db:            database,
		requests:      requests,
		notifications: notifications,
		outbox:        outbox,
		cache:         cache,
		maxPerDay:     maxPerDay,
		logger:        logger,
	}
}

// AdminSchedule force-places a request on an arbitrary day, still
// subject to the capacity check (excluding the request's own count).
func (l *Lifecycle) AdminSchedule(ctx context.Context, id uuid.UUID, date time.Time) (*PickupRequest, error) {
	req, err := l.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending && req.Status != StatusScheduled {
		return nil, ErrInvalidTransition
	}

	day := DayStart(date)
	count, err := l.requests.CountActiveOn(ctx, day, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests for %s: %w", FormatDay(day), err)
	}
	if count >= l.maxPerDay {
		metrics.CapacityConflictsTotal.WithLabelValues("admin_schedule").Inc()
		return nil, ErrCapacityFull
	}

	req.ScheduledDate = day
	req.Status = StatusScheduled
	req.Alternatives = encodeDays(nil)
	req.ConflictNote = nil
	req.UpdatedAt = time.Now().UTC()

	event := NotificationEvent{
		UserID:  req.ResidentID,
		Type:    "info",
		Title:   "Pickup scheduled",
		Message: fmt.Sprintf("Your pickup was scheduled for %s", FormatDay(day)),
		Meta: map[string]interface{}{
			"request_id":     req.ID.String(),
			"scheduled_date": FormatDay(day),
		},
	}

	if err := l.write(ctx, req, event); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("admin_schedule").Inc()
		return nil, err
	}

	l.cache.Set(req)
	l.logger.Info("request force-scheduled",
		zap.String("request_id", req.ID.String()),
		zap.String("scheduled_date", FormatDay(day)))
	return requestFromRepo(req), nil
}

// AdminSetStatus marks a request completed or canceled. Completion is
// only legal from scheduled; cancellation from pending or scheduled.
// There is no capacity re-check on either.
func (l *Lifecycle) AdminSetStatus(ctx context.Context, id uuid.UUID, status string) (*PickupRequest, error) {
	if status != StatusCompleted && status != StatusCanceled {
		return nil, ErrInvalidStatus
	}

	req, err := l.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case StatusCompleted:
		if req.Status != StatusScheduled {
			return nil, ErrInvalidTransition
		}
	case StatusCanceled:
		if req.Status != StatusPending && req.Status != StatusScheduled {
			return nil, ErrInvalidTransition
		}
	}

	req.Status = status
	req.UpdatedAt = time.Now().UTC()

	event := NotificationEvent{
		UserID:  req.ResidentID,
		Type:    "info",
		Title:   "Pickup request " + status,
		Message: fmt.Sprintf("Request %s is now %s.", req.ID, status),
		Meta:    map[string]interface{}{"request_id": req.ID.String()},
	}

	if err := l.write(ctx, req, event); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("admin_set_status").Inc()
		return nil, err
	}

	// Both target states are terminal.
	l.cache.Delete(req.ID)
	return requestFromRepo(req), nil
}

// Capacity reports a day's utilization. Pure read.
func (l *Lifecycle) Capacity(ctx context.Context, date time.Time) (*CapacityInfo, error) {
	day := DayStart(date)
	count, err := l.requests.CountActiveOn(ctx, day, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests for %s: %w", FormatDay(day), err)
	}
	remaining := l.maxPerDay - count
	if remaining < 0 {
		remaining = 0
	}
	return &CapacityInfo{
		Date:           FormatDay(day),
		ScheduledCount: count,
		MaxPerDay:      l.maxPerDay,
		Remaining:      remaining,
	}, nil
}

// ListRequests is the admin queue view with optional filters.
func (l *Lifecycle) ListRequests(ctx context.Context, filter repository.RequestFilter, limit, offset int) ([]*PickupRequest, int, error) {
	rows, total, err := l.requests.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*PickupRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestWithResidentFromRepo(row))
	}
	return out, total, nil
}

func (l *Lifecycle) write(ctx context.Context, req *repository.PickupRequest, event NotificationEvent) error {
	tx, err := l.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := l.requests.UpdateTx(ctx, tx, req); err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}
	if err := enqueueNotificationTx(ctx, tx, l.notifications, l.outbox, event); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
