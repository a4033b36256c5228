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

const (
	// DefaultMaxPerDay is the fixed daily capacity unless overridden via
	// MAX_PER_DAY.
	DefaultMaxPerDay = 20

	// horizonDays bounds how far ahead placement scans for a free day.
	horizonDays = 14

	// placementCandidates is how many alternative days placement collects.
	placementCandidates = 3

	// probeResults / probeScanDays bound the public availability probe:
	// at most 5 returned days, at most 10 days scanned.
	probeResults  = 5
	probeScanDays = 10
)

const conflictNoteFull = "Preferred date full; proposed alternatives."

// Scheduler decides where a pickup request lands. Placement is a
// read-then-write sequence with no cross-request lock: two concurrent
// placements can both observe a day below capacity before either commits,
// so a small transient overbooking is possible. That imprecision is
// accepted; tightening it would need a per-day counter with a conditional
// increment at the persistence layer.
type Scheduler struct {
	db            db.DB
	requests      RequestRepository
	notifications NotificationRepository
	outbox        OutboxTaskRepository
	cache         ActiveRequestCache
	maxPerDay     int
	logger        *zap.Logger
}

func NewScheduler(
	database db.DB,
	requests RequestRepository,
	notifications NotificationRepository,
	outbox OutboxTaskRepository,
	cache ActiveRequestCache,
	maxPerDay int,
	logger *zap.Logger,
) *Scheduler {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	return &Scheduler{
		db:            database,
		requests:      requests,
		notifications: notifications,
		outbox:        outbox,
		cache:         cache,
		maxPerDay:     maxPerDay,
		logger:        logger,
	}
}

func (s *Scheduler) MaxPerDay() int {
	return s.maxPerDay
}

// findAvailable scans ascending calendar days starting at from (from
// itself is eligible) and collects up to needed days whose active count
// is below the daily maximum. It gives up after horizon days, so the
// result may be shorter than requested, or empty. excludeID keeps a
// request being relocated from counting against itself.
func (s *Scheduler) findAvailable(ctx context.Context, from time.Time, needed, horizon int, excludeID uuid.UUID) ([]time.Time, error) {
	out := make([]time.Time, 0, needed)
	probe := DayStart(from)
	for i := 0; i < horizon && len(out) < needed; i++ {
		count, err := s.requests.CountActiveOn(ctx, probe, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to count requests for %s: %w", FormatDay(probe), err)
		}
		if count < s.maxPerDay {
			out = append(out, probe)
		}
		probe = probe.AddDate(0, 0, 1)
	}
	return out, nil
}

// ProbeAvailability is the bounded probe behind the availability
// endpoint: up to 5 free days, never scanning more than 10 days, so a
// fully booked stretch terminates instead of walking the calendar.
func (s *Scheduler) ProbeAvailability(ctx context.Context, from time.Time) ([]string, error) {
	days, err := s.findAvailable(ctx, from, probeResults, probeScanDays, uuid.Nil)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, FormatDay(d))
	}
	return out, nil
}

type PlaceParams struct {
	ResidentID    uuid.UUID
	Type          string
	Description   string
	PreferredDate time.Time
}

func (p PlaceParams) validate() error {
	v := newValidationError()
	if p.Type != TypeBulky && p.Type != TypeEwaste {
		v.add("type", "must be bulky or ewaste")
	}
	if len(p.Description) > 500 {
		v.add("description", "must be at most 500 characters")
	}
	if p.PreferredDate.IsZero() {
		v.add("preferred_date", "is required (YYYY-MM-DD)")
	}
	return v.orNil()
}

// PlaceRequest books the preferred day when it has room, otherwise parks
// the request pending on the first free day and records the remaining
// candidates as alternatives. When the whole horizon is full it returns
// ErrCapacityExhausted and creates nothing.
func (s *Scheduler) PlaceRequest(ctx context.Context, p PlaceParams) (*PickupRequest, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	candidates, err := s.findAvailable(ctx, p.PreferredDate, placementCandidates, horizonDays, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		metrics.CapacityConflictsTotal.WithLabelValues("place_request").Inc()
		return nil, ErrCapacityExhausted
	}

	preferredStart := DayStart(p.PreferredDate)
	scheduled, alternatives, status, note := decidePlacement(preferredStart, candidates)

	now := time.Now().UTC()
	req := &repository.PickupRequest{
		ID:            uuid.New(),
		ResidentID:    p.ResidentID,
		Type:          p.Type,
		Description:   p.Description,
		PreferredDate: preferredStart,
		ScheduledDate: scheduled,
		Status:        status,
		Alternatives:  encodeDays(alternatives),
		ConflictNote:  note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	message := fmt.Sprintf("Scheduled for %s", FormatDay(scheduled))
	if status == StatusPending {
		message = "Preferred date unavailable. Alternatives proposed."
	}
	event := NotificationEvent{
		UserID:  p.ResidentID,
		Type:    "success",
		Title:   "Special request submitted",
		Message: message,
		Meta: map[string]interface{}{
			"request_id":     req.ID.String(),
			"scheduled_date": FormatDay(scheduled),
			"alternatives":   decodeDays(req.Alternatives),
		},
	}

	err = s.inTx(ctx, func(tx db.Tx) error {
		if err := s.requests.CreateTx(ctx, tx, req); err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		return enqueueNotificationTx(ctx, tx, s.notifications, s.outbox, event)
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("place_request").Inc()
		return nil, err
	}

	s.cache.Set(req)
	if status == StatusScheduled {
		metrics.RequestsScheduledTotal.Inc()
	} else {
		metrics.RequestsPendingTotal.Inc()
	}
	s.logger.Info("pickup request placed",
		zap.String("request_id", req.ID.String()),
		zap.String("status", status),
		zap.String("scheduled_date", FormatDay(scheduled)))

	return requestFromRepo(req), nil
}

type ReviseParams struct {
	ID            uuid.UUID
	ResidentID    uuid.UUID
	PreferredDate *time.Time
	Description   *string
	Cancel        bool
}

// ReviseRequest edits a pending or scheduled request. A new preferred
// date re-runs placement against current capacity, excluding the
// request's own slot so re-confirming the same day cannot block itself.
func (s *Scheduler) ReviseRequest(ctx context.Context, p ReviseParams) (*PickupRequest, error) {
	if p.Description != nil && len(*p.Description) > 500 {
		v := newValidationError()
		v.add("description", "must be at most 500 characters")
		return nil, v
	}

	req, err := s.getOwned(ctx, p.ID, p.ResidentID)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending && req.Status != StatusScheduled {
		return nil, ErrInvalidTransition
	}

	if p.Cancel {
		return s.cancel(ctx, req)
	}

	if p.PreferredDate != nil {
		candidates, err := s.findAvailable(ctx, *p.PreferredDate, placementCandidates, horizonDays, req.ID)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			metrics.CapacityConflictsTotal.WithLabelValues("revise_request").Inc()
			return nil, ErrCapacityExhausted
		}

		preferredStart := DayStart(*p.PreferredDate)
		scheduled, alternatives, status, note := decidePlacement(preferredStart, candidates)
		req.PreferredDate = preferredStart
		req.ScheduledDate = scheduled
		req.Status = status
		req.Alternatives = encodeDays(alternatives)
		req.ConflictNote = note
	}

	if p.Description != nil {
		req.Description = *p.Description
	}
	req.UpdatedAt = time.Now().UTC()

	event := NotificationEvent{
		UserID:  req.ResidentID,
		Type:    "info",
		Title:   "Special request updated",
		Message: fmt.Sprintf("Request %s now targets %s", req.ID, FormatDay(req.ScheduledDate)),
		Meta: map[string]interface{}{
			"request_id":     req.ID.String(),
			"scheduled_date": FormatDay(req.ScheduledDate),
			"alternatives":   decodeDays(req.Alternatives),
		},
	}

	err = s.inTx(ctx, func(tx db.Tx) error {
		if err := s.requests.UpdateTx(ctx, tx, req); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}
		return enqueueNotificationTx(ctx, tx, s.notifications, s.outbox, event)
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("revise_request").Inc()
		return nil, err
	}

	s.cache.Set(req)
	return requestFromRepo(req), nil
}

// CancelRequest moves a pending or scheduled request to its terminal
// canceled state. Completed and canceled requests cannot be canceled.
func (s *Scheduler) CancelRequest(ctx context.Context, id, residentID uuid.UUID) (*PickupRequest, error) {
	req, err := s.getOwned(ctx, id, residentID)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending && req.Status != StatusScheduled {
		return nil, ErrInvalidTransition
	}
	return s.cancel(ctx, req)
}

func (s *Scheduler) cancel(ctx context.Context, req *repository.PickupRequest) (*PickupRequest, error) {
	req.Status = StatusCanceled
	req.UpdatedAt = time.Now().UTC()

	event := NotificationEvent{
		UserID:  req.ResidentID,
		Type:    "warning",
		Title:   "Special request canceled",
		Message: fmt.Sprintf("Request %s is canceled.", req.ID),
		Meta:    map[string]interface{}{"request_id": req.ID.String()},
	}

	err := s.inTx(ctx, func(tx db.Tx) error {
		if err := s.requests.UpdateTx(ctx, tx, req); err != nil {
			return fmt.Errorf("failed to cancel request: %w", err)
		}
		return enqueueNotificationTx(ctx, tx, s.notifications, s.outbox, event)
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("cancel_request").Inc()
		return nil, err
	}

	s.cache.Delete(req.ID)
	s.logger.Info("pickup request canceled", zap.String("request_id", req.ID.String()))
	return requestFromRepo(req), nil
}

// ListRequests returns the resident's own requests, newest first.
func (s *Scheduler) ListRequests(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*PickupRequest, int, error) {
	rows, total, err := s.requests.ListByResident(ctx, residentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*PickupRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestFromRepo(row))
	}
	return out, total, nil
}

func (s *Scheduler) getOwned(ctx context.Context, id, residentID uuid.UUID) (*repository.PickupRequest, error) {
	if cached, ok := s.cache.Get(id); ok {
		if cached.ResidentID != residentID {
			return nil, repository.ErrObjectNotFound
		}
		return cached, nil
	}
	return s.requests.GetByIDForResident(ctx, id, residentID)
}

func (s *Scheduler) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// decidePlacement applies the preferred-if-available rule: an exact match
// books the preferred day with no alternatives; otherwise the first
// candidate becomes the provisional day and the full candidate list is
// offered.
func decidePlacement(preferredStart time.Time, candidates []time.Time) (scheduled time.Time, alternatives []time.Time, status string, note *string) {
	for _, c := range candidates {
		if c.Equal(preferredStart) {
			return preferredStart, nil, StatusScheduled, nil
		}
	}
	n := conflictNoteFull
	return candidates[0], candidates, StatusPending, &n
}
