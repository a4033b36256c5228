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

const paybackReason = "Recyclable payback"

// reportLatestLimit caps the payback report's entry listing.
const reportLatestLimit = 100

// Ledger manages recyclable submissions and the payback entries created
// when they complete. Completion and crediting are decoupled: once a
// submission is marked completed it stays completed even when the credit
// write fails; the failure is recorded as a failed ledger entry and
// surfaced as a degraded success.
type Ledger struct {
	db            db.DB
	submissions   SubmissionRepository
	paybacks      PaybackRepository
	notifications NotificationRepository
	outbox        OutboxTaskRepository
	logger        *zap.Logger
}

func NewLedger(
	database db.DB,
	submissions SubmissionRepository,
	paybacks PaybackRepository,
	notifications NotificationRepository,
	outbox OutboxTaskRepository,
	logger *zap.Logger,
) *Ledger {
	return &Ledger{
		db:            database,
		submissions:   submissions,
		paybacks:      paybacks,
		notifications: notifications,
		outbox:        outbox,
		logger:        logger,
	}
}

func validateItems(items []RecyclableItem) error {
	v := newValidationError()
	if len(items) == 0 {
		v.add("items", "at least one item is required")
	}
	for i, item := range items {
		if !validCategory(item.Category) {
			v.add(fmt.Sprintf("items[%d].category", i), "must be one of plastic, paper, glass, metal, ewaste")
		}
		if item.WeightKG <= 0 {
			v.add(fmt.Sprintf("items[%d].weight_kg", i), "must be positive")
		}
	}
	return v.orNil()
}

// CreateSubmission validates items and stores the submission with its
// derived total.
func (l *Ledger) CreateSubmission(ctx context.Context, residentID uuid.UUID, items []RecyclableItem) (*RecyclableSubmission, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &repository.RecyclableSubmission{
		ID:           uuid.New(),
		ResidentID:   residentID,
		Items:        encodeItems(items),
		Status:       SubmissionSubmitted,
		TotalPayback: TotalPayback(items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := l.submissions.Create(ctx, sub); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_submission").Inc()
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return submissionFromRepo(sub), nil
}

type UpdateSubmissionParams struct {
	ID         uuid.UUID
	ResidentID uuid.UUID
	Items      []RecyclableItem
	Cancel     bool
}

// UpdateSubmission edits items (recomputing the total) or cancels, only
// while the submission is still submitted or processing.
func (l *Ledger) UpdateSubmission(ctx context.Context, p UpdateSubmissionParams) (*RecyclableSubmission, error) {
	sub, err := l.submissions.GetByIDForResident(ctx, p.ID, p.ResidentID)
	if err != nil {
		return nil, err
	}
	if sub.Status != SubmissionSubmitted && sub.Status != SubmissionProcessing {
		return nil, ErrInvalidTransition
	}

	if p.Items != nil {
		if err := validateItems(p.Items); err != nil {
			return nil, err
		}
		sub.Items = encodeItems(p.Items)
		sub.TotalPayback = TotalPayback(p.Items)
	}
	if p.Cancel {
		sub.Status = SubmissionCanceled
	}
	sub.UpdatedAt = time.Now().UTC()

	if err := l.submissions.Update(ctx, sub); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_submission").Inc()
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}
	return submissionFromRepo(sub), nil
}

func (l *Ledger) ListSubmissions(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*RecyclableSubmission, int, error) {
	rows, total, err := l.submissions.ListByResident(ctx, residentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*RecyclableSubmission, 0, len(rows))
	for _, row := range rows {
		out = append(out, submissionFromRepo(row))
	}
	return out, total, nil
}

// CompletionResult reports both transitions of a completion: the
// submission close (always final on success) and the credit attempt,
// which may have failed independently.
type CompletionResult struct {
	Submission *RecyclableSubmission `json:"submission"`
	Payback    *PaybackEntry         `json:"payback"`
	Receipt    *Receipt              `json:"receipt"`
	Credited   bool                  `json:"credited"`
	CreditErr  string                `json:"credit_error,omitempty"`
}

// CompleteSubmission finalizes the submission, assigns its receipt
// number, then attempts the credit. Exactly one payback entry is written
// per completion attempt, credited or failed. A second call returns
// ErrAlreadyCompleted without touching the ledger.
func (l *Ledger) CompleteSubmission(ctx context.Context, id, residentID uuid.UUID) (*CompletionResult, error) {
	sub, err := l.submissions.GetByIDForResident(ctx, id, residentID)
	if err != nil {
		return nil, err
	}
	if sub.Status == SubmissionCompleted {
		return nil, ErrAlreadyCompleted
	}
	if sub.Status == SubmissionCanceled {
		return nil, ErrInvalidTransition
	}

	receiptNo := fmt.Sprintf("RCPT-%d", time.Now().UnixMilli())
	sub.Status = SubmissionCompleted
	sub.ReceiptNo = &receiptNo
	sub.UpdatedAt = time.Now().UTC()
	if err := l.submissions.Update(ctx, sub); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("complete_submission").Inc()
		return nil, fmt.Errorf("failed to finalize submission: %w", err)
	}
	metrics.SubmissionsCompletedTotal.Inc()

	result := &CompletionResult{
		Submission: submissionFromRepo(sub),
		Receipt:    buildReceipt(sub),
	}

	entry := &repository.PaybackEntry{
		ID:           uuid.New(),
		ResidentID:   residentID,
		SubmissionID: sub.ID,
		Amount:       sub.TotalPayback,
		Reason:       paybackReason,
		Status:       PaybackCredited,
		CreatedAt:    time.Now().UTC(),
	}

	if creditErr := l.credit(ctx, sub, entry); creditErr != nil {
		l.logger.Warn("payback credit failed",
			zap.String("submission_id", sub.ID.String()),
			zap.Error(creditErr))
		metrics.PaybackFailedTotal.Inc()

		detail := creditErr.Error()
		failed := &repository.PaybackEntry{
			ID:           uuid.New(),
			ResidentID:   residentID,
			SubmissionID: sub.ID,
			Amount:       sub.TotalPayback,
			Reason:       paybackReason,
			Status:       PaybackFailed,
			ErrorDetail:  &detail,
			CreatedAt:    time.Now().UTC(),
		}
		if err := l.paybacks.Create(ctx, failed); err != nil {
			l.logger.Error("failed to record failed payback entry",
				zap.String("submission_id", sub.ID.String()),
				zap.Error(err))
		}
		l.notifyCreditFailure(ctx, sub, receiptNo)

		result.Payback = paybackFromRepo(failed)
		result.Credited = false
		result.CreditErr = detail
		return result, nil
	}

	metrics.PaybackCreditedTotal.Inc()
	result.Payback = paybackFromRepo(entry)
	result.Credited = true
	return result, nil
}

// credit writes the credited entry together with its notifications; a
// failure rolls the whole attempt back so the failed entry written by
// the caller stays the only one.
func (l *Ledger) credit(ctx context.Context, sub *repository.RecyclableSubmission, entry *repository.PaybackEntry) error {
	tx, err := l.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin credit transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := l.paybacks.CreateTx(ctx, tx, entry); err != nil {
		return fmt.Errorf("failed to create payback entry: %w", err)
	}

	event := NotificationEvent{
		UserID:  sub.ResidentID,
		Type:    "success",
		Title:   "Recyclables completed",
		Message: fmt.Sprintf("Receipt %s | Rs. %.2f", *sub.ReceiptNo, sub.TotalPayback),
		Meta: map[string]interface{}{
			"submission_id": sub.ID.String(),
			"receipt_no":    *sub.ReceiptNo,
			"total":         sub.TotalPayback,
		},
	}
	if err := enqueueNotificationTx(ctx, tx, l.notifications, l.outbox, event); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (l *Ledger) notifyCreditFailure(ctx context.Context, sub *repository.RecyclableSubmission, receiptNo string) {
	event := NotificationEvent{
		UserID:    sub.ResidentID,
		Type:      "error",
		Title:     "Payback credit failed",
		Message:   fmt.Sprintf("Receipt %s logged; retry pending.", receiptNo),
		Meta:      map[string]interface{}{"submission_id": sub.ID.String(), "receipt_no": receiptNo},
		Timestamp: time.Now().UTC(),
	}
	if err := l.notifications.Create(ctx, newRepoNotification(event)); err != nil {
		l.logger.Error("failed to store credit-failure notification", zap.Error(err))
	}
	task, err := newOutboxNotification(event)
	if err == nil {
		if err := l.outbox.Create(ctx, l.db, task); err != nil {
			l.logger.Error("failed to enqueue credit-failure event", zap.Error(err))
		}
	}
}

// Receipt rebuilds the completed submission's receipt snapshot.
func (l *Ledger) Receipt(ctx context.Context, id, residentID uuid.UUID) (*Receipt, error) {
	sub, err := l.submissions.GetByIDForResident(ctx, id, residentID)
	if err != nil {
		return nil, err
	}
	if sub.Status != SubmissionCompleted {
		return nil, ErrInvalidTransition
	}
	return buildReceipt(sub), nil
}

func buildReceipt(sub *repository.RecyclableSubmission) *Receipt {
	receiptNo := ""
	if sub.ReceiptNo != nil {
		receiptNo = *sub.ReceiptNo
	}
	return &Receipt{
		ReceiptNo:    receiptNo,
		Date:         sub.UpdatedAt,
		Items:        decodeItems(sub.Items),
		TotalPayback: sub.TotalPayback,
	}
}

// PaybackReport aggregates ledger totals by status and returns the
// latest entries in the window.
type PaybackReport struct {
	Totals struct {
		Credited      float64 `json:"credited"`
		Failed        float64 `json:"failed"`
		CreditedCount int     `json:"credited_count"`
		FailedCount   int     `json:"failed_count"`
	} `json:"totals"`
	Latest []*PaybackEntry `json:"latest"`
}

func (l *Ledger) Report(ctx context.Context, from, to time.Time) (*PaybackReport, error) {
	totals, err := l.paybacks.TotalsByStatus(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate paybacks: %w", err)
	}
	latest, err := l.paybacks.Latest(ctx, from, to, reportLatestLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest paybacks: %w", err)
	}

	report := &PaybackReport{Latest: make([]*PaybackEntry, 0, len(latest))}
	for _, row := range totals {
		switch row.Status {
		case PaybackCredited:
			report.Totals.Credited = row.Total
			report.Totals.CreditedCount = row.Count
		case PaybackFailed:
			report.Totals.Failed = row.Total
			report.Totals.FailedCount = row.Count
		}
	}
	for _, entry := range latest {
		report.Latest = append(report.Latest, paybackFromRepo(entry))
	}
	return report, nil
}
