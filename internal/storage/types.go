package storage

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ecocollect/waste-service/internal/repository"
)

const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"

	SubmissionSubmitted  = "submitted"
	SubmissionProcessing = "processing"
	SubmissionCompleted  = "completed"
	SubmissionCanceled   = "canceled"

	PaybackCredited = "credited"
	PaybackFailed   = "failed"

	TypeBulky  = "bulky"
	TypeEwaste = "ewaste"
)

const dayFormat = "2006-01-02"

// DayStart normalizes t to its local calendar-day boundary. A day spans
// local midnight to the next local midnight, inclusive-exclusive.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayFormat, s, time.Local)
}

func FormatDay(t time.Time) string {
	return t.Format(dayFormat)
}

// PickupRequest is the API-facing view of a special pickup request.
// Dates are calendar days in YYYY-MM-DD form.
type PickupRequest struct {
	ID            uuid.UUID `json:"id"`
	ResidentID    uuid.UUID `json:"resident_id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	PreferredDate string    `json:"preferred_date"`
	ScheduledDate string    `json:"scheduled_date"`
	Status        string    `json:"status"`
	Alternatives  []string  `json:"alternatives"`
	ConflictNote  string    `json:"conflict_note,omitempty"`
	ResidentEmail string    `json:"resident_email,omitempty"`
	ResidentName  string    `json:"resident_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RecyclableItem struct {
	Category string  `json:"category"`
	WeightKG float64 `json:"weight_kg"`
}

type RecyclableSubmission struct {
	ID           uuid.UUID        `json:"id"`
	ResidentID   uuid.UUID        `json:"resident_id"`
	Items        []RecyclableItem `json:"items"`
	Status       string           `json:"status"`
	TotalPayback float64          `json:"total_payback"`
	ReceiptNo    string           `json:"receipt_no,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type PaybackEntry struct {
	ID           uuid.UUID `json:"id"`
	ResidentID   uuid.UUID `json:"resident_id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	Amount       float64   `json:"amount"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	ErrorDetail  string    `json:"error_detail,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Receipt is the immutable snapshot handed out once a submission
// completes.
type Receipt struct {
	ReceiptNo    string           `json:"receipt_no"`
	Date         time.Time        `json:"date"`
	Items        []RecyclableItem `json:"items"`
	TotalPayback float64          `json:"total_payback"`
}

type CapacityInfo struct {
	Date           string `json:"date"`
	ScheduledCount int    `json:"scheduled_count"`
	MaxPerDay      int    `json:"max_per_day"`
	Remaining      int    `json:"remaining"`
}

type Notification struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Meta      json.RawMessage `json:"meta"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func requestFromRepo(r *repository.PickupRequest) *PickupRequest {
	out := &PickupRequest{
		ID:            r.ID,
		ResidentID:    r.ResidentID,
		Type:          r.Type,
		Description:   r.Description,
		PreferredDate: FormatDay(r.PreferredDate),
		ScheduledDate: FormatDay(r.ScheduledDate),
		Status:        r.Status,
		Alternatives:  decodeDays(r.Alternatives),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.ConflictNote != nil {
		out.ConflictNote = *r.ConflictNote
	}
	return out
}

func requestWithResidentFromRepo(r *repository.RequestWithResident) *PickupRequest {
	out := requestFromRepo(&r.PickupRequest)
	out.ResidentEmail = r.ResidentEmail
	out.ResidentName = r.ResidentName
	return out
}

func submissionFromRepo(r *repository.RecyclableSubmission) *RecyclableSubmission {
	out := &RecyclableSubmission{
		ID:           r.ID,
		ResidentID:   r.ResidentID,
		Items:        decodeItems(r.Items),
		Status:       r.Status,
		TotalPayback: r.TotalPayback,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.ReceiptNo != nil {
		out.ReceiptNo = *r.ReceiptNo
	}
	return out
}

func paybackFromRepo(r *repository.PaybackEntry) *PaybackEntry {
	out := &PaybackEntry{
		ID:           r.ID,
		ResidentID:   r.ResidentID,
		SubmissionID: r.SubmissionID,
		Amount:       r.Amount,
		Reason:       r.Reason,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
	if r.ErrorDetail != nil {
		out.ErrorDetail = *r.ErrorDetail
	}
	return out
}

func notificationFromRepo(r *repository.Notification) *Notification {
	return &Notification{
		ID:        r.ID,
		Type:      r.Type,
		Title:     r.Title,
		Message:   r.Message,
		Meta:      r.Meta,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
}

func decodeDays(raw json.RawMessage) []string {
	days := make([]string, 0)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &days)
	}
	return days
}

func encodeDays(days []time.Time) json.RawMessage {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, FormatDay(d))
	}
	raw, _ := json.Marshal(out)
	return raw
}

func decodeItems(raw json.RawMessage) []RecyclableItem {
	items := make([]RecyclableItem, 0)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	return items
}

func encodeItems(items []RecyclableItem) json.RawMessage {
	raw, _ := json.Marshal(items)
	return raw
}
