package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

// PickupRequest is a special waste pickup (bulky or e-waste) row.
// Alternatives holds the proposed fallback days as a JSON array of
// "YYYY-MM-DD" strings; it is empty when the preferred day was free.
type PickupRequest struct {
	ID            uuid.UUID       `db:"id"`
	ResidentID    uuid.UUID       `db:"resident_id"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	PreferredDate time.Time       `db:"preferred_date"`
	ScheduledDate time.Time       `db:"scheduled_date"`
	Status        string          `db:"status"`
	Alternatives  json.RawMessage `db:"alternatives"`
	ConflictNote  *string         `db:"conflict_note"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// RequestFilter narrows the admin request listing. Zero values mean
// "no constraint"; ResidentQuery matches against the resident's email.
type RequestFilter struct {
	Status        string
	Type          string
	ScheduledFrom time.Time
	ScheduledTo   time.Time
	ResidentQuery string
}

// RequestWithResident joins the owning resident's contact fields onto a
// request row for admin listings.
type RequestWithResident struct {
	PickupRequest
	ResidentEmail string `db:"resident_email"`
	ResidentName  string `db:"resident_name"`
}

// RecyclableSubmission is a drop-off of weighed recyclables. Items is a
// JSON array of {category, weight_kg} objects.
type RecyclableSubmission struct {
	ID           uuid.UUID       `db:"id"`
	ResidentID   uuid.UUID       `db:"resident_id"`
	Items        json.RawMessage `db:"items"`
	Status       string          `db:"status"`
	TotalPayback float64         `db:"total_payback"`
	ReceiptNo    *string         `db:"receipt_no"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// PaybackEntry records a single credit attempt for a completed
// submission, successful or not. Exactly one row exists per completion
// attempt.
type PaybackEntry struct {
	ID           uuid.UUID `db:"id"`
	ResidentID   uuid.UUID `db:"resident_id"`
	SubmissionID uuid.UUID `db:"submission_id"`
	Amount       float64   `db:"amount"`
	Reason       string    `db:"reason"`
	Status       string    `db:"status"`
	ErrorDetail  *string   `db:"error_detail"`
	CreatedAt    time.Time `db:"created_at"`
}

// PaybackStatusTotal is one row of the grouped payback report.
type PaybackStatusTotal struct {
	Status string  `db:"status"`
	Total  float64 `db:"total"`
	Count  int     `db:"count"`
}

// Notification is an in-app message shown to a resident.
type Notification struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Type      string          `db:"type"`
	Title     string          `db:"title"`
	Message   string          `db:"message"`
	Meta      json.RawMessage `db:"meta"`
	IsRead    bool            `db:"is_read"`
	CreatedAt time.Time       `db:"created_at"`
}

type User struct {
	ID       uuid.UUID `db:"id"`
	Email    string    `db:"email"`
	Name     string    `db:"name"`
	Password string    `db:"password"`
	Role     string    `db:"role"`
}
