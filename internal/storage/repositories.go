//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
)

// RequestRepository persists pickup requests. CountActiveOn is the
// capacity counting contract: it counts pending+scheduled requests whose
// scheduled date falls inside the given day, optionally excluding one
// request id so re-scheduling does not count itself.
type RequestRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, req *repository.PickupRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.PickupRequest, error)
	GetByIDForResident(ctx context.Context, id, residentID uuid.UUID) (*repository.PickupRequest, error)
	UpdateTx(ctx context.Context, tx db.Tx, req *repository.PickupRequest) error
	CountActiveOn(ctx context.Context, dayStart time.Time, excludeID uuid.UUID) (int, error)
	ListByResident(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*repository.PickupRequest, int, error)
	List(ctx context.Context, filter repository.RequestFilter, limit, offset int) ([]*repository.RequestWithResident, int, error)
	GetAllActive(ctx context.Context) ([]*repository.PickupRequest, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, sub *repository.RecyclableSubmission) error
	GetByIDForResident(ctx context.Context, id, residentID uuid.UUID) (*repository.RecyclableSubmission, error)
	Update(ctx context.Context, sub *repository.RecyclableSubmission) error
	ListByResident(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*repository.RecyclableSubmission, int, error)
}

type PaybackRepository interface {
	Create(ctx context.Context, entry *repository.PaybackEntry) error
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.PaybackEntry) error
	TotalsByStatus(ctx context.Context, from, to time.Time) ([]*repository.PaybackStatusTotal, error)
	Latest(ctx context.Context, from, to time.Time, limit int) ([]*repository.PaybackEntry, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *repository.Notification) error
	CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*repository.Notification, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, email, name, password, role string) error
	EnsureUser(ctx context.Context, email, name, password, role string) error
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
}

// ActiveRequestCache shadows non-terminal requests in memory; entries
// for completed/canceled requests are evicted on Set.
type ActiveRequestCache interface {
	Get(id uuid.UUID) (*repository.PickupRequest, bool)
	Set(req *repository.PickupRequest)
	Delete(id uuid.UUID)
}
