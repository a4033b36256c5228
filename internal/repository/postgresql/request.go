package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

var activeStatuses = []string{"pending", "scheduled"}

type RequestRepo struct {
	db db.DB
}

func NewRequestRepo(db db.DB) storage.RequestRepository {
	return &RequestRepo{db: db}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (r *RequestRepo) CreateTx(ctx context.Context, tx db.Tx, req *repository.PickupRequest) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO pickup_requests (
            id, resident_id, type, description, preferred_date, scheduled_date,
            status, alternatives, conflict_note, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, req.ID, req.ResidentID, req.Type, req.Description, req.PreferredDate, req.ScheduledDate,
		req.Status, req.Alternatives, req.ConflictNote, req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.PickupRequest, error) {
	var req repository.PickupRequest
	err := r.db.Get(ctx, &req, "SELECT * FROM pickup_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepo) GetByIDForResident(ctx context.Context, id, residentID uuid.UUID) (*repository.PickupRequest, error) {
	var req repository.PickupRequest
	err := r.db.Get(ctx, &req,
		"SELECT * FROM pickup_requests WHERE id = $1 AND resident_id = $2", id, residentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepo) UpdateTx(ctx context.Context, tx db.Tx, req *repository.PickupRequest) error {
	_, err := tx.Exec(ctx, `
        UPDATE pickup_requests
        SET
            type = $1,
            description = $2,
            preferred_date = $3,
            scheduled_date = $4,
            status = $5,
            alternatives = $6,
            conflict_note = $7,
            updated_at = $8
        WHERE id = $9
    `, req.Type, req.Description, req.PreferredDate, req.ScheduledDate,
		req.Status, req.Alternatives, req.ConflictNote, req.UpdatedAt, req.ID)
	return err
}

// CountActiveOn counts pending+scheduled requests whose scheduled date
// falls inside the calendar day starting at dayStart. A non-nil
// excludeID leaves that request out so rescheduling never counts itself.
func (r *RequestRepo) CountActiveOn(ctx context.Context, dayStart time.Time, excludeID uuid.UUID) (int, error) {
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
        SELECT COUNT(*) FROM pickup_requests
        WHERE scheduled_date >= $1 AND scheduled_date < $2
          AND status = ANY($3)
    `
	args := []interface{}{dayStart, dayEnd, activeStatuses}
	if excludeID != uuid.Nil {
		query += " AND id <> $4"
		args = append(args, excludeID)
	}

	var count int
	if err := r.db.ExecQueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepo) ListByResident(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*repository.PickupRequest, int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM pickup_requests WHERE resident_id = $1", residentID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	var requests []*repository.PickupRequest
	err = r.db.Select(ctx, &requests, `
        SELECT * FROM pickup_requests
        WHERE resident_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, residentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// List is the admin view: optional status/type/date-range filters plus a
// case-insensitive match on the resident's email.
func (r *RequestRepo) List(ctx context.Context, filter repository.RequestFilter, limit, offset int) ([]*repository.RequestWithResident, int, error) {
	conds := sq.And{}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"r.status": filter.Status})
	}
	if filter.Type != "" {
		conds = append(conds, sq.Eq{"r.type": filter.Type})
	}
	if !filter.ScheduledFrom.IsZero() {
		conds = append(conds, sq.GtOrEq{"r.scheduled_date": filter.ScheduledFrom})
	}
	if !filter.ScheduledTo.IsZero() {
		conds = append(conds, sq.LtOrEq{"r.scheduled_date": filter.ScheduledTo})
	}
	if filter.ResidentQuery != "" {
		conds = append(conds, sq.ILike{"u.email": "%" + filter.ResidentQuery + "%"})
	}

	countBuilder := psql().Select("COUNT(*)").
		From("pickup_requests r").
		Join("users u ON u.id = r.resident_id")
	if len(conds) > 0 {
		countBuilder = countBuilder.Where(conds)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.ExecQueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listBuilder := psql().Select(
		"r.id", "r.resident_id", "r.type", "r.description", "r.preferred_date",
		"r.scheduled_date", "r.status", "r.alternatives", "r.conflict_note",
		"r.created_at", "r.updated_at",
		"u.email AS resident_email", "u.name AS resident_name",
	).
		From("pickup_requests r").
		Join("users u ON u.id = r.resident_id").
		OrderBy("r.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if len(conds) > 0 {
		listBuilder = listBuilder.Where(conds)
	}
	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	var requests []*repository.RequestWithResident
	if err := r.db.Select(ctx, &requests, listQuery, listArgs...); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *RequestRepo) GetAllActive(ctx context.Context) ([]*repository.PickupRequest, error) {
	var requests []*repository.PickupRequest
	err := r.db.Select(ctx, &requests, `
        SELECT * FROM pickup_requests
        WHERE status = ANY($1)
        ORDER BY created_at ASC
    `, activeStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to get active requests: %w", err)
	}
	return requests, nil
}
