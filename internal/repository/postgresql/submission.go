package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

type SubmissionRepo struct {
	db db.DB
}

func NewSubmissionRepo(db db.DB) storage.SubmissionRepository {
	return &SubmissionRepo{db: db}
}

func (r *SubmissionRepo) Create(ctx context.Context, sub *repository.RecyclableSubmission) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO recyclable_submissions (
            id, resident_id, items, status, total_payback, receipt_no, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, sub.ID, sub.ResidentID, sub.Items, sub.Status, sub.TotalPayback, sub.ReceiptNo,
		sub.CreatedAt, sub.UpdatedAt)
	return err
}

func (r *SubmissionRepo) GetByIDForResident(ctx context.Context, id, residentID uuid.UUID) (*repository.RecyclableSubmission, error) {
	var sub repository.RecyclableSubmission
	err := r.db.Get(ctx, &sub,
		"SELECT * FROM recyclable_submissions WHERE id = $1 AND resident_id = $2", id, residentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepo) Update(ctx context.Context, sub *repository.RecyclableSubmission) error {
	_, err := r.db.Exec(ctx, `
        UPDATE recyclable_submissions
        SET
            items = $1,
            status = $2,
            total_payback = $3,
            receipt_no = $4,
            updated_at = $5
        WHERE id = $6
    `, sub.Items, sub.Status, sub.TotalPayback, sub.ReceiptNo, sub.UpdatedAt, sub.ID)
	return err
}

func (r *SubmissionRepo) ListByResident(ctx context.Context, residentID uuid.UUID, limit, offset int) ([]*repository.RecyclableSubmission, int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM recyclable_submissions WHERE resident_id = $1", residentID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	var submissions []*repository.RecyclableSubmission
	err = r.db.Select(ctx, &submissions, `
        SELECT * FROM recyclable_submissions
        WHERE resident_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, residentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}
