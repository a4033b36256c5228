package postgresql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

type PaybackRepo struct {
	db db.DB
}

func NewPaybackRepo(db db.DB) storage.PaybackRepository {
	return &PaybackRepo{db: db}
}

const insertPaybackQuery = `
        INSERT INTO payback_entries (
            id, resident_id, submission_id, amount, reason, status, error_detail, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

func (r *PaybackRepo) Create(ctx context.Context, entry *repository.PaybackEntry) error {
	_, err := r.db.Exec(ctx, insertPaybackQuery,
		entry.ID, entry.ResidentID, entry.SubmissionID, entry.Amount, entry.Reason,
		entry.Status, entry.ErrorDetail, entry.CreatedAt)
	return err
}

func (r *PaybackRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.PaybackEntry) error {
	_, err := tx.Exec(ctx, insertPaybackQuery,
		entry.ID, entry.ResidentID, entry.SubmissionID, entry.Amount, entry.Reason,
		entry.Status, entry.ErrorDetail, entry.CreatedAt)
	return err
}

func windowConds(from, to time.Time) sq.And {
	conds := sq.And{}
	if !from.IsZero() {
		conds = append(conds, sq.GtOrEq{"created_at": from})
	}
	if !to.IsZero() {
		conds = append(conds, sq.LtOrEq{"created_at": to})
	}
	return conds
}

// TotalsByStatus groups the window's entries into per-status sums.
func (r *PaybackRepo) TotalsByStatus(ctx context.Context, from, to time.Time) ([]*repository.PaybackStatusTotal, error) {
	builder := psql().Select(
		"status",
		"COALESCE(SUM(amount), 0) AS total",
		"COUNT(*) AS count",
	).
		From("payback_entries").
		GroupBy("status")
	if conds := windowConds(from, to); len(conds) > 0 {
		builder = builder.Where(conds)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build totals query: %w", err)
	}

	var totals []*repository.PaybackStatusTotal
	if err := r.db.Select(ctx, &totals, query, args...); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *PaybackRepo) Latest(ctx context.Context, from, to time.Time, limit int) ([]*repository.PaybackEntry, error) {
	builder := psql().Select(
		"id", "resident_id", "submission_id", "amount", "reason",
		"status", "error_detail", "created_at",
	).
		From("payback_entries").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if conds := windowConds(from, to); len(conds) > 0 {
		builder = builder.Where(conds)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest query: %w", err)
	}

	var entries []*repository.PaybackEntry
	if err := r.db.Select(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
