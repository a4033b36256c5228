package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) storage.NotificationRepository {
	return &NotificationRepo{db: db}
}

const insertNotificationQuery = `
        INSERT INTO notifications (
            id, user_id, type, title, message, meta, is_read, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

func (r *NotificationRepo) Create(ctx context.Context, n *repository.Notification) error {
	_, err := r.db.Exec(ctx, insertNotificationQuery,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.Meta, false, time.Now().UTC())
	return err
}

func (r *NotificationRepo) CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error {
	_, err := tx.Exec(ctx, insertNotificationQuery,
		n.ID, n.UserID, n.Type, n.Title, n.Message, n.Meta, false, time.Now().UTC())
	return err
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*repository.Notification, int, error) {
	var total int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	var notifications []*repository.Notification
	err = r.db.Select(ctx, &notifications, `
        SELECT * FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
