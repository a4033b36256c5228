package storage

import (
	"context"

	"github.com/google/uuid"
)

// Notifications is the read side of the notification feed; writes happen
// inside the scheduler/lifecycle/ledger transactions.
type Notifications struct {
	repo NotificationRepository
}

func NewNotifications(repo NotificationRepository) *Notifications {
	return &Notifications{repo: repo}
}

func (n *Notifications) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Notification, int, error) {
	rows, total, err := n.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, notificationFromRepo(row))
	}
	return out, total, nil
}

func (n *Notifications) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return n.repo.MarkRead(ctx, id, userID)
}
