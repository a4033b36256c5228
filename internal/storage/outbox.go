//go:generate mockgen -source ./outbox.go -destination=./mocks/outbox.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
)

const (
	TopicNotifications = "notifications"
	TopicAuditLogs     = "audit_logs"
)

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	Create(ctx context.Context, database db.DB, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, database db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// NotificationEvent is the payload published to the notifications topic.
// The consumer turns these into outbound mail.
type NotificationEvent struct {
	UserID    uuid.UUID              `json:"user_id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func newOutboxNotification(event NotificationEvent) (*repository.OutboxTask, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return &repository.OutboxTask{
		ID:      uuid.New(),
		Topic:   TopicNotifications,
		Payload: payload,
	}, nil
}

// enqueueNotificationTx writes the in-app notification row and the
// outbound event inside the caller's transaction so they commit with the
// entity change they describe.
func enqueueNotificationTx(ctx context.Context, tx db.Tx, notifications NotificationRepository, outbox OutboxTaskRepository, event NotificationEvent) error {
	event.Timestamp = time.Now().UTC()
	if err := notifications.CreateTx(ctx, tx, newRepoNotification(event)); err != nil {
		return err
	}
	task, err := newOutboxNotification(event)
	if err != nil {
		return err
	}
	return outbox.CreateTx(ctx, tx, task)
}

func newRepoNotification(event NotificationEvent) *repository.Notification {
	meta, _ := json.Marshal(event.Meta)
	return &repository.Notification{
		ID:      uuid.New(),
		UserID:  event.UserID,
		Type:    event.Type,
		Title:   event.Title,
		Message: event.Message,
		Meta:    meta,
	}
}
