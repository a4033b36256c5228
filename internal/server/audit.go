package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecocollect/waste-service/internal/db"
	"github.com/ecocollect/waste-service/internal/repository"
	"github.com/ecocollect/waste-service/internal/storage"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	UserEmail  string    `json:"user_email,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}

// AuditStore persists a batch of audit entries.
type AuditStore interface {
	Persist(ctx context.Context, entries []AuditLogEntry) error
}

// OutboxAuditStore writes each batch as one outbox task on the audit
// topic, so audit delivery rides the same at-least-once pipeline as
// notifications.
type OutboxAuditStore struct {
	db     db.DB
	outbox storage.OutboxTaskRepository
}

func NewOutboxAuditStore(database db.DB, outbox storage.OutboxTaskRepository) *OutboxAuditStore {
	return &OutboxAuditStore{db: database, outbox: outbox}
}

func (s *OutboxAuditStore) Persist(ctx context.Context, entries []AuditLogEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal audit batch: %w", err)
	}
	task := &repository.OutboxTask{
		Topic:   storage.TopicAuditLogs,
		Payload: payload,
	}
	if err := s.outbox.Create(ctx, s.db, task); err != nil {
		return fmt.Errorf("failed to enqueue audit batch: %w", err)
	}
	return nil
}
