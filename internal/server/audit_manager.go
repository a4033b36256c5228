package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const persistTimeout = 5 * time.Second

// AuditManager batches audit entries off the request path: handlers push
// entries into a channel, a collector groups them by size or timeout,
// and a worker pool persists the batches through the AuditStore. When
// persistence fails the batch is logged instead of lost.
type AuditManager struct {
	workerCount int
	batchSize   int
	flushAfter  time.Duration

	store  AuditStore
	logger *zap.Logger

	entries    chan AuditLogEntry
	batches    chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewAuditManager(workerCount, batchSize int, flushAfter time.Duration, store AuditStore, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		flushAfter:  flushAfter,
		store:       store,
		logger:      logger,
		entries:     make(chan AuditLogEntry, workerCount*batchSize*2),
		batches:     make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.logger.Info("starting audit manager")

	m.wg.Add(1)
	go m.collect(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.persistLoop(ctx, i)
	}

	go func() {
		<-ctx.Done()
		m.Shutdown(context.Background())
	}()
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("initiating audit manager shutdown")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted")
		}
	})
}

// LogEntry never blocks the request past ctx: an entry that cannot be
// queued is logged directly.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	select {
	case m.entries <- entry:
	case <-ctx.Done():
		m.logFallback("audit entry dropped from queue", []AuditLogEntry{entry})
	}
}

// collect groups incoming entries into batches, flushing when a batch
// fills or when the oldest entry has waited flushAfter.
func (m *AuditManager) collect(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.flush(batch)
		}
		close(m.batches)
	}()

	for {
		select {
		case entry := <-m.entries:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.flush(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.flushAfter)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.flush(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

// flush hands the batch to the worker pool, persisting inline when every
// worker is busy so collection never stalls.
func (m *AuditManager) flush(batch []AuditLogEntry) {
	out := make([]AuditLogEntry, len(batch))
	copy(out, batch)

	select {
	case m.batches <- out:
	default:
		m.persist(-1, out)
	}
}

func (m *AuditManager) persistLoop(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batches:
			if !ok {
				return
			}
			m.persist(id, batch)
		case <-ctx.Done():
			// drain what is already queued before exiting
			for {
				select {
				case batch, ok := <-m.batches:
					if !ok {
						return
					}
					m.persist(id, batch)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) persist(workerID int, batch []AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := m.store.Persist(ctx, batch); err != nil {
		m.logger.Error("failed to persist audit batch",
			zap.Int("worker", workerID),
			zap.Int("size", len(batch)),
			zap.Error(err))
		m.logFallback("audit batch persisted to log only", batch)
	}
}

func (m *AuditManager) logFallback(reason string, batch []AuditLogEntry) {
	for _, entry := range batch {
		m.logger.Warn(reason,
			zap.Time("timestamp", entry.Timestamp),
			zap.String("handler", entry.Handler),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status", entry.StatusCode),
			zap.String("user", entry.UserEmail),
			zap.String("entity_id", entry.EntityID))
	}
}
