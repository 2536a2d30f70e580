// Package audit provides the best-effort audit recorder. An append is
// attempted synchronously after the transition commits; a failure never
// rolls the transition back. Failed entries go onto a bounded retry
// queue drained by background workers, and the failure is reported to
// the caller as a warning.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/logger"
	"editorial-workflow/internal/metrics"
	"editorial-workflow/internal/repository"
)

const appendTimeout = 3 * time.Second

// Recorder appends audit entries with bounded retry on failure.
type Recorder struct {
	repo repository.AuditRepository

	retryQueue    chan domain.AuditEntryDraft
	retryInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
	closed        bool
	mu            sync.RWMutex
}

// Options configures the retry machinery.
type Options struct {
	QueueSize     int
	Workers       int
	RetryInterval time.Duration
}

// NewRecorder creates a Recorder and starts its retry workers.
func NewRecorder(repo repository.AuditRepository, opts Options) *Recorder {
	if opts.QueueSize < 1 {
		opts.QueueSize = 256
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = 5 * time.Second
	}

	r := &Recorder{
		repo:          repo,
		retryQueue:    make(chan domain.AuditEntryDraft, opts.QueueSize),
		retryInterval: opts.RetryInterval,
		stopChan:      make(chan struct{}),
	}

	for i := 0; i < opts.Workers; i++ {
		r.wg.Add(1)
		go r.retryWorker()
	}

	return r
}

// Record appends one entry for a successful mutating operation. On
// failure it logs, counts, queues the entry for background retry, and
// returns a non-fatal AuditWriteError describing the failure; the
// mutation the entry describes stays committed either way.
func (r *Recorder) Record(ctx context.Context, draft domain.AuditEntryDraft) (*domain.AuditEntry, error) {
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
	defer cancel()

	entry, err := r.repo.Append(appendCtx, draft)
	if err == nil {
		metrics.AuditWritesTotal.WithLabelValues("success").Inc()
		return entry, nil
	}

	metrics.AuditWritesTotal.WithLabelValues("failure").Inc()
	logger.Warn("audit append failed, queueing for retry",
		slog.String("action", string(draft.Action)),
		slog.String("actor_id", draft.ActorID),
		slog.String("error", err.Error()))

	r.enqueue(draft)

	return nil, &domain.AuditWriteError{Err: err}
}

// enqueue adds the draft to the retry queue, dropping it when the queue
// is full. A drop is counted and logged; it is the documented limit of
// best-effort.
func (r *Recorder) enqueue(draft domain.AuditEntryDraft) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	select {
	case r.retryQueue <- draft:
		metrics.AuditRetryQueueDepth.Set(float64(len(r.retryQueue)))
	default:
		metrics.AuditEntriesDropped.Inc()
		logger.Error("audit retry queue full, dropping entry",
			slog.String("action", string(draft.Action)),
			slog.String("actor_id", draft.ActorID))
	}
}

func (r *Recorder) retryWorker() {
	defer r.wg.Done()

	for {
		select {
		case draft, ok := <-r.retryQueue:
			if !ok {
				return
			}
			r.retry(draft)
			metrics.AuditRetryQueueDepth.Set(float64(len(r.retryQueue)))
		case <-r.stopChan:
			return
		}
	}
}

func (r *Recorder) retry(draft domain.AuditEntryDraft) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	if _, err := r.repo.Append(ctx, draft); err != nil {
		metrics.AuditWritesTotal.WithLabelValues("retry_failure").Inc()
		logger.Warn("audit retry failed, re-queueing",
			slog.String("action", string(draft.Action)),
			slog.String("error", err.Error()))

		// Back off before putting it back so a dead database does not
		// spin the worker.
		select {
		case <-time.After(r.retryInterval):
		case <-r.stopChan:
			return
		}
		r.enqueue(draft)
		return
	}

	metrics.AuditWritesTotal.WithLabelValues("retry_success").Inc()
}

// Close stops the retry workers. Entries still queued are dropped;
// pending retries are abandoned.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.stopChan)
	r.wg.Wait()
}
