package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tarefalabs/tarefas-api/internal/api/metrics"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans audit events out to a fixed set of workers using
// consistent hashing on the username, so events about the same principal
// are persisted in the order they were recorded.
type Dispatcher struct {
	workers []chan ports.AuditEvent
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event for asynchronous persistence. Never blocks: when
// the responsible worker's buffer is full the event is dropped and counted.
func (d *Dispatcher) Record(event ports.AuditEvent) {
	idx := d.shardIndex(event.Username)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().Str("kind", event.Kind).Str("username", event.Username).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("kind", event.Kind).
					Str("username", event.Username).
					Msg("failed to persist audit event")
			}
		}
	}
}
