package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
	"github.com/storedemo/store-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ActivityDispatcher fans customer activity events out to a fixed set of
// workers, sharded by customer id, so each customer's audit trail is
// persisted in the order it was produced.
type ActivityDispatcher struct {
	workers []chan domain.ActivityEvent
	repo    ports.ActivityRepository
	log     zerolog.Logger
}

// NewActivityDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewActivityDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *ActivityDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ActivityDispatcher{
		workers: make([]chan domain.ActivityEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ActivityDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its customer.
// Non-blocking up to channelBuffer capacity.
func (d *ActivityDispatcher) Enqueue(ev domain.ActivityEvent) {
	d.workers[d.shardIndex(ev.CustomerID)] <- ev
}

// shardIndex maps a customer id deterministically to a worker index.
func (d *ActivityDispatcher) shardIndex(customerID int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.Itoa(customerID)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ActivityDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &ev); err != nil {
				d.log.Error().Err(err).
					Int("customer_id", ev.CustomerID).
					Int("worker_id", id).
					Msg("activity insert failed")
			}
		}
	}
}
