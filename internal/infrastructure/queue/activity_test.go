package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/storedemo/store-api/internal/core/domain"
)

type recordingActivityRepo struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	done   chan struct{}
	expect int
}

func newRecordingActivityRepo(expect int) *recordingActivityRepo {
	return &recordingActivityRepo{done: make(chan struct{}), expect: expect}
}

func (r *recordingActivityRepo) Insert(_ context.Context, ev *domain.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
	if len(r.events) == r.expect {
		close(r.done)
	}
	return nil
}

func (r *recordingActivityRepo) wait(t *testing.T) []domain.ActivityEvent {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", r.expect)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestActivityDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewActivityDispatcher(4, nil, zerolog.Nop())

	for id := 1; id <= 100; id++ {
		first := d.shardIndex(id)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("customer %d: shard changed from %d to %d", id, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("customer %d: shard %d out of range", id, first)
		}
	}
}

func TestActivityDispatcher_PreservesPerCustomerOrder(t *testing.T) {
	const events = 20
	repo := newRecordingActivityRepo(events)
	d := NewActivityDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < events; i++ {
		d.Enqueue(domain.ActivityEvent{
			CustomerID: 7,
			Action:     domain.ActivityCartAdd,
			ProductID:  i,
		})
	}

	got := repo.wait(t)
	for i, ev := range got {
		if ev.ProductID != i {
			t.Fatalf("event %d out of order: got product %d", i, ev.ProductID)
		}
	}
}

func TestActivityDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewActivityDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
