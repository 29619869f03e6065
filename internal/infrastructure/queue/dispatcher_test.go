package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.AuditEvent
	done   chan struct{}
	want   int
}

func (s *recordingService) Process(_ context.Context, event ports.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &recordingService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(ports.AuditEvent{Kind: "login_succeeded", Username: "alice"})
	d.Record(ports.AuditEvent{Kind: "login_failed", Username: "bob"})
	d.Record(ports.AuditEvent{Kind: "user_registered", Username: "carol"})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}
}

func TestDispatcher_SameUserKeepsOrder(t *testing.T) {
	const n = 20
	svc := &recordingService{done: make(chan struct{}), want: n}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Record(ports.AuditEvent{Kind: "login_failed", Username: "alice", Detail: string(rune('a' + i))})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out, got %d events", len(svc.events))
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, ev := range svc.events {
		if ev.Detail != string(rune('a'+i)) {
			t.Fatalf("event %d out of order: %q", i, ev.Detail)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())
	for _, name := range []string{"alice", "bob", "", "usuário"} {
		first := d.shardIndex(name)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(name); got != first {
				t.Fatalf("shardIndex(%q) unstable: %d then %d", name, first, got)
			}
		}
	}
}

func TestDispatcher_DropsWhenFullInsteadOfBlocking(t *testing.T) {
	// No workers started: every buffer slot stays occupied, so once a shard's
	// buffer fills, Record must return instead of blocking.
	d := NewDispatcher(1, nil, zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(ports.AuditEvent{Kind: "login_failed", Username: "alice"})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}
}
