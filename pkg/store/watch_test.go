package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchSeesWrites(t *testing.T) {
	p := testStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Give the watcher a moment to settle before the write.
	time.Sleep(50 * time.Millisecond)

	if !p.SaveSelectedChannel("general") {
		t.Fatal("expected write to succeed")
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before the write was seen")
			}
			if ev.Key == KeySelectedChannel {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the write event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p := testStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the channel to close")
		}
	}
}
