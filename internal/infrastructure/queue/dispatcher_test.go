package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingRatingService struct {
	refreshed chan int64
}

func (s *recordingRatingService) Refresh(_ context.Context, productID int64) error {
	s.refreshed <- productID
	return nil
}

func TestDispatcher_ProcessesEnqueuedProduct(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &recordingRatingService{refreshed: make(chan int64, 1)}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(42)

	select {
	case got := <-svc.refreshed:
		if got != 42 {
			t.Fatalf("refreshed product %d, want 42", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("rating refresh never ran")
	}
}

func TestDispatcher_EnqueueDoesNotBlockWhenWorkersStopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc := &recordingRatingService{refreshed: make(chan int64)}
	d := NewDispatcher(1, svc, zerolog.Nop())
	d.Start(ctx)
	cancel()

	// Overfill the single worker's buffer. With stopped workers nothing
	// drains it, so the overflow must be dropped instead of blocking the
	// caller.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(7)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full worker queue")
	}
}
