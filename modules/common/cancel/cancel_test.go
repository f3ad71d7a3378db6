package cancel

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type flagChecker struct {
	cancelled atomic.Bool
	checks    atomic.Int32
}

func (f *flagChecker) IsJobCancelled(ctx context.Context, jobID string) bool {
	f.checks.Add(1)
	return f.cancelled.Load()
}

func TestWithJobCancelCancelsOnFlag(t *testing.T) {
	checker := &flagChecker{}
	ctx, stop := WithJobCancel(context.Background(), checker, "job-1", 5*time.Millisecond)
	defer stop()

	checker.cancelled.Store(true)

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("context was not cancelled after flag was set")
	}
}

func TestWithJobCancelStopsPolling(t *testing.T) {
	checker := &flagChecker{}
	ctx, stop := WithJobCancel(context.Background(), checker, "job-1", 5*time.Millisecond)
	stop()

	<-ctx.Done()
	time.Sleep(20 * time.Millisecond)
	before := checker.checks.Load()
	time.Sleep(30 * time.Millisecond)
	if after := checker.checks.Load(); after != before {
		t.Fatalf("polling continued after stop: %d -> %d", before, after)
	}
}

func TestCheckBeforePhase(t *testing.T) {
	checker := &flagChecker{}
	if CheckBeforePhase(context.Background(), checker, "job-1", "base image") {
		t.Fatalf("job should not be cancelled yet")
	}
	checker.cancelled.Store(true)
	if !CheckBeforePhase(context.Background(), checker, "job-1", "edit image") {
		t.Fatalf("job should be cancelled")
	}
}
