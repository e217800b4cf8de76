package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"interview-scheduler/internal/pkg/logger"
)

func TestAddAndRemoveJob(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	if _, err := s.AddJob("not a spec", func() {}); err == nil {
		t.Fatal("expected error for invalid spec")
	}

	id, err := s.AddJob("0 */5 * * * *", func() {})
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	if n := len(s.Entries()); n != 1 {
		t.Fatalf("entries = %d, want 1", n)
	}
	s.RemoveJob(id)
	if n := len(s.Entries()); n != 0 {
		t.Fatalf("entries after remove = %d, want 0", n)
	}
}

func TestSkipIfStillRunning(t *testing.T) {
	s := NewScheduler(logger.Nop())

	var running, runs int32
	release := make(chan struct{})
	_, err := s.AddJob("* * * * * *", func() {
		if atomic.AddInt32(&running, 1) > 1 {
			t.Error("job overlapped with itself")
		}
		atomic.AddInt32(&runs, 1)
		<-release
		atomic.AddInt32(&running, -1)
	})
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	time.Sleep(2500 * time.Millisecond)
	// stop scheduling before releasing the blocked run
	done := s.cron.Stop()
	close(release)
	<-done.Done()

	if atomic.LoadInt32(&runs) != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}
