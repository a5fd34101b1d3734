package concurrency

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

type scheduledTask struct {
	id    uint64
	timer *time.Timer
}

// Scheduler owns delayed tasks grouped by key (a device id) so they can be
// cancelled when the device goes away or the process shuts down.
type Scheduler struct {
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	nextID  uint64
	pending map[string][]scheduledTask
	stopped bool
	running sync.WaitGroup
}

func NewScheduler(logger *log.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		pending: map[string][]scheduledTask{},
	}
}

// Schedule runs task after delay. Returns false if the scheduler has been stopped.
func (s *Scheduler) Schedule(key string, delay time.Duration, task func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logger.Debug("scheduler stopped, dropping task", "key", key)
		return false
	}

	s.nextID++
	id := s.nextID

	timer := time.AfterFunc(delay, func() {
		if !s.remove(key, id) {
			// cancelled between firing and acquiring the lock
			return
		}
		defer s.running.Done()
		task(s.ctx)
	})

	s.pending[key] = append(s.pending[key], scheduledTask{id: id, timer: timer})
	s.logger.Debug("scheduled task", "key", key, "delay", delay)

	return true
}

// remove drops a fired task from the pending list, reporting whether it was still pending
func (s *Scheduler) remove(key string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.pending[key]
	for i, t := range tasks {
		if t.id == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			if len(tasks) == 0 {
				delete(s.pending, key)
			} else {
				s.pending[key] = tasks
			}
			s.running.Add(1)
			return true
		}
	}
	return false
}

// Cancel stops every pending task for key and returns how many were stopped
func (s *Scheduler) Cancel(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.pending[key]
	for _, t := range tasks {
		t.timer.Stop()
	}
	delete(s.pending, key)

	if len(tasks) > 0 {
		s.logger.Debug("cancelled pending tasks", "key", key, "total", len(tasks))
	}
	return len(tasks)
}

func (s *Scheduler) Pending(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending[key])
}

// Stop cancels all pending tasks, cancels the context of running ones and
// waits for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for key, tasks := range s.pending {
		for _, t := range tasks {
			t.timer.Stop()
		}
		delete(s.pending, key)
	}
	s.mu.Unlock()

	s.cancel()
	s.running.Wait()
}
