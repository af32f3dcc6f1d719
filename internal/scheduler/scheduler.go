package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Skirmish_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking. *worker.Pool satisfies it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler enqueues jobs on fixed intervals
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick is skipped when
// the pool queue is full so a slow job never stalls the ticker.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.start(interval, job, false)
}

// ScheduleNow behaves like Schedule but also enqueues the job immediately
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.start(interval, job, true)
}

func (s *Scheduler) start(interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if immediate {
			s.pool.TryEnqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.pool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}

// Func adapts a plain function to worker.Job
type Func func(ctx context.Context) error

// Process calls f(ctx)
func (f Func) Process(ctx context.Context) error {
	return f(ctx)
}
