package orchestrator

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ManualExecutor is an Executor driven by virtual time. Posted work runs
// synchronously on the caller's goroutine; scheduled tasks only run when
// Advance moves the clock past their due time. It is not safe for
// concurrent use.
type ManualExecutor struct {
	clock   *clockwork.FakeClock
	queue   *taskQueue
	pending []func()
	running bool
	stopped bool
}

// NewManualExecutor creates an executor whose clock starts at start.
func NewManualExecutor(start time.Time) *ManualExecutor {
	return &ManualExecutor{
		clock: clockwork.NewFakeClockAt(start),
		queue: newTaskQueue(),
	}
}

// Advance moves virtual time forward by d, running every task that falls
// due on the way in due order.
func (m *ManualExecutor) Advance(d time.Duration) {
	target := m.clock.Now().Add(d)
	for !m.stopped {
		due, ok := m.queue.next()
		if !ok || due.After(target) {
			break
		}
		if wait := due.Sub(m.clock.Now()); wait > 0 {
			m.clock.Advance(wait)
		}
		if t := m.queue.popDue(m.clock.Now()); t != nil {
			m.run(t.fn)
		}
	}
	if rest := target.Sub(m.clock.Now()); rest > 0 {
		m.clock.Advance(rest)
	}
}

// RunUntilIdle advances time until no task is pending or limit has passed.
func (m *ManualExecutor) RunUntilIdle(limit time.Duration) {
	deadline := m.clock.Now().Add(limit)
	for !m.stopped {
		due, ok := m.queue.next()
		if !ok || due.After(deadline) {
			return
		}
		m.Advance(max(due.Sub(m.clock.Now()), 0))
	}
}

// Post implements Executor.
func (m *ManualExecutor) Post(fn func()) bool {
	if m.stopped {
		return false
	}
	m.pending = append(m.pending, fn)
	if !m.running {
		m.drain()
	}
	return true
}

func (m *ManualExecutor) run(fn func()) {
	m.running = true
	fn()
	m.running = false
	m.drain()
}

func (m *ManualExecutor) drain() {
	m.running = true
	for len(m.pending) > 0 && !m.stopped {
		fn := m.pending[0]
		m.pending = m.pending[1:]
		fn()
	}
	m.pending = nil
	m.running = false
}

// Stop implements Executor.
func (m *ManualExecutor) Stop() {
	m.stopped = true
	m.queue.clear()
}

// Stopped reports whether Stop was called.
func (m *ManualExecutor) Stopped() bool {
	return m.stopped
}

// Now implements Executor.
func (m *ManualExecutor) Now() time.Time {
	return m.clock.Now()
}

// Schedule implements Scheduler.
func (m *ManualExecutor) Schedule(key string, d time.Duration, fn func()) {
	m.queue.add(key, m.clock.Now().Add(d), fn)
}

// Cancel implements Scheduler.
func (m *ManualExecutor) Cancel(key string) {
	m.queue.remove(key)
}

// CancelAll implements Scheduler.
func (m *ManualExecutor) CancelAll() {
	m.queue.clear()
}

// Pending implements Scheduler.
func (m *ManualExecutor) Pending(key string) bool {
	return m.queue.has(key)
}

// PendingCount returns how many tasks are waiting.
func (m *ManualExecutor) PendingCount() int {
	return m.queue.Len()
}
