package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const mailboxSize = 256

// Loop is the production Executor: one goroutine per room that drains a
// mailbox of commands and fires scheduled tasks off a clockwork clock.
type Loop struct {
	clock   clockwork.Clock
	mailbox chan func()
	queue   *taskQueue
	log     zerolog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	// postMu orders Post against Run's exit so that accepted work always runs
	postMu sync.Mutex
	closed bool
}

// NewLoop creates a loop. Call Run to start processing.
func NewLoop(clock clockwork.Clock, logger zerolog.Logger) *Loop {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loop{
		clock:   clock,
		mailbox: make(chan func(), mailboxSize),
		queue:   newTaskQueue(),
		log:     logger,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Run processes commands and tasks until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	defer l.drain()

	var timer clockwork.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		var fire <-chan time.Time
		if due, ok := l.queue.next(); ok {
			wait := max(due.Sub(l.clock.Now()), 0)
			if timer == nil {
				timer = l.clock.NewTimer(wait)
			} else {
				stopAndDrainTimer(timer)
				timer.Reset(wait)
			}
			fire = timer.Chan()
		}

		select {
		case <-ctx.Done():
			l.shutdown()
			return
		case <-l.ctx.Done():
			l.queue.clear()
			return
		case fn := <-l.mailbox:
			l.safely(fn)
		case <-fire:
			l.runDue()
		}
	}
}

func (l *Loop) shutdown() {
	l.queue.clear()
	l.Stop()
}

// drain refuses further posts and runs whatever Post already accepted.
// Tasks those commands schedule are dropped with the rest of the queue.
func (l *Loop) drain() {
	l.Stop()
	l.postMu.Lock()
	l.closed = true
	l.postMu.Unlock()
	for {
		select {
		case fn := <-l.mailbox:
			l.safely(fn)
		default:
			l.queue.clear()
			return
		}
	}
}

func (l *Loop) runDue() {
	now := l.clock.Now()
	for {
		t := l.queue.popDue(now)
		if t == nil {
			return
		}
		l.safely(t.fn)
	}
}

// safely runs fn, keeping a panic in one room from taking the process down.
func (l *Loop) safely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Msg("room task panicked")
		}
	}()
	fn()
}

// Post implements Executor. A true return means fn will run, even if the
// loop is stopping.
func (l *Loop) Post(fn func()) bool {
	l.postMu.Lock()
	defer l.postMu.Unlock()
	if l.closed {
		return false
	}
	select {
	case <-l.ctx.Done():
		return false
	default:
	}
	select {
	case l.mailbox <- fn:
		return true
	case <-l.ctx.Done():
		return false
	}
}

// Stop implements Executor. It is safe to call from any goroutine; pending
// tasks are dropped by Run on its way out.
func (l *Loop) Stop() {
	l.stopOnce.Do(l.cancel)
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Now implements Executor.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Schedule implements Scheduler.
func (l *Loop) Schedule(key string, d time.Duration, fn func()) {
	l.queue.add(key, l.clock.Now().Add(d), fn)
}

// Cancel implements Scheduler.
func (l *Loop) Cancel(key string) {
	l.queue.remove(key)
}

// CancelAll implements Scheduler.
func (l *Loop) CancelAll() {
	l.queue.clear()
}

// Pending implements Scheduler.
func (l *Loop) Pending(key string) bool {
	return l.queue.has(key)
}
