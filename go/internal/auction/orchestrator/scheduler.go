package orchestrator

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler runs delayed work for one room. All methods must be called from
// the room's executor.
type Scheduler interface {
	// Schedule runs fn after d. A non-empty key replaces any pending task
	// with the same key.
	Schedule(key string, d time.Duration, fn func())
	// Cancel drops the pending task with key, if any.
	Cancel(key string)
	// CancelAll drops every pending task.
	CancelAll()
	// Pending reports whether a task with key is waiting to run.
	Pending(key string) bool
}

// Executor serializes every state change of a room: posted commands and
// scheduled tasks run one at a time, each to completion.
type Executor interface {
	Scheduler
	// Post queues fn to run on the executor. It returns false once the
	// executor has stopped.
	Post(fn func()) bool
	// Stop cancels pending tasks and refuses further work.
	Stop()
	// Now is the executor's clock.
	Now() time.Time
}

type task struct {
	key   string
	due   time.Time
	seq   uint64
	fn    func()
	index int
}

// taskQueue orders tasks by due time, then by scheduling order.
type taskQueue struct {
	items []*task
	byKey map[string]*task
	seq   uint64
}

func newTaskQueue() *taskQueue {
	return &taskQueue{byKey: make(map[string]*task)}
}

func (q *taskQueue) Len() int { return len(q.items) }

func (q *taskQueue) Less(i, j int) bool {
	if q.items[i].due.Equal(q.items[j].due) {
		return q.items[i].seq < q.items[j].seq
	}
	return q.items[i].due.Before(q.items[j].due)
}

func (q *taskQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(q.items)
	q.items = append(q.items, t)
}

func (q *taskQueue) Pop() any {
	old := q.items
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	q.items = old[:n-1]
	return t
}

// add registers fn at due, replacing any task holding the same key.
func (q *taskQueue) add(key string, due time.Time, fn func()) {
	q.seq++
	if key == "" {
		key = fmt.Sprintf("task-%d", q.seq)
	}
	q.remove(key)
	t := &task{key: key, due: due, seq: q.seq, fn: fn}
	q.byKey[key] = t
	heap.Push(q, t)
}

func (q *taskQueue) remove(key string) {
	t, ok := q.byKey[key]
	if !ok {
		return
	}
	delete(q.byKey, key)
	if t.index >= 0 {
		heap.Remove(q, t.index)
	}
}

func (q *taskQueue) clear() {
	q.items = nil
	q.byKey = make(map[string]*task)
}

func (q *taskQueue) has(key string) bool {
	_, ok := q.byKey[key]
	return ok
}

// next returns the earliest due time.
func (q *taskQueue) next() (time.Time, bool) {
	if len(q.items) == 0 {
		return time.Time{}, false
	}
	return q.items[0].due, true
}

// popDue removes and returns the earliest task due at or before now.
func (q *taskQueue) popDue(now time.Time) *task {
	if len(q.items) == 0 || q.items[0].due.After(now) {
		return nil
	}
	t := heap.Pop(q).(*task)
	delete(q.byKey, t.key)
	return t
}

// stopAndDrainTimer safely stops a timer and drains its channel so a later
// Reset does not deliver a stale tick.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
