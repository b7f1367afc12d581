package inputmask

import (
	"sync"
	"time"
)

// Scheduler defers a task until the host finished handling the current
// event and redrawing.
type Scheduler interface {
	Schedule(task func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(task func())

// Schedule implements Scheduler.
func (fn SchedulerFunc) Schedule(task func()) {
	fn(task)
}

// TaskQueue holds deferred tasks until the host event loop calls Flush,
// typically once per redraw.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []func()
}

var _ Scheduler = &TaskQueue{}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Schedule implements Scheduler. Nil tasks are dropped.
func (q *TaskQueue) Schedule(task func()) {
	if q == nil || task == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
}

// Flush runs the tasks queued before the call in FIFO order and returns how
// many ran. Tasks scheduled while flushing wait for the next Flush.
func (q *TaskQueue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range pending {
		task()
	}
	return len(pending)
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// AfterFuncScheduler runs each task on its own timer goroutine after Delay.
// Hosts using it must make their Field safe for that goroutine.
type AfterFuncScheduler struct {
	Delay time.Duration
}

// Schedule implements Scheduler.
func (s AfterFuncScheduler) Schedule(task func()) {
	if task == nil {
		return
	}
	time.AfterFunc(s.Delay, task)
}
