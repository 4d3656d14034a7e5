package content

import (
	"context"
	"errors"
	"sync"

	"career-passport/internal/domain"
)

// ErrDiscarded is returned by Task.Wait when the task's mount was torn
// down before the task finished.
var ErrDiscarded = errors.New("content: task discarded after unmount")

// TaskState is the lifecycle of a Task.
type TaskState int

const (
	TaskLoading TaskState = iota
	TaskSuccess
	TaskError
	TaskDiscarded
)

func (s TaskState) String() string {
	switch s {
	case TaskLoading:
		return "loading"
	case TaskSuccess:
		return "success"
	case TaskError:
		return "error"
	case TaskDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Mount scopes the tasks started for one rendered page. Once Unmount
// returns, no task of the mount changes state or runs its callback.
type Mount struct {
	ctx context.Context

	// mu is held for reading while a task publishes its result and runs
	// its callback, and for writing by Unmount.
	mu        sync.RWMutex
	unmounted bool
	pending   map[uint64]func()
	nextID    uint64
	wg        sync.WaitGroup
}

// NewMount returns a live mount. ctx is handed to every task's fetch.
func NewMount(ctx context.Context) *Mount {
	return &Mount{ctx: ctx, pending: make(map[uint64]func())}
}

// Unmount discards every task still loading. Task callbacks must not
// call back into the mount.
func (m *Mount) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unmounted {
		return
	}
	m.unmounted = true
	for _, discard := range m.pending {
		discard()
	}
	m.pending = nil
}

// Mounted reports whether Unmount has not been called yet.
func (m *Mount) Mounted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.unmounted
}

func (m *Mount) forget(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, id)
}

// Wait blocks until every task goroutine of the mount has returned.
func (m *Mount) Wait() {
	m.wg.Wait()
}

// Task is one asynchronous fetch bound to a Mount.
type Task[T any] struct {
	mu    sync.Mutex
	state TaskState
	value T
	err   error
	done  chan struct{}
	once  sync.Once
}

// Start runs fn in its own goroutine. When fn returns while the mount is
// still live, the task moves to Success or Error and onDone (if not nil)
// is called with the result. After Unmount the result is dropped.
func Start[T any](m *Mount, fn func(ctx context.Context) (T, error), onDone func(T, error)) *Task[T] {
	t := &Task[T]{state: TaskLoading, done: make(chan struct{})}

	m.mu.Lock()
	if m.unmounted {
		m.mu.Unlock()
		t.discard()
		return t
	}
	id := m.nextID
	m.nextID++
	m.pending[id] = t.discard
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer m.forget(id)
		v, err := fn(m.ctx)

		m.mu.RLock()
		defer m.mu.RUnlock()
		if m.unmounted {
			return
		}
		t.finish(v, err)
		if onDone != nil {
			onDone(v, err)
		}
	}()
	return t
}

func (t *Task[T]) finish(v T, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TaskLoading {
		return
	}
	t.value, t.err = v, err
	if err != nil {
		t.state = TaskError
	} else {
		t.state = TaskSuccess
	}
	t.once.Do(func() { close(t.done) })
}

func (t *Task[T]) discard() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TaskLoading {
		return
	}
	t.state = TaskDiscarded
	t.once.Do(func() { close(t.done) })
}

// State returns the current state.
func (t *Task[T]) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done is closed when the task leaves TaskLoading.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait blocks until the task settles or ctx ends.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TaskDiscarded {
		var zero T
		return zero, ErrDiscarded
	}
	return t.value, t.err
}

// Fetch starts a task decoding resource r through l.
func Fetch[T any](m *Mount, l *Loader, r domain.Resource, onDone func(T, error)) *Task[T] {
	return Start(m, func(ctx context.Context) (T, error) {
		return Decode[T](ctx, l, r)
	}, onDone)
}
