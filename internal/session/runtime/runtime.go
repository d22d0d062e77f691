package runtime

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
)

// Manager owns per-key lanes and provides serialized entrypoints.
//
// Tasks enqueued under the same key run one at a time in enqueue order. Tasks
// under different keys run concurrently. A lane goroutine exists only while
// its queue is non-empty.
type Manager struct {
	queueSize int

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	lanes map[string]*lane
	wg    sync.WaitGroup

	// OnDrop is invoked when a task is dropped because its lane is full.
	OnDrop func(key string)
}

// NewManager creates a new lane manager.
func NewManager(queueSize int) *Manager {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		queueSize: queueSize,
		ctx:       ctx,
		cancel:    cancel,
		lanes:     make(map[string]*lane),
	}
}

type lane struct {
	key   string
	tasks []Task
}

// Enqueue schedules task on the lane identified by key.
//
// Enqueue never blocks. It returns false when the lane is full or the manager
// has been closed; the task is dropped in that case.
func (m *Manager) Enqueue(key string, task Task) bool {
	if task == nil {
		return false
	}

	m.mu.Lock()
	if m.ctx.Err() != nil {
		m.mu.Unlock()
		return false
	}
	l, running := m.lanes[key]
	if !running {
		l = &lane{key: key}
		m.lanes[key] = l
	}
	if len(l.tasks) >= m.queueSize {
		m.mu.Unlock()
		// Avoid blocking Socket.IO callbacks indefinitely; drop under overload.
		logger.Warnf("[runtime] lane %s queue full; dropping task", key)
		if m.OnDrop != nil {
			m.OnDrop(key)
		}
		return false
	}
	l.tasks = append(l.tasks, task)
	if !running {
		m.wg.Add(1)
		go m.loop(l)
	}
	m.mu.Unlock()
	return true
}

// Lanes reports how many lanes currently have queued or running work.
func (m *Manager) Lanes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lanes)
}

// Close cancels the context passed to running tasks and waits for every lane
// to drain. Tasks enqueued after Close are rejected.
func (m *Manager) Close() {
	m.mu.Lock()
	m.cancel()
	m.mu.Unlock()
	m.wg.Wait()
}

func (m *Manager) loop(l *lane) {
	defer m.wg.Done()
	for {
		m.mu.Lock()
		if len(l.tasks) == 0 {
			delete(m.lanes, l.key)
			m.mu.Unlock()
			return
		}
		task := l.tasks[0]
		l.tasks[0] = nil
		l.tasks = l.tasks[1:]
		m.mu.Unlock()

		m.run(l.key, task)
	}
}

func (m *Manager) run(key string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[runtime] lane %s task panicked: %v\n%s", key, r, debug.Stack())
		}
	}()
	task(m.ctx)
}
