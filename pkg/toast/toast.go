package toast

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type represents the toast severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

const (
	DefaultTTL        = 4 * time.Second
	DefaultMaxVisible = 3
)

// Toast is a transient message shown after an action.
type Toast struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the toast should no longer be shown at now.
func (t Toast) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// Option configures a Queue.
type Option func(*Queue)

func WithTTL(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.ttl = d
		}
	}
}

// WithMaxVisible caps the queue; pushing beyond it drops the oldest toast.
func WithMaxVisible(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.max = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}

// WithListener is called after each push, outside the queue lock.
func WithListener(fn func(Toast)) Option {
	return func(q *Queue) {
		if fn != nil {
			q.listeners = append(q.listeners, fn)
		}
	}
}

// Queue is the app-wide toast stack. It is safe for concurrent use.
type Queue struct {
	mu        sync.Mutex
	items     []Toast
	ttl       time.Duration
	max       int
	now       func() time.Time
	listeners []func(Toast)
}

func New(opts ...Option) *Queue {
	q := &Queue{
		ttl: DefaultTTL,
		max: DefaultMaxVisible,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push adds a toast. Blank messages are ignored and reported with false.
func (q *Queue) Push(typ Type, message string) (Toast, bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Toast{}, false
	}

	now := q.now()
	t := Toast{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	}

	q.mu.Lock()
	q.pruneLocked(now)
	q.items = append(q.items, t)
	if over := len(q.items) - q.max; over > 0 {
		q.items = append([]Toast(nil), q.items[over:]...)
	}
	listeners := q.listeners
	q.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
	return t, true
}

func (q *Queue) Success(message string) (Toast, bool) { return q.Push(TypeSuccess, message) }
func (q *Queue) Error(message string) (Toast, bool)   { return q.Push(TypeError, message) }
func (q *Queue) Info(message string) (Toast, bool)    { return q.Push(TypeInfo, message) }

// Dismiss removes a toast by ID.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the unexpired toasts, oldest first.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pruneLocked(q.now())
	return append([]Toast(nil), q.items...)
}

func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

func (q *Queue) pruneLocked(now time.Time) {
	kept := q.items[:0]
	for _, t := range q.items {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	q.items = kept
}
