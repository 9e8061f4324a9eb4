package countup

import (
	"math"
	"sync"
	"time"
)

const (
	DefaultDuration  = 1200 * time.Millisecond
	DefaultThreshold = 0.5
)

// Easing maps animation progress in [0, 1] to eased progress in [0, 1].
type Easing func(p float64) float64

// EaseOutCubic decelerates towards the end: 1 - (1-p)^3.
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Linear is the identity easing.
func Linear(p float64) float64 { return p }

// Option configures a Counter.
type Option func(*Counter)

func WithDuration(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithThreshold sets the visible ratio at which the animation starts.
func WithThreshold(ratio float64) Option {
	return func(c *Counter) {
		if ratio > 0 && ratio <= 1 {
			c.threshold = ratio
		}
	}
}

func WithEasing(e Easing) Option {
	return func(c *Counter) {
		if e != nil {
			c.easing = e
		}
	}
}

// Counter animates a displayed number from 0 to its target while it is on
// screen. It holds no timers; callers feed it visibility changes and frame
// timestamps, which keeps it deterministic under test.
//
//	c := countup.New(67000)
//	c.Observe(0.6, now)      // entered the viewport
//	v := c.Frame(now.Add(d)) // value to display for this frame
type Counter struct {
	mu        sync.Mutex
	target    int64
	duration  time.Duration
	threshold float64
	easing    Easing

	visible bool
	running bool
	start   time.Time
	value   int64
	closed  bool
}

// New creates a counter. Negative targets are treated as 0.
func New(target int64, opts ...Option) *Counter {
	c := &Counter{
		target:    max(target, 0),
		duration:  DefaultDuration,
		threshold: DefaultThreshold,
		easing:    EaseOutCubic,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe records the visible ratio of the display. Crossing the threshold
// upwards restarts the animation from 0 at now. Dropping below it cancels the
// animation and resets the value to 0 so it replays on the next entry.
// It reports whether the animation is running afterwards.
func (c *Counter) Observe(ratio float64, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}

	inView := ratio >= c.threshold
	switch {
	case inView && !c.visible:
		c.visible = true
		c.running = true
		c.start = now
		c.value = 0
	case !inView && c.visible:
		c.visible = false
		c.running = false
		c.value = 0
	}
	return c.running
}

// Frame advances the animation to now and returns the value to display.
// Frames before the start show 0, and from start+duration on the value is
// exactly the target. Within a run the value never decreases.
func (c *Counter) Frame(now time.Time) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.running {
		return c.value
	}

	elapsed := now.Sub(c.start)
	if elapsed >= c.duration {
		c.value = c.target
		c.running = false
		return c.value
	}
	if elapsed <= 0 {
		return c.value
	}

	p := float64(elapsed) / float64(c.duration)
	eased := min(max(c.easing(p), 0), 1)
	v := int64(math.Floor(eased * float64(c.target)))
	c.value = min(max(v, c.value), c.target)
	return c.value
}

func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Counter) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Counter) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *Counter) Target() int64 {
	return c.target
}

func (c *Counter) Duration() time.Duration {
	return c.duration
}

// Close stops the animation for good. Later calls are no-ops.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.running = false
}
