package countup

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameSource delivers frame timestamps until ctx is done, then closes the
// channel.
type FrameSource func(ctx context.Context) <-chan time.Time

// TickerSource emits frames from a time.Ticker.
func TickerSource(interval time.Duration) FrameSource {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return func(ctx context.Context) <-chan time.Time {
		out := make(chan time.Time)
		go func() {
			defer close(out)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case t := <-ticker.C:
					select {
					case out <- t:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
		return out
	}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

func WithFrameSource(src FrameSource) DriverOption {
	return func(d *Driver) {
		if src != nil {
			d.source = src
		}
	}
}

// WithClock replaces time.Now for visibility timestamps.
func WithClock(now func() time.Time) DriverOption {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// Driver runs a Counter's animation loop in a goroutine and publishes each
// frame's value. publish is called with the driver lock held and must not
// call back into the Driver.
type Driver struct {
	counter *Counter
	publish func(int64)
	source  FrameSource
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

func NewDriver(c *Counter, publish func(int64), opts ...DriverOption) *Driver {
	if publish == nil {
		publish = func(int64) {}
	}
	d := &Driver{
		counter: c,
		publish: publish,
		source:  TickerSource(DefaultFrameInterval),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Observe forwards a visibility change. Entering starts a frame loop bound
// to ctx. Leaving stops the loop and publishes 0.
func (d *Driver) Observe(ctx context.Context, ratio float64) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}

	wasVisible := d.counter.Visible()
	running := d.counter.Observe(ratio, d.now())
	if wasVisible && !d.counter.Visible() {
		d.stopLocked()
		d.publish(0)
		d.mu.Unlock()
		return
	}
	if running && !wasVisible {
		d.stopLocked()
		d.publish(0)
		d.startLocked(ctx)
	}
	d.mu.Unlock()
}

// Wait blocks until the current frame loop, if any, has finished.
func (d *Driver) Wait() {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Close cancels pending frames. No value is published after Close returns.
func (d *Driver) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	done := d.done
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()

	d.counter.Close()
	if done != nil {
		<-done
	}
}

func (d *Driver) startLocked(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done

	frames := d.source(loopCtx)
	go d.loop(loopCtx, cancel, frames, done)
}

// stopLocked cancels the running loop without waiting for it; the loop
// notices the cancelled context before its next publish.
func (d *Driver) stopLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Driver) loop(ctx context.Context, cancel context.CancelFunc, frames <-chan time.Time, done chan struct{}) {
	defer close(done)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-frames:
			if !ok {
				return
			}
			d.mu.Lock()
			if ctx.Err() != nil || d.closed {
				d.mu.Unlock()
				return
			}
			v := d.counter.Frame(t)
			d.publish(v)
			running := d.counter.Running()
			d.mu.Unlock()
			if !running {
				return
			}
		}
	}
}
