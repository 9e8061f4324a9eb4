package countup_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/countup"
)

type manualFrames struct {
	ch chan time.Time
}

func newManualFrames() *manualFrames {
	return &manualFrames{ch: make(chan time.Time)}
}

func (m *manualFrames) source(ctx context.Context) <-chan time.Time {
	return m.ch
}

type recorder struct {
	mu     sync.Mutex
	values []int64
}

func (r *recorder) publish(v int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.values...)
}

func TestDriver_RunsToTarget(t *testing.T) {
	t.Parallel()

	frames := newManualFrames()
	rec := &recorder{}
	c := countup.New(67000, countup.WithEasing(countup.Linear))
	d := countup.NewDriver(c, rec.publish,
		countup.WithFrameSource(frames.source),
		countup.WithClock(func() time.Time { return epoch }),
	)
	t.Cleanup(d.Close)

	d.Observe(context.Background(), 0.75)
	frames.ch <- epoch.Add(600 * time.Millisecond)
	frames.ch <- epoch.Add(1200 * time.Millisecond)
	d.Wait()

	assert.Equal(t, []int64{0, 33500, 67000}, rec.snapshot())
	assert.False(t, c.Running())
}

func TestDriver_LeaveCancels(t *testing.T) {
	t.Parallel()

	frames := newManualFrames()
	rec := &recorder{}
	c := countup.New(100, countup.WithEasing(countup.Linear))
	d := countup.NewDriver(c, rec.publish,
		countup.WithFrameSource(frames.source),
		countup.WithClock(func() time.Time { return epoch }),
	)
	t.Cleanup(d.Close)

	d.Observe(context.Background(), 1)
	frames.ch <- epoch.Add(600 * time.Millisecond)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, time.Millisecond)
	d.Observe(context.Background(), 0)
	d.Wait()

	assert.Equal(t, []int64{0, 50, 0}, rec.snapshot())
	assert.Equal(t, int64(0), c.Value())
}

func TestDriver_CloseStopsPublishing(t *testing.T) {
	t.Parallel()

	frames := newManualFrames()
	rec := &recorder{}
	c := countup.New(100)
	d := countup.NewDriver(c, rec.publish,
		countup.WithFrameSource(frames.source),
		countup.WithClock(func() time.Time { return epoch }),
	)

	d.Observe(context.Background(), 1)
	d.Close()

	select {
	case frames.ch <- epoch.Add(time.Second):
		t.Fatal("frame accepted after close")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Equal(t, []int64{0}, rec.snapshot())

	d.Observe(context.Background(), 1)
	assert.Equal(t, []int64{0}, rec.snapshot())
}

func TestDriver_ContextCancel(t *testing.T) {
	t.Parallel()

	frames := newManualFrames()
	rec := &recorder{}
	d := countup.NewDriver(countup.New(100), rec.publish,
		countup.WithFrameSource(frames.source),
		countup.WithClock(func() time.Time { return epoch }),
	)
	t.Cleanup(d.Close)

	ctx, cancel := context.WithCancel(context.Background())
	d.Observe(ctx, 1)
	cancel()
	d.Wait()
	assert.Equal(t, []int64{0}, rec.snapshot())
}

func TestDriver_TickerSource(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		last int64
	)
	c := countup.New(1000, countup.WithDuration(40*time.Millisecond))
	d := countup.NewDriver(c, func(v int64) {
		mu.Lock()
		last = v
		mu.Unlock()
	}, countup.WithFrameSource(countup.TickerSource(time.Millisecond)))
	t.Cleanup(d.Close)

	d.Observe(context.Background(), 1)
	d.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, int64(1000), last)
}
