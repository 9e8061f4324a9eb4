package stats

import (
	"context"
	"log/slog"
	"sync"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/countup"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/i18n"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/logger"
)

// Labeler resolves translation keys to display text.
type Labeler interface {
	Message(key string) string
}

// Item is the display state of one stat.
type Item struct {
	Key     string
	Label   string
	Target  int64
	Value   int64
	Display string // Value formatted for the board's language
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithLanguage sets the language used to format numbers.
func WithLanguage(lang string) BoardOption {
	return func(b *Board) {
		if lang != "" {
			b.lang = lang
		}
	}
}

func WithLabeler(l Labeler) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.labeler = l
		}
	}
}

func WithCounterOptions(opts ...countup.Option) BoardOption {
	return func(b *Board) {
		b.counterOpts = append(b.counterOpts, opts...)
	}
}

func WithDriverOptions(opts ...countup.DriverOption) BoardOption {
	return func(b *Board) {
		b.driverOpts = append(b.driverOpts, opts...)
	}
}

// WithListener registers fn to receive every published item value. fn runs
// on the animation goroutine and must not call Observe or Close.
func WithListener(fn func(Item)) BoardOption {
	return func(b *Board) {
		b.listener = fn
	}
}

func WithLogger(l *slog.Logger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

type slot struct {
	key    string
	target int64
	value  int64
	driver *countup.Driver
}

// Board animates all home stats together. The whole board is one visibility
// target: entering the viewport starts every counter and leaving resets them.
type Board struct {
	lang        string
	labeler     Labeler
	counterOpts []countup.Option
	driverOpts  []countup.DriverOption
	listener    func(Item)
	logger      *slog.Logger

	mu    sync.Mutex
	slots []*slot
}

// NewBoard creates a board for s. Counters start at 0 and only move once the
// board is observed as visible.
func NewBoard(s Stats, opts ...BoardOption) *Board {
	b := &Board{
		lang:   i18n.DefaultLanguage,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, e := range s.entries() {
		sl := &slot{key: e.key}
		counter := countup.New(e.value, b.counterOpts...)
		sl.target = counter.Target()
		sl.driver = countup.NewDriver(counter, func(v int64) { b.publish(sl, v) }, b.driverOpts...)
		b.slots = append(b.slots, sl)
	}
	return b
}

// Observe forwards the board's visible ratio to every counter.
func (b *Board) Observe(ctx context.Context, ratio float64) {
	b.logger.DebugContext(ctx, "stats board visibility changed", slog.Float64("ratio", ratio))
	for _, sl := range b.slots {
		sl.driver.Observe(ctx, ratio)
	}
}

// Items returns the current display state in board order.
func (b *Board) Items() []Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]Item, len(b.slots))
	for i, sl := range b.slots {
		items[i] = b.itemLocked(sl)
	}
	return items
}

// Wait blocks until every running animation has finished.
func (b *Board) Wait() {
	for _, sl := range b.slots {
		sl.driver.Wait()
	}
}

// Close cancels all animations. No listener call happens after it returns.
func (b *Board) Close() {
	for _, sl := range b.slots {
		sl.driver.Close()
	}
}

func (b *Board) publish(sl *slot, v int64) {
	b.mu.Lock()
	sl.value = v
	item := b.itemLocked(sl)
	b.mu.Unlock()

	if b.listener != nil {
		b.listener(item)
	}
}

func (b *Board) itemLocked(sl *slot) Item {
	return Item{
		Key:     sl.key,
		Label:   b.label(sl.key),
		Target:  sl.target,
		Value:   sl.value,
		Display: countup.Format(b.lang, sl.value),
	}
}

func (b *Board) label(key string) string {
	k := "stats." + key
	if b.labeler == nil {
		return k
	}
	return b.labeler.Message(k)
}

// Load fetches the stats and builds a board for them.
func Load(ctx context.Context, api Getter, opts ...BoardOption) (*Board, error) {
	s, err := Fetch(ctx, api)
	if err != nil {
		return nil, err
	}
	return NewBoard(s, opts...), nil
}
