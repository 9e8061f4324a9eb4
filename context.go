package takaful

import "context"

// ContextKey is a typed key for context values.
type ContextKey struct{ name string }

// NewContextKey creates a new context key. The name only aids debugging.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

func (k *ContextKey) String() string { return "takaful context key " + k.name }

// ContextValue retrieves a typed value from ctx, or the zero value of T when
// the key is absent or holds another type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

var appKey = NewContextKey("app")

// WithApp stores a in ctx.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// AppFromContext returns the App stored by WithApp.
func AppFromContext(ctx context.Context) (*App, bool) {
	a := ContextValue[*App](ctx, appKey)
	return a, a != nil
}
