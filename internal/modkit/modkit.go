// Package modkit holds the collaborators every form module shares and the
// small helpers for using them after a submission.
package modkit

import (
	"context"
	"log/slog"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/logger"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/navigation"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/toast"
)

// API is the part of apiclient.Client the modules use.
type API interface {
	GetJSON(ctx context.Context, path string, out any, opts ...apiclient.RequestOption) error
	PostJSON(ctx context.Context, path string, in, out any, opts ...apiclient.RequestOption) error
}

// Base carries the collaborators common to all modules. Every field except
// API is optional.
type Base struct {
	API       API
	Navigator navigation.Navigator
	Toasts    *toast.Queue
	Localizer form.Localizer
	Logger    *slog.Logger
}

func (b Base) Log() *slog.Logger {
	if b.Logger == nil {
		return logger.Discard()
	}
	return b.Logger
}

// FormOptions returns the controller options implied by b followed by extra.
func (b Base) FormOptions(extra []form.Option) []form.Option {
	opts := []form.Option{form.WithLogger(b.Log())}
	if b.Localizer != nil {
		opts = append(opts, form.WithLocalizer(b.Localizer))
	}
	return append(opts, extra...)
}

// Message localizes key, or returns it unchanged without a localizer.
func (b Base) Message(key string) string {
	if b.Localizer == nil {
		return key
	}
	return b.Localizer.Message(key)
}

// Notify shows a success toast for key.
func (b Base) Notify(key string) {
	if b.Toasts != nil {
		b.Toasts.Success(b.Message(key))
	}
}

// Navigate moves to route. Failures are logged; the submission already
// succeeded at this point.
func (b Base) Navigate(ctx context.Context, route navigation.Route) {
	if b.Navigator == nil {
		return
	}
	if err := b.Navigator.Navigate(ctx, route); err != nil {
		b.Log().WarnContext(ctx, "navigation failed", logger.Route(string(route)), logger.Error(err))
	}
}
