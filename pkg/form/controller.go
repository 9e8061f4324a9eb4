package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/logger"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/statemachine"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

// Definition describes a form: its fields, how submitted values are cleaned
// and validated, and what submitting does.
type Definition[R any] struct {
	Name   string
	Fields []Field

	// Sanitize receives a copy of the current values and returns the payload
	// to validate and submit. Optional.
	Sanitize func(Values) Values

	// Validate checks the whole payload and returns validator.ValidationErrors
	// (or nil). Optional.
	Validate func(Values) error

	// Submit performs the request. It is called at most once per attempt.
	Submit func(ctx context.Context, payload Values) (R, error)

	// OnSuccess runs after a successful submission once the form has been
	// reset, typically to navigate or show a toast. It is skipped when the
	// controller is closed before it would run. Optional.
	OnSuccess func(ctx context.Context, result R)
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Values    Values
	Errors    Errors
	FormError string
	Status    Status
	Outcome   Outcome
}

// StatusObserver is notified of every status transition.
type StatusObserver func(from, to Status)

// Option configures a Controller.
type Option func(*options)

type options struct {
	localizer Localizer
	logger    *slog.Logger
	observers []StatusObserver
}

// WithLocalizer sets how validation errors and form-level messages are rendered.
func WithLocalizer(l Localizer) Option {
	return func(o *options) {
		if l != nil {
			o.localizer = l
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStatusObserver registers a callback for status transitions. Callbacks
// run outside the controller lock and may read the controller.
func WithStatusObserver(obs StatusObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

type transitionRecord struct {
	from, to Status
}

// Controller owns the state of one form instance: values, per-field errors,
// the form-level error and the submission status. It is safe for concurrent
// use; at most one submission is in flight at a time.
type Controller[R any] struct {
	def    Definition[R]
	fields map[string]Field
	opts   options

	mu        sync.Mutex
	values    Values
	errors    Errors
	formError string
	outcome   Outcome
	status    *statemachine.Machine[Status, statusEvent]
	pending   []transitionRecord
	cancel    context.CancelFunc
	closed    bool
}

// New creates a controller for def with every field at its default value.
func New[R any](def Definition[R], opts ...Option) (*Controller[R], error) {
	if def.Name == "" || def.Submit == nil {
		return nil, fmt.Errorf("%w: name and submit function are required", ErrInvalidDefinition)
	}

	fields := make(map[string]Field, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field without name in %q", ErrInvalidDefinition, def.Name)
		}
		if _, dup := fields[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q in %q", ErrInvalidDefinition, f.Name, def.Name)
		}
		fields[f.Name] = f
	}

	o := options{
		localizer: defaultLocalizer{},
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[R]{
		def:    def,
		fields: fields,
		opts:   o,
		errors: Errors{},
	}
	c.values = c.initialValues()
	c.status = newStatusMachine(func(from, to Status, _ statusEvent) {
		// Fired only while c.mu is held.
		c.pending = append(c.pending, transitionRecord{from: from, to: to})
	})
	return c, nil
}

// MustNew is like New but panics on an invalid definition.
func MustNew[R any](def Definition[R], opts ...Option) *Controller[R] {
	c, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the form name.
func (c *Controller[R]) Name() string {
	return c.def.Name
}

// Fields returns the field definitions in declaration order.
func (c *Controller[R]) Fields() []Field {
	out := make([]Field, len(c.def.Fields))
	copy(out, c.def.Fields)
	return out
}

// Field returns the definition of name.
func (c *Controller[R]) Field(name string) (Field, bool) {
	f, ok := c.fields[name]
	return f, ok
}

// Set replaces the value of a field and clears its error, whether or not
// the new value is valid.
func (c *Controller[R]) Set(name string, value any) error {
	return c.edit(name, func(f Field, _ any) (any, error) {
		v, ok := f.accepts(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %s, got %T", ErrInvalidValue, name, f.Kind, value)
		}
		return v, nil
	})
}

func (c *Controller[R]) SetString(name, value string) error {
	return c.Set(name, value)
}

func (c *Controller[R]) SetBool(name string, value bool) error {
	return c.Set(name, value)
}

// edit applies fn to the current value of name under the lock.
func (c *Controller[R]) edit(name string, fn func(f Field, current any) (any, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	f, ok := c.fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	next, err := fn(f, c.values[name])
	if err != nil {
		return err
	}
	c.values[name] = next
	delete(c.errors, name)
	return nil
}

// Value returns a copy of the current value of name.
func (c *Controller[R]) Value(name string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Values{name: c.values[name]}.Clone()[name]
}

// Values returns a copy of all current values.
func (c *Controller[R]) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Errors returns a copy of the per-field errors.
func (c *Controller[R]) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

// FormError returns the error not attributable to a single field.
func (c *Controller[R]) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formError
}

// Status returns the submission status.
func (c *Controller[R]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status.Current()
}

// Submitting reports whether the submit trigger should be disabled.
func (c *Controller[R]) Submitting() bool {
	return c.Status() == StatusSubmitting
}

// Snapshot returns a consistent copy of the whole controller state.
func (c *Controller[R]) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Values:    c.values.Clone(),
		Errors:    c.errors.Clone(),
		FormError: c.formError,
		Status:    c.status.Current(),
		Outcome:   c.outcome,
	}
}

// Submit sanitizes and validates the current values and, when they pass,
// submits them exactly once. Invalid input populates Errors and returns the
// validation errors without calling Submit. Failures keep the entered values
// and return the form to idle so the user can retry.
func (c *Controller[R]) Submit(ctx context.Context) (R, error) {
	var zero R
	log := c.opts.logger.With(logger.Form(c.def.Name))

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	if c.status.Current() != StatusIdle {
		c.mu.Unlock()
		return zero, ErrSubmitting
	}

	payload := c.values.Clone()
	if c.def.Sanitize != nil {
		payload = c.def.Sanitize(payload)
	}

	c.formError = ""
	if err := c.validateLocked(payload); err != nil {
		c.outcome = OutcomeInvalid
		c.mu.Unlock()
		log.DebugContext(ctx, "form validation failed", logger.Error(err))
		return zero, err
	}
	c.errors = Errors{}

	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	if err := c.status.Fire(ctx, eventSubmit); err != nil {
		cancel()
		c.mu.Unlock()
		return zero, ErrSubmitting
	}
	c.unlockAndNotify()

	log.DebugContext(ctx, "form submitting")
	result, err := c.def.Submit(reqCtx, payload)
	cancel()

	c.mu.Lock()
	c.cancel = nil
	if c.closed {
		// Torn down while in flight: the outcome must not touch the state.
		c.mu.Unlock()
		log.DebugContext(ctx, "discarding submission result after close")
		return zero, ErrClosed
	}

	if err != nil {
		c.applyFailureLocked(err)
		c.settleLocked(ctx)
		c.unlockAndNotify()
		log.WarnContext(ctx, "form submission failed", logger.Error(err))
		return zero, errors.Join(ErrSubmitFailed, err)
	}

	c.values = c.initialValues()
	c.errors = Errors{}
	c.outcome = OutcomeSucceeded
	c.settleLocked(ctx)
	c.unlockAndNotify()

	log.InfoContext(ctx, "form submitted")
	if c.def.OnSuccess != nil && !c.isClosed() {
		c.def.OnSuccess(ctx, result)
	}
	return result, nil
}

// Close tears the controller down. An in-flight submission is cancelled and
// its result ignored; further edits and submits return ErrClosed.
func (c *Controller[R]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Controller[R]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller[R]) validateLocked(payload Values) error {
	if c.def.Validate == nil {
		return nil
	}
	err := c.def.Validate(payload)
	if err == nil {
		return nil
	}

	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		c.formError = c.opts.localizer.Message(MessageUnexpected)
		return err
	}

	errs := Errors{}
	for _, verr := range verrs.FirstPerField() {
		errs[verr.Field] = c.opts.localizer.FieldError(verr)
	}
	c.errors = errs
	return verrs.FirstPerField()
}

func (c *Controller[R]) applyFailureLocked(err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		for _, verr := range verrs.FirstPerField() {
			c.errors[verr.Field] = c.opts.localizer.FieldError(verr)
		}
		c.formError = c.opts.localizer.Message(MessageSubmitFailed)
		c.outcome = OutcomeRejected
		return
	}

	rej, ok := AsRejection(err)
	if !ok {
		c.formError = c.opts.localizer.Message(MessageUnexpected)
		c.outcome = OutcomeFailed
		return
	}

	c.outcome = OutcomeRejected
	for name, msg := range rej.FieldErrors() {
		if _, known := c.fields[name]; known && msg != "" {
			c.errors[name] = msg
		}
	}
	if detail := rej.Detail(); detail != "" {
		c.formError = detail
		return
	}
	c.formError = c.opts.localizer.Message(MessageSubmitFailed)
}

func (c *Controller[R]) settleLocked(ctx context.Context) {
	// Both transitions are always defined from Submitting; errors are impossible here.
	_ = c.status.Fire(ctx, eventSettle)
	_ = c.status.Fire(ctx, eventResume)
}

func (c *Controller[R]) unlockAndNotify() {
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, tr := range pending {
		for _, obs := range c.opts.observers {
			obs(tr.from, tr.to)
		}
	}
}

func (c *Controller[R]) initialValues() Values {
	values := make(Values, len(c.def.Fields))
	for _, f := range c.def.Fields {
		values[f.Name] = f.initial()
	}
	return values
}
