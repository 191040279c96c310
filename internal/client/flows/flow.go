package flows

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

const FeedPath = "/feed"

// Authenticator is the part of the session store a flow needs.
type Authenticator interface {
	Login(ctx context.Context, u session.User) (session.User, error)
}

type Navigator interface {
	Navigate(path string)
}

type Option func(*Flow)

func WithSubmitter(s Submitter) Option {
	return func(f *Flow) { f.submit = s }
}

// WithDelay replaces the default simulated latency.
func WithDelay(d time.Duration) Option {
	return func(f *Flow) { f.submit = Delay(d) }
}

func WithLogger(l logging.Logger) Option {
	return func(f *Flow) { f.log = l }
}

type form struct {
	name      string
	fields    []string
	failure   string
	validate  func(values map[string]string) map[string]string
	buildUser func(values map[string]string) session.User
}

// Flow is one form. It is safe for concurrent use; only one Submit runs at a
// time.
type Flow struct {
	form

	auth   Authenticator
	nav    Navigator
	submit Submitter
	log    logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	values    map[string]string
	fieldErrs map[string]string
	general   string
}

func newFlow(def form, auth Authenticator, nav Navigator, delay time.Duration, opts []Option) *Flow {
	ctx, cancel := context.WithCancel(context.Background())

	f := &Flow{
		form:      def,
		auth:      auth,
		nav:       nav,
		submit:    Delay(delay),
		log:       logging.Discard(),
		ctx:       ctx,
		cancel:    cancel,
		values:    make(map[string]string, len(def.fields)),
		fieldErrs: map[string]string{},
	}
	for _, o := range opts {
		o(f)
	}
	f.log = f.log.With("flow", def.name)
	return f
}

func (f *Flow) Name() string {
	return f.name
}

func (f *Flow) Fields() []string {
	return slices.Clone(f.fields)
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// FieldErrors returns the messages of the last failed validation that have
// not been cleared by Change yet.
func (f *Flow) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.fieldErrs)
}

// GeneralError is the banner left by a failed submission.
func (f *Flow) GeneralError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.general
}

// Change sets a field value. It clears that field's message only, and once
// no field messages remain a validation failure falls back to Idle.
func (f *Flow) Change(field, value string) error {
	if !slices.Contains(f.fields, field) {
		return ErrUnknownField
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Success {
		return ErrFlowFinished
	}

	f.values[field] = value
	if _, ok := f.fieldErrs[field]; ok {
		delete(f.fieldErrs, field)
		if f.state == Failed && len(f.fieldErrs) == 0 && f.general == "" {
			f.state = Idle
		}
	}
	return nil
}

// Submit validates, waits for the Submitter and logs the user in. The wait
// ends early when ctx or the flow is cancelled; in that case Submit returns
// the context error, the state returns to Idle and the session is untouched.
func (f *Flow) Submit(ctx context.Context) (session.User, error) {
	f.mu.Lock()
	switch f.state {
	case Success:
		f.mu.Unlock()
		return session.User{}, ErrFlowFinished
	case Validating, Submitting:
		f.mu.Unlock()
		return session.User{}, ErrBusy
	}
	if err := f.ctx.Err(); err != nil {
		f.mu.Unlock()
		return session.User{}, err
	}

	f.general = ""
	f.state = Validating
	values := maps.Clone(f.values)

	if errs := f.validate(values); len(errs) > 0 {
		f.fieldErrs = errs
		f.state = Failed
		f.mu.Unlock()
		f.log.Debug(ctx, "validation failed", "fields", len(errs))
		return session.User{}, &ValidationError{Fields: maps.Clone(errs), order: f.fields}
	}

	f.fieldErrs = map[string]string{}
	f.state = Submitting
	f.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(f.ctx, cancel)
	defer stop()

	err := f.submit(runCtx)
	if err == nil {
		// the timer may have fired in the same instant as Close
		err = runCtx.Err()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			f.setState(Idle)
			f.log.Debug(ctx, "submission cancelled")
			return session.User{}, err
		}
		return session.User{}, f.fail(ctx, err)
	}

	// past this point the login is committed and no longer cancellable
	u, err := f.auth.Login(context.WithoutCancel(runCtx), f.buildUser(values))
	if err != nil {
		return session.User{}, f.fail(ctx, err)
	}

	f.setState(Success)
	f.log.Info(ctx, "submission succeeded", "user_id", u.ID)
	f.nav.Navigate(FeedPath)
	return u, nil
}

// Close cancels an in-flight submission. Later Submit calls fail with
// context.Canceled.
func (f *Flow) Close() {
	f.cancel()
}

func (f *Flow) fail(ctx context.Context, cause error) error {
	f.mu.Lock()
	f.state = Failed
	f.general = f.failure
	f.mu.Unlock()

	f.log.Warn(ctx, "submission failed", "error", cause)
	return &SubmissionError{Message: f.failure, Err: cause}
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}
