package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

type observer struct {
	id int
	fn func(State)
}

// Store is the single session of a running client. It mirrors every change
// to Persistence before making it visible in memory, so readers never see a
// state the backend does not hold.
//
// Mutations are serialized. Observers run synchronously on the goroutine
// that performed the mutation, after the new state is in place; they must
// not call mutating methods of the Store.
type Store struct {
	p   Persistence
	now func() time.Time
	log logging.Logger

	// op serializes mutations together with their notifications.
	op sync.Mutex

	mu        sync.RWMutex
	user      *User
	photo     string
	observers []observer
	nextObs   int
	closed    bool

	startOnce sync.Once
	readyOnce sync.Once
	ready     chan struct{}
	loadErr   error
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(p Persistence, opts ...Option) *Store {
	s := &Store{
		p:     p,
		now:   time.Now,
		log:   logging.Discard(),
		ready: make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start loads the persisted session in the background. Ready is closed once
// loading has finished, successfully or not.
func (s *Store) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go func() {
			if err := s.Load(ctx); err != nil {
				s.log.Error(ctx, "session load failed", "error", err)
			}
		}()
	})
}

func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Wait blocks until the initial load has resolved and returns its error.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return s.loadErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Load reads userName, userEmail and userId. The session becomes
// authenticated only when all three are present; otherwise it stays empty.
func (s *Store) Load(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	values, err := s.p.Load(ctx)
	if err != nil {
		err = fmt.Errorf("load session: %w", err)
		s.finishLoad(err)
		return err
	}

	name, email, id := values[FieldName], values[FieldEmail], values[FieldID]

	restored := name != "" && email != "" && id != ""

	s.mu.Lock()
	if restored {
		s.user = &User{ID: id, Name: name, Email: email}
		s.photo = values[FieldPhoto]
	} else {
		s.user = nil
		s.photo = ""
	}
	s.mu.Unlock()

	if restored {
		s.log.Info(ctx, "session restored", "user_id", id)
	} else {
		s.log.Debug(ctx, "no stored session")
	}

	s.finishLoad(nil)
	s.notify()
	return nil
}

func (s *Store) finishLoad(err error) {
	s.readyOnce.Do(func() {
		s.loadErr = err
		close(s.ready)
	})
}

// Login makes u the current user and persists name, email and id. A missing
// ID is taken from the current user when the email matches, otherwise it is
// generated from the clock, so repeating a login does not move the ID.
func (s *Store) Login(ctx context.Context, u User) (User, error) {
	s.op.Lock()
	defer s.op.Unlock()

	if s.isClosed() {
		return User{}, ErrClosed
	}

	if u.ID == "" {
		if cur, ok := s.User(); ok && cur.Email == u.Email {
			u.ID = cur.ID
		} else {
			u.ID = strconv.FormatInt(s.now().UnixMilli(), 10)
		}
	}

	err := s.p.Atomically(ctx, func(ctx context.Context, p Persistence) error {
		if err := p.Save(ctx, FieldName, u.Name); err != nil {
			return err
		}
		if err := p.Save(ctx, FieldEmail, u.Email); err != nil {
			return err
		}
		return p.Save(ctx, FieldID, u.ID)
	})
	if err != nil {
		s.log.Error(ctx, "persist login failed", "error", err)
		return User{}, fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	stored := u
	s.user = &stored
	s.mu.Unlock()

	s.log.Info(ctx, "user logged in", "user_id", u.ID)
	s.notify()
	return u, nil
}

// Logout drops the current user and removes every session key, the
// profile photo included. Logging out an empty session still clears storage.
func (s *Store) Logout(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	if s.isClosed() {
		return ErrClosed
	}

	err := s.p.Atomically(ctx, func(ctx context.Context, p Persistence) error {
		for _, f := range Fields {
			if err := p.Clear(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "persist logout failed", "error", err)
		return fmt.Errorf("logout: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.photo = ""
	s.mu.Unlock()

	s.log.Info(ctx, "user logged out")
	s.notify()
	return nil
}

// UpdateUser merges upd into the current user and persists the fields whose
// value changed. Without an authenticated user it returns a
// *PreconditionError and changes nothing.
func (s *Store) UpdateUser(ctx context.Context, upd UserUpdate) (User, error) {
	s.op.Lock()
	defer s.op.Unlock()

	if s.isClosed() {
		return User{}, ErrClosed
	}

	cur, ok := s.User()
	if !ok {
		return User{}, notAuthenticated("update user")
	}

	next := cur
	changed := make(map[Field]string, 2)
	if upd.Name != nil && *upd.Name != "" && *upd.Name != cur.Name {
		next.Name = *upd.Name
		changed[FieldName] = next.Name
	}
	if upd.Email != nil && *upd.Email != "" && *upd.Email != cur.Email {
		next.Email = *upd.Email
		changed[FieldEmail] = next.Email
	}
	if len(changed) == 0 {
		return cur, nil
	}

	err := s.p.Atomically(ctx, func(ctx context.Context, p Persistence) error {
		for f, v := range changed {
			if err := p.Save(ctx, f, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "persist user update failed", "error", err)
		return User{}, fmt.Errorf("update user: %w", err)
	}

	s.mu.Lock()
	s.user = &next
	s.mu.Unlock()

	s.log.Debug(ctx, "user updated", "user_id", next.ID, "fields", len(changed))
	s.notify()
	return next, nil
}

// SetProfilePhoto stores a data URI under profilePhoto.
func (s *Store) SetProfilePhoto(ctx context.Context, dataURI string) error {
	s.op.Lock()
	defer s.op.Unlock()

	if s.isClosed() {
		return ErrClosed
	}
	if !s.Authenticated() {
		return notAuthenticated("set profile photo")
	}

	if err := s.p.Save(ctx, FieldPhoto, dataURI); err != nil {
		s.log.Error(ctx, "persist profile photo failed", "error", err)
		return fmt.Errorf("set profile photo: %w", err)
	}

	s.mu.Lock()
	s.photo = dataURI
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) ProfilePhoto() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photo
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	st := State{ProfilePhoto: s.photo}
	if s.user != nil {
		st.User = *s.user
		st.Authenticated = true
	}
	return st
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return func() {}
	}

	s.nextObs++
	id := s.nextObs
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Close detaches all observers. Later mutations fail with ErrClosed; reads
// keep returning the last state.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.observers = nil
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Store) notify() {
	s.mu.RLock()
	st := s.snapshotLocked()
	obs := make([]observer, len(s.observers))
	copy(obs, s.observers)
	s.mu.RUnlock()

	for _, o := range obs {
		o.fn(st)
	}
}
