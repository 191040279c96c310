package router

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

// Session is what the router watches.
type Session interface {
	Authenticated() bool
	Subscribe(fn func(session.State)) func()
}

type listener struct {
	id int
	fn func(Route)
}

// Router holds the current route. It implements the flows' Navigator and
// re-resolves the current route whenever the session changes.
type Router struct {
	sess Session
	log  logging.Logger

	mu        sync.Mutex
	current   Route
	listeners []listener
	nextID    int

	unsubscribe func()
}

func New(sess Session, log logging.Logger) *Router {
	r := &Router{
		sess:    sess,
		log:     log,
		current: Resolve(string(Root), sess.Authenticated()),
	}
	r.unsubscribe = sess.Subscribe(r.sessionChanged)
	return r
}

func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate moves to path after applying redirects.
func (r *Router) Navigate(path string) {
	r.move(Resolve(path, r.sess.Authenticated()))
}

// OnChange registers fn for route changes and returns a function that
// removes it.
func (r *Router) OnChange(fn func(Route)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listener{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close stops following the session.
func (r *Router) Close() {
	r.unsubscribe()

	r.mu.Lock()
	r.listeners = nil
	r.mu.Unlock()
}

func (r *Router) sessionChanged(st session.State) {
	r.move(Resolve(string(r.Current()), st.Authenticated))
}

func (r *Router) move(to Route) {
	r.mu.Lock()
	if r.current == to {
		r.mu.Unlock()
		return
	}
	from := r.current
	r.current = to
	ls := make([]listener, len(r.listeners))
	copy(ls, r.listeners)
	r.mu.Unlock()

	r.log.Debug(context.Background(), "route changed", "from", from, "to", to)
	for _, l := range ls {
		l.fn(to)
	}
}
