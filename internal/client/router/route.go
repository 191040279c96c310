// Package router maps paths to screens and keeps the current screen in step
// with the session.
package router

import "strings"

type Route string

const (
	Login    Route = "/login"
	Register Route = "/register"
	Feed     Route = "/feed"
	About    Route = "/about"
	Root     Route = "/"
)

// maxHops bounds redirect chains; the table below never needs more than two.
const maxHops = 4

// Resolve follows redirects from path until it reaches a screen that renders.
func Resolve(path string, authenticated bool) Route {
	r := normalize(path)
	for range maxHops {
		next, ok := redirect(r, authenticated)
		if !ok {
			return r
		}
		r = next
	}
	return r
}

func redirect(r Route, authenticated bool) (Route, bool) {
	switch r {
	case Login, Register:
		if authenticated {
			return Feed, true
		}
		return r, false
	case Feed:
		if !authenticated {
			return Login, true
		}
		return r, false
	case About:
		return r, false
	case Root:
		if authenticated {
			return Feed, true
		}
		return Login, true
	default:
		return Root, true
	}
}

func normalize(path string) Route {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return Route(path)
}
