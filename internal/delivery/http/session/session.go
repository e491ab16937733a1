// Package session exposes the per-request session state to handlers. The
// session middleware decodes the cookie into a State; handlers mutate the
// session and mark it dirty, and the middleware re-issues the cookie before
// the response is written.
package session

import (
	"echofinds/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const contextKey = "sessionState"

// State wraps the decoded session with a dirty flag controlling whether the
// cookie gets rewritten.
type State struct {
	Session *entity.Session
	dirty   bool
}

// MarkDirty requests a cookie rewrite at the end of the request.
func (s *State) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether the session changed during the request.
func (s *State) Dirty() bool {
	return s.dirty
}

// Set stores the state in the echo context.
func Set(c echo.Context, state *State) {
	c.Set(contextKey, state)
}

// From returns the request's session state. The session middleware runs on
// every route, so a fresh empty state only appears in tests that skip it.
func From(c echo.Context) *State {
	if state, ok := c.Get(contextKey).(*State); ok {
		return state
	}

	state := &State{Session: &entity.Session{}}
	Set(c, state)

	return state
}
