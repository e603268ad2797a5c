package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
)

// CookieName holds the session id.
const CookieName = "plat_fonts_session"

// DefaultExpiry is how long an idle workspace is kept.
const DefaultExpiry = 2 * time.Hour

// Store keeps workspaces in memory and drops them after an idle period.
// Nothing is persisted.
type Store struct {
	cache  *collection.Cache
	deps   Deps
	expiry time.Duration
}

// NewStore creates a store whose workspaces expire after idle time expiry.
func NewStore(expiry time.Duration, deps Deps) (*Store, error) {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	cache, err := collection.NewCache(expiry, collection.WithName("workspaces"))
	if err != nil {
		return nil, fmt.Errorf("create workspace cache: %w", err)
	}

	return &Store{cache: cache, deps: deps, expiry: expiry}, nil
}

// Get returns the workspace for id if it is still alive.
func (s *Store) Get(id string) (*Workspace, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	ws := v.(*Workspace)
	s.cache.Set(id, ws) // sliding expiry
	return ws, true
}

// Take returns the workspace for id, creating it when missing.
func (s *Store) Take(id string) (*Workspace, error) {
	v, err := s.cache.Take(id, func() (any, error) {
		logx.Infow("workspace created", logx.Field("session", id))
		workspacesCreated.Inc()
		return NewWorkspace(id, s.deps), nil
	})
	if err != nil {
		return nil, err
	}

	ws := v.(*Workspace)
	s.cache.Set(id, ws)
	return ws, nil
}

// Remove drops the workspace for id.
func (s *Store) Remove(id string) {
	s.cache.Del(id)
}

// FromRequest returns the workspace for the request's session cookie,
// starting a new session (and setting the cookie) when there is none.
func (s *Store) FromRequest(w http.ResponseWriter, r *http.Request) (*Workspace, error) {
	id := ""
	if c, err := r.Cookie(CookieName); err == nil {
		if _, perr := uuid.Parse(c.Value); perr == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.New().String()
	}

	ws, err := s.Take(id)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.expiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ws, nil
}
