package store

import (
	"admin-dashboard/internal/types"

	"go.uber.org/zap"
)

// AuthState is the mock authentication state
type AuthState struct {
	IsAuthenticated bool
	User            *types.User
}

func cloneAuth(s AuthState) AuthState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// AuthStore owns the auth state
type AuthStore struct {
	c *container[AuthState]
}

// NewAuthStore creates an auth store seeded with the given state
func NewAuthStore(seed AuthState, log *zap.Logger) *AuthStore {
	return &AuthStore{c: newContainer("auth", seed, cloneAuth, log)}
}

// State returns a copy of the whole state
func (s *AuthStore) State() AuthState { return s.c.snapshot() }

// User returns a copy of the current user, or nil when signed out
func (s *AuthStore) User() *types.User { return s.c.snapshot().User }

func (s *AuthStore) IsAuthenticated() bool { return s.c.snapshot().IsAuthenticated }

// Subscribe registers l and returns the function that removes it
func (s *AuthStore) Subscribe(l Listener[AuthState]) func() { return s.c.subscribe(l) }

// Login replaces the user and marks the session authenticated
func (s *AuthStore) Login(user types.User) {
	s.c.update("login", func(st *AuthState) bool {
		if st.IsAuthenticated && st.User != nil && *st.User == user {
			return false
		}
		st.IsAuthenticated = true
		st.User = &user
		return true
	})
}

// Logout clears the user
func (s *AuthStore) Logout() {
	s.c.update("logout", func(st *AuthState) bool {
		if !st.IsAuthenticated && st.User == nil {
			return false
		}
		st.IsAuthenticated = false
		st.User = nil
		return true
	})
}

// UpdateUser merges the non-nil fields of patch into the current user. It
// does nothing while signed out.
func (s *AuthStore) UpdateUser(patch types.UserPatch) {
	s.c.update("updateUser", func(st *AuthState) bool {
		if st.User == nil {
			return false
		}
		next := *st.User
		if patch.Name != nil {
			next.Name = *patch.Name
		}
		if patch.Email != nil {
			next.Email = *patch.Email
		}
		if patch.Role != nil {
			next.Role = *patch.Role
		}
		if patch.Avatar != nil {
			next.Avatar = *patch.Avatar
		}
		if next == *st.User {
			return false
		}
		st.User = &next
		return true
	})
}
