package http

import (
	"context"
	nethttp "net/http"
	"strings"

	"ign-lookup-service/internal/store"
)

type userKey struct{}

func withUser(ctx context.Context, user *store.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func userFromContext(ctx context.Context) *store.User {
	user, _ := ctx.Value(userKey{}).(*store.User)
	return user
}

// resolveUser authenticates the request from a Bearer token or X-API-Key
// header. It returns (nil, false) when no credentials are present and
// (nil, true) when credentials are present but invalid.
func (h *Handler) resolveUser(r *nethttp.Request) (*store.User, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return nil, true
		}
		claims, err := h.tokens.Verify(token)
		if err != nil {
			return nil, true
		}
		user, err := h.store.UserByID(r.Context(), claims.UserID)
		if err != nil {
			return nil, true
		}
		return user, false
	}

	if key := r.Header.Get("X-API-Key"); key != "" {
		user, err := h.store.UserByAPIKey(r.Context(), key)
		if err != nil {
			return nil, true
		}
		return user, false
	}

	return nil, false
}

// RequireAuth rejects requests that do not carry valid credentials.
func (h *Handler) RequireAuth(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		user, invalid := h.resolveUser(r)
		if user == nil {
			if invalid {
				h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Invalid or expired credentials")
			} else {
				h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Authentication required")
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// OptionalAuth attaches the user when valid credentials are present but
// lets anonymous requests through. Invalid credentials are still rejected
// so callers are not silently downgraded to anonymous.
func (h *Handler) OptionalAuth(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		user, invalid := h.resolveUser(r)
		if invalid {
			h.writeError(w, r, nethttp.StatusUnauthorized, "UnauthorizedError", "Invalid or expired credentials")
			return
		}
		if user != nil {
			r = r.WithContext(withUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}
