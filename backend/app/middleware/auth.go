package middleware

import (
	"context"
	"net/http"

	"soft-admin/backend/app/dto"
	"soft-admin/backend/app/models"
	"soft-admin/backend/app/session"
)

type ctxKey int

const identityKey ctxKey = 1

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "sessionId"

type Auth struct{ Sessions *session.Store }

func (a *Auth) identity(r *http.Request) (session.Identity, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return session.Identity{}, false
	}
	return a.Sessions.Lookup(c.Value)
}

// RequireAuth rejects requests without a live session with code -2.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := a.identity(r)
		if !ok {
			dto.WriteError(w, dto.CodeUnauthorized, "login required")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests without a session (-2) or with a
// non-admin one (-3) before the handler runs.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := a.identity(r)
		if !ok {
			dto.WriteError(w, dto.CodeUnauthorized, "login required")
			return
		}
		if ident.Role != models.RoleAdmin {
			dto.WriteError(w, dto.CodeForbidden, "admins only")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GateAdminPage redirects direct page hits to the login page instead of
// answering with a JSON error.
func (a *Auth) GateAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := a.identity(r)
		if !ok || ident.Role != models.RoleAdmin {
			http.Redirect(w, r, "/index.html", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GateUserPage redirects unauthenticated page hits to the login page.
func (a *Auth) GateUserPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := a.identity(r); !ok {
			http.Redirect(w, r, "/index.html", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
