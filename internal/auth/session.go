// Package auth owns the session cookie and the role gate. The session
// carries a capability token only, account id plus role; handlers that need
// fresh profile fields re-fetch the account instead of trusting a cached
// copy that a later edit could have made stale.
package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/dkarpov/hirehub/internal/models"
)

const (
	SessionName = "hirehub_session"

	keyAccountID = "account_id"
	keyRole      = "role"

	// gin context keys set by RequireAuth for downstream handlers.
	CtxAccountID = "auth_account_id"
	CtxRole      = "auth_role"
)

// NewStore builds the cookie-backed session store the router mounts.
func NewStore(secret string) sessions.Store {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// SignIn binds the session to the account's identity and role.
func SignIn(c *gin.Context, account *models.Account) error {
	session := sessions.Default(c)
	session.Set(keyAccountID, account.ID)
	session.Set(keyRole, string(account.Role))
	return session.Save()
}

// SignOut clears the session.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// Caller reads the capability token out of the session. ok is false when
// the request carries no authenticated session.
func Caller(c *gin.Context) (id uint, role models.Role, ok bool) {
	session := sessions.Default(c)
	rawID, okID := session.Get(keyAccountID).(uint)
	rawRole, okRole := session.Get(keyRole).(string)
	if !okID || !okRole {
		return 0, "", false
	}
	return rawID, models.Role(rawRole), true
}

// RequireAuth rejects unauthenticated requests with a generic 401 and puts
// the caller's id and role on the gin context for the handlers behind it.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, role, ok := Caller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(CtxAccountID, id)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireRole gates a route group on one role. It runs behind RequireAuth
// and answers with a fixed denial that says nothing about what exists
// behind the gate.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(CtxRole)
		if !ok || got.(models.Role) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// AccountID returns the caller id RequireAuth stored on the context.
func AccountID(c *gin.Context) uint {
	return c.GetUint(CtxAccountID)
}
