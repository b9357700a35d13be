package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clanPortal/models"
)

// CookieName is the session cookie set on login.
const CookieName = "portal_session"

const (
	principalKey = "auth.principal"
	sessionIDKey = "auth.sessionID"
)

// Middleware resolves the session cookie into a Principal on the request
// context. It never rejects by itself; the Require* gates do. A missing,
// unparseable, or stale cookie simply leaves the request anonymous.
func Middleware(sessions *SessionManager, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil {
			c.Next()
			return
		}
		sid, err := DecodeSessionToken(cookie, secret)
		if err != nil {
			c.Next()
			return
		}
		if p, ok := sessions.Get(sid); ok {
			c.Set(principalKey, p)
			c.Set(sessionIDKey, sid)
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal attached to the request,
// if any.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// SessionIDFrom returns the resolved session id, if any.
func SessionIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// RequireLogin aborts with 401 when no authenticated session is attached.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not logged in"})
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 401 when there is no session and with 403 when the
// session's role is outside the allowed set.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not logged in"})
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	}
}
