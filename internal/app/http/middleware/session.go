package middleware

import (
	"net/http"
	"time"

	"artisan-storefront/internal/session"
	"artisan-storefront/internal/store"

	"github.com/gin-gonic/gin"
)

const storeKey = "store"

const sessionCookieAge = 30 * 24 * time.Hour

// Session resolves the caller's store from the session cookie, opening a
// new session when the cookie is missing or unknown.
func Session(reg *session.Registry, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)

		st, created, err := reg.Resolve(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not open session"})
			return
		}
		if created || id != st.SessionID() {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, st.SessionID(), int(sessionCookieAge.Seconds()), "/", "", secure, true)
		}

		c.Set(storeKey, st)
		c.Next()
	}
}

// CurrentStore returns the store attached by Session.
func CurrentStore(c *gin.Context) *store.Store {
	return c.MustGet(storeKey).(*store.Store)
}

// RequireUser rejects requests from sessions nobody is signed in to.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := CurrentStore(c).Snapshot(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session unavailable"})
			return
		}
		if snap.CurrentUser == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
			return
		}
		c.Next()
	}
}
