package users

import (
	"net/http"

	"artisan-storefront/internal/api/respond"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser reports who is signed in to this session and what the
// header may offer them. The user is null while logged out.
func GetCurrentUser(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	policy := snap.Policy()
	c.JSON(http.StatusOK, gin.H{
		"user":         snap.CurrentUser,
		"auth":         policy.State,
		"capabilities": policy.Capabilities,
	})
}
