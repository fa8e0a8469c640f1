package billing

import (
	"context"
	"net/http"

	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type OrderLister interface {
	ListBySession(ctx context.Context, sessionID string) ([]billing.Order, error)
}

// OrderHistory lists the session's recorded orders, newest first. Without a
// database nothing is recorded and the list is empty.
func OrderHistory(orders OrderLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		if orders == nil {
			c.JSON(http.StatusOK, []billing.Order{})
			return
		}
		list, err := orders.ListBySession(c.Request.Context(), middleware.CurrentStore(c).SessionID())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
