package billing

import (
	"net/http"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// Pay settles the session's cart with the checkout form. When the payer
// hands back a redirect (Stripe Checkout) the client should follow it.
func Pay(c *gin.Context) {
	var form billing.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := middleware.CurrentStore(c).Pay(c.Request.Context(), form)
	if err != nil {
		respond.Error(c, err)
		return
	}

	resp := gin.H{"receipt": receipt}
	if receipt.RedirectURL != "" {
		resp["url"] = receipt.RedirectURL
	}
	c.JSON(http.StatusOK, resp)
}
