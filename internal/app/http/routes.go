package routes

import (
	"net/http"

	artworksapi "artisan-storefront/internal/api/artworks"
	authapi "artisan-storefront/internal/api/auth"
	"artisan-storefront/internal/api/billing"
	cartapi "artisan-storefront/internal/api/cart"
	catalogapi "artisan-storefront/internal/api/catalog"
	favoritesapi "artisan-storefront/internal/api/favorites"
	"artisan-storefront/internal/api/notifications"
	stripewebhooks "artisan-storefront/internal/api/stripewebhook"
	"artisan-storefront/internal/api/users"
	viewapi "artisan-storefront/internal/api/view"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/app/metrics"
	"artisan-storefront/internal/domain/media"
	"artisan-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	Sessions     *session.Registry
	Media        media.Store
	Orders       billing.OrderLister
	Webhook      *stripewebhooks.Handler
	AuthLimiter  *middleware.IPRateLimiter
	CORSOrigin   string
	SecureCookie bool
	Log          *logrus.Entry
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(metrics.GinMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.Static("/media", d.Media.Dir)
	if d.Webhook != nil {
		r.POST("/webhook", d.Webhook.Serve)
	}

	s := r.Group("/")
	s.Use(middleware.Session(d.Sessions, d.SecureCookie))

	// Credentials go to the gateway exactly as typed.
	creds := s.Group("/auth")
	if d.AuthLimiter != nil {
		creds.Use(d.AuthLimiter.Middleware())
	}
	creds.POST("/signup", authapi.SignUp)
	creds.POST("/login", authapi.Login)

	c := s.Group("/")
	c.Use(middleware.SanitizeJSON())

	c.GET("/view", viewapi.GetView)
	c.GET("/me", users.GetCurrentUser)
	c.POST("/navigate", viewapi.Navigate)
	c.PUT("/scroll", viewapi.Scroll)

	c.GET("/artworks", catalogapi.ListArtworks)
	c.GET("/artworks/:id", catalogapi.GetArtwork)
	c.POST("/artworks/:id/select", catalogapi.SelectArtwork)
	c.POST("/artworks/:id/reviews", artworksapi.PostReview)
	c.GET("/artists", catalogapi.ListArtists)
	c.GET("/artists/:id", catalogapi.GetArtist)
	c.POST("/artists/:id/select", catalogapi.SelectArtist)
	c.GET("/exhibitions", catalogapi.ListExhibitions)

	c.GET("/cart", cartapi.GetCart)
	c.POST("/cart/items", cartapi.AddItem)
	c.PUT("/cart/items/:id", cartapi.UpdateItem)
	c.POST("/checkout/pay", billing.Pay)
	c.GET("/orders", billing.OrderHistory(d.Orders))

	c.GET("/favorites", favoritesapi.List)

	c.GET("/notifications", notifications.List)
	c.GET("/notifications/ws", notifications.NewStream(d.CORSOrigin, d.Log).Serve)

	c.POST("/auth/logout", authapi.Logout)
	c.POST("/auth/modal", authapi.OpenModal)
	c.DELETE("/auth/modal", authapi.CloseModal)

	// Signed in
	member := c.Group("/")
	member.Use(middleware.RequireUser())
	member.POST("/favorites/:id/toggle", favoritesapi.Toggle)

	uploads := &artworksapi.Handler{Media: d.Media, Log: d.Log}
	member.POST("/artworks", uploads.Submit)
}
