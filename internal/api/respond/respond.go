// Package respond maps storefront errors onto JSON error bodies.
package respond

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/authclient"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/media"
	"artisan-storefront/internal/store"

	"github.com/gin-gonic/gin"
)

// Status picks the HTTP status for err.
func Status(err error) int {
	var gwErr *authclient.Error
	switch {
	case errors.Is(err, catalog.ErrArtworkNotFound), errors.Is(err, catalog.ErrArtistNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrImageRequired), errors.Is(err, media.ErrNotAnImage):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrLoginRequired):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrAuthInFlight):
		return http.StatusConflict
	case errors.Is(err, store.ErrClosed), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.As(err, &gwErr):
		if gwErr.Status >= 400 && gwErr.Status < 500 {
			return gwErr.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error writes {"error": ...}. Server-side failures hide their detail.
func Error(c *gin.Context, err error) {
	status := Status(err)
	_ = c.Error(err)
	msg := err.Error()
	var gwErr *authclient.Error
	switch {
	case errors.As(err, &gwErr) && gwErr.Message != "":
		msg = gwErr.Message
	case status >= 500:
		msg = http.StatusText(status)
	}
	c.JSON(status, gin.H{"error": msg})
}

// ID reads the int64 path parameter name, answering 400 when it is not a number.
func ID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// Snapshot loads the session's state or writes the error and returns false.
func Snapshot(c *gin.Context) (store.Snapshot, bool) {
	snap, err := middleware.CurrentStore(c).Snapshot(c.Request.Context())
	if err != nil {
		Error(c, err)
		return store.Snapshot{}, false
	}
	return snap, true
}
