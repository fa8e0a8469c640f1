package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})
	return r
}

func TestSanitizeJSONStripsNestedTags(t *testing.T) {
	r := echoRouter(SanitizeJSON())
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{"comment":"<script>x</script>nice","tags":["<b>bold</b>"],"n":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"comment":"nice","tags":["bold"],"n":3}`, w.Body.String())
}

func TestSanitizeKeepsPlainPunctuation(t *testing.T) {
	cases := map[string]string{
		"Don't miss it & buy <3":      "Don't miss it & buy <3",
		"O'Brien":                     "O'Brien",
		"<i>Tom</i> & \"Jerry\"":      "Tom & \"Jerry\"",
		"&lt;b&gt;bold&lt;/b&gt;":     "bold",
		"fish &amp; chips":            "fish & chips",
		"<a href=\"x\">link</a> text": "link text",
	}
	for in, want := range cases {
		assert.Equal(t, want, Sanitize(in), in)
	}
}

func TestSanitizeJSONRejectsMalformed(t *testing.T) {
	r := echoRouter(SanitizeJSON())
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{"comment":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeJSONSkipsOtherContentTypes(t *testing.T) {
	r := echoRouter(SanitizeJSON())
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`<b>raw</b>`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, `<b>raw</b>`, w.Body.String())
}

func TestRateLimiterBlocksBurst(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	r := echoRouter(limiter.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	req.RemoteAddr = "198.51.100.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterCleanupForgetsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 1)
	r := echoRouter(limiter.Middleware())

	hit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/echo", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())

	limiter.Cleanup(0)
	assert.Equal(t, http.StatusOK, hit())
}
