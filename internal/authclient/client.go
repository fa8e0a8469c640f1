// Package authclient talks to the external auth gateway that issues session tokens.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"artisan-storefront/internal/domain/users"

	"github.com/tidwall/gjson"
)

// Error is a failed gateway call. Message carries the gateway's own
// explanation when the response body had one.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("auth gateway: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("auth gateway: %d %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("auth gateway: status %d", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

type SignUpRequest struct {
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     users.Role `json:"role"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New builds a client for baseURL. A zero timeout leaves calls unbounded.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// SignUp registers an account; the response body is not used.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	_, err := c.post(ctx, "/signup", req)
	return err
}

// Login exchanges credentials for a compact signed token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := c.post(ctx, "/login", creds)
	if err != nil {
		return "", err
	}
	token := gjson.GetBytes(body, "token").String()
	if token == "" {
		return "", &Error{Status: http.StatusOK, Message: "response has no token"}
	}
	return token, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &Error{Status: res.StatusCode, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &Error{
			Status:  res.StatusCode,
			Message: gjson.GetBytes(body, "message").String(),
		}
	}
	return body, nil
}
