// Package authgateway is a development stand-in for the remote auth service:
// it registers accounts and issues HS256 session tokens.
package authgateway

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"artisan-storefront/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

type Handler struct {
	Accounts Accounts
	Secret   []byte
	TokenTTL time.Duration
	Now      func() time.Time
	Log      *logrus.Entry
}

// Register mounts signup and login under group.
func (h *Handler) Register(group gin.IRouter) {
	group.POST("/signup", h.SignUp)
	group.POST("/login", h.Login)
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) log() *logrus.Entry {
	if h.Log != nil {
		return h.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func (h *Handler) SignUp(c *gin.Context) {
	var input struct {
		FullName string     `json:"fullName" binding:"required"`
		Email    string     `json:"email" binding:"required,email"`
		Password string     `json:"password" binding:"required"`
		Role     users.Role `json:"role" binding:"required,oneof=ARTIST BUYER"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !isPasswordStrong(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 8 characters long and contain both letters and numbers"})
		return
	}
	if !emailPattern.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	acc := users.Account{
		FullName: input.FullName,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
	}
	if err := h.Accounts.Create(c.Request.Context(), &acc); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "An account with this email already exists"})
			return
		}
		h.log().WithError(err).Error("create account")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
		return
	}

	h.log().WithField("email", acc.Email).Info("account registered")
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	acc, err := h.Accounts.ByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			h.log().WithError(err).Error("load account")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	ttl := h.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acc.FullName,
		"email": acc.Email,
		"role":  acc.Role,
		"exp":   h.now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}
