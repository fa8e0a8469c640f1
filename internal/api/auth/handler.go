package auth

import (
	"net/http"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/authclient"
	"artisan-storefront/internal/domain/nav"
	"artisan-storefront/internal/domain/users"
	"artisan-storefront/internal/views"

	"github.com/gin-gonic/gin"
)

// SignUp forwards the form to the auth gateway. Either way the outcome is
// also queued as a notification on the session.
func SignUp(c *gin.Context) {
	var input struct {
		FullName string     `json:"fullName" binding:"required"`
		Email    string     `json:"email" binding:"required,email"`
		Password string     `json:"password" binding:"required"`
		Role     users.Role `json:"role" binding:"required,oneof=ARTIST BUYER"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := middleware.CurrentStore(c).SignUp(c.Request.Context(), authclient.SignUpRequest{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	render(c)
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := middleware.CurrentStore(c).Login(c.Request.Context(), authclient.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	render(c)
}

func Logout(c *gin.Context) {
	if err := middleware.CurrentStore(c).Logout(c.Request.Context()); err != nil {
		respond.Error(c, err)
		return
	}
	render(c)
}

// OpenModal shows the login or signup dialog.
func OpenModal(c *gin.Context) {
	var body struct {
		Modal string `json:"modal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing modal"})
		return
	}
	m, ok := nav.ParseModal(body.Modal)
	if !ok || m == nav.ModalNone {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Modal must be login or signup"})
		return
	}
	if err := middleware.CurrentStore(c).OpenModal(c.Request.Context(), m); err != nil {
		respond.Error(c, err)
		return
	}
	render(c)
}

func CloseModal(c *gin.Context) {
	if err := middleware.CurrentStore(c).CloseModal(c.Request.Context()); err != nil {
		respond.Error(c, err)
		return
	}
	render(c)
}

func render(c *gin.Context) {
	snap, ok := respond.Snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, views.Render(snap, views.Options{}))
}
