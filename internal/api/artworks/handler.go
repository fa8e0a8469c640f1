package artworks

import (
	"net/http"
	"strconv"
	"strings"

	"artisan-storefront/internal/api/respond"
	"artisan-storefront/internal/app/http/middleware"
	"artisan-storefront/internal/domain/catalog"
	"artisan-storefront/internal/domain/media"
	"artisan-storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxImageBytes = 10 << 20

type Handler struct {
	Media media.Store
	Log   *logrus.Entry
}

// Submit takes the multipart upload form: title, description, category,
// price, type and an image file.
func (h *Handler) Submit(c *gin.Context) {
	title := strings.TrimSpace(middleware.Sanitize(c.PostForm("title")))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	category := catalog.Category(c.PostForm("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}
	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a whole non-negative number"})
		return
	}
	listing := catalog.ListingType(c.DefaultPostForm("type", string(catalog.ListingSale)))
	if listing != catalog.ListingSale && listing != catalog.ListingAuction {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be sale or auction"})
		return
	}

	sub := store.Submission{
		Title:       title,
		Description: middleware.Sanitize(c.PostForm("description")),
		Category:    category,
		Price:       price,
		Type:        listing,
	}

	if fh, err := c.FormFile("image"); err == nil {
		if fh.Size > maxImageBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image"})
			return
		}
		img, err := h.Media.Save(f)
		f.Close()
		if err != nil {
			respond.Error(c, err)
			return
		}
		sub.Image = &img
	}

	art, err := middleware.CurrentStore(c).SubmitArtwork(c.Request.Context(), sub)
	if err != nil {
		if sub.Image != nil {
			h.Media.Remove(*sub.Image)
		}
		respond.Error(c, err)
		return
	}

	if h.Log != nil {
		h.Log.WithFields(logrus.Fields{"artwork": art.ID, "title": art.Title}).Info("artwork uploaded")
	}
	c.JSON(http.StatusCreated, art)
}

// PostReview appends a review. Blank comments are refused here so the
// store never sees them.
func PostReview(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Comment) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment must not be empty"})
		return
	}

	review, err := middleware.CurrentStore(c).PostReview(c.Request.Context(), id, body.Comment)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
