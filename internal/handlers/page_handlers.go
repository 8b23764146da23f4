package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pooja-Gajula/home-made/internal/catalog"
	"github.com/Pooja-Gajula/home-made/internal/session"
)

//
// --- Static Pages & Errors ---
//

// Home is the handler for GET /.
func (h *Handlers) Home(c *gin.Context) {
	sess := session.FromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"page":      "home",
		"message":   "Welcome to Home-Made Pickles & Snacks",
		"logged_in": sess.LoggedIn(),
	})
}

// About is the handler for GET /about.
func (h *Handlers) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "about",
		"message": "Traditional pickles and snacks, made at home and shipped across India.",
	})
}

// Products is the handler for GET /products. It lists the whole catalog
// grouped by category.
func (h *Handlers) Products(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":       "products",
		"categories": catalog.Categories(),
	})
}

// CategoryPage is the handler for GET /products/:category.
func (h *Handlers) CategoryPage(c *gin.Context) {
	cat, ok := catalog.BySlug(c.Param("category"))
	if !ok {
		h.NotFound(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     cat.Slug,
		"category": cat,
	})
}

// ContactInput defines the contact form. The message is acknowledged but
// never persisted.
type ContactInput struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// ShowContact is the handler for GET /contact.
func (h *Handlers) ShowContact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "contact"})
}

// Contact is the handler for POST /contact.
func (h *Handlers) Contact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Not persisted anywhere; the message only reaches the process log.
	log.Printf("New contact message from %s <%s>: %s", input.Name, input.Email, input.Message)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thanks for reaching out. We will get back to you soon.",
	})
}

// NotFound renders the 404 page for unmapped routes.
func (h *Handlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"page":  "404",
		"error": "The page you are looking for does not exist.",
	})
}

// InternalError renders the 500 page for panics caught by the recovery
// middleware.
func (h *Handlers) InternalError(c *gin.Context, _ any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"page":  "500",
		"error": "Something went wrong on our side. Please try again.",
	})
}
