package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pooja-Gajula/home-made/internal/models"
	"github.com/Pooja-Gajula/home-made/internal/session"
)

//
// --- Auth Handlers ---
//

// SignupInput defines the form for creating an account. The identifier is
// the account's unique key; this deployment uses the email address.
type SignupInput struct {
	Identifier  string `form:"identifier" binding:"required,email"`
	DisplayName string `form:"display_name" binding:"required"`
	Password    string `form:"password" binding:"required,min=8"`
}

// ShowSignup is the handler for GET /signup.
func (h *Handlers) ShowSignup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "signup"})
}

// Signup is the handler for POST /signup.
// A taken identifier is a retryable validation failure and never
// overwrites the existing record.
func (h *Handlers) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, found := h.Users.Get(c.Request.Context(), input.Identifier); found {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with that email already exists."})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Identifier:   input.Identifier,
		DisplayName:  input.DisplayName,
		PasswordHash: password.Hash,
		CreatedAt:    time.Now().UTC(),
	}

	if ok := h.Users.Put(c.Request.Context(), user); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// LoginInput defines the login form.
type LoginInput struct {
	Identifier string `form:"identifier" binding:"required"`
	Password   string `form:"password" binding:"required"`
}

// ShowLogin is the handler for GET /login.
func (h *Handlers) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

// Login is the handler for POST /login.
// Unknown identifier and wrong password produce the same message, so a
// failed attempt learns nothing about which half was wrong.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, found := h.Users.Get(c.Request.Context(), input.Identifier)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil || !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	sess := session.FromContext(c)
	sess.Identifier = user.Identifier
	h.Sessions.Persist(c, sess)

	c.Redirect(http.StatusFound, "/")
}

// Logout is the handler for GET /logout. It destroys the whole session,
// cart included.
func (h *Handlers) Logout(c *gin.Context) {
	sess := session.FromContext(c)
	h.Sessions.Destroy(c, sess)

	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}
