package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Pooja-Gajula/home-made/internal/handlers"
	"github.com/Pooja-Gajula/home-made/internal/session"
)

// SetupRouter wires the storefront's HTTP surface. Every route runs behind
// the session middleware; the cart and the authenticated identifier live in
// the session, so there are no per-route auth guards.
func SetupRouter(h *handlers.Handlers, sessions *session.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(h.InternalError))
	router.Use(sessions.Middleware())

	// --- Static Pages ---
	router.GET("/", h.Home)
	router.GET("/about", h.About)
	router.GET("/products", h.Products)
	router.GET("/products/:category", h.CategoryPage)
	router.GET("/contact", h.ShowContact)
	router.POST("/contact", h.Contact)

	// --- Cart ---
	router.POST("/add_to_cart", h.AddToCart)
	router.GET("/cart", h.ViewCart)
	router.POST("/clear_cart", h.ClearCart)

	// --- Checkout ---
	router.GET("/checkout", h.ShowCheckout)
	router.POST("/checkout", h.SubmitCheckout)
	router.GET("/order_success", h.OrderSuccess)

	// --- Auth ---
	router.GET("/signup", h.ShowSignup)
	router.POST("/signup", h.Signup)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)

	// --- Error Pages ---
	router.NoRoute(h.NotFound)

	return router
}
