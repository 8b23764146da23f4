package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pooja-Gajula/home-made/internal/models"
	"github.com/Pooja-Gajula/home-made/internal/session"
)

//
// --- Cart Handlers ---
//

// AddToCartInput defines the form for adding an item to the cart.
// Quantity defaults to 1 when the form omits it.
type AddToCartInput struct {
	Product  string  `form:"product" binding:"required"`
	Price    float64 `form:"price" binding:"required,gte=0"`
	Quantity int     `form:"quantity,default=1" binding:"gte=1"`
}

// AddToCart is the handler for POST /add_to_cart.
// It merges the line into the session cart and redirects to the cart view.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sess := session.FromContext(c)
	sess.Cart.Add(input.Product, input.Price, input.Quantity)
	h.Sessions.Persist(c, sess)

	log.Printf("Added to cart: %s (x%d)", input.Product, input.Quantity)
	c.Redirect(http.StatusFound, "/cart")
}

// ViewCart is the handler for GET /cart.
// An empty cart yields an empty list and a grand total of 0.
func (h *Handlers) ViewCart(c *gin.Context) {
	sess := session.FromContext(c)

	cart := sess.Cart
	if cart == nil {
		cart = models.Cart{} // keep the JSON an array, not null
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":        cart,
		"grand_total": sess.Cart.GrandTotal(),
	})
}

// ClearCart is the handler for POST /clear_cart. Idempotent.
func (h *Handlers) ClearCart(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Cart = nil
	h.Sessions.Persist(c, sess)

	log.Println("Cart cleared.")
	c.Redirect(http.StatusFound, "/cart")
}
