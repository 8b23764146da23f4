package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Pooja-Gajula/home-made/internal/models"
	"github.com/Pooja-Gajula/home-made/internal/notify"
	"github.com/Pooja-Gajula/home-made/internal/session"
)

//
// --- Checkout ---
//

// ShowCheckout is the handler for GET /checkout. Checkout is impossible on
// an empty cart, so the guard redirects back to the cart view.
func (h *Handlers) ShowCheckout(c *gin.Context) {
	sess := session.FromContext(c)
	if len(sess.Cart) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":        sess.Cart,
		"grand_total": sess.Cart.GrandTotal(),
	})
}

// CheckoutInput defines the buyer details form.
type CheckoutInput struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Address string `form:"address" binding:"required"`
}

// SubmitCheckout is the handler for POST /checkout.
//
// It assembles the order from the live cart, writes it to the order store,
// sends the confirmation email and the push broadcast, then clears the cart
// and redirects to the success page. The store write and both notifications
// are best effort: a failure is logged and the flow still succeeds, so the
// buyer cannot tell a lost order from a recorded one.
func (h *Handlers) SubmitCheckout(c *gin.Context) {
	sess := session.FromContext(c)
	if len(sess.Cart) == 0 {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	var input CheckoutInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	order := &models.Order{
		OrderID:   uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Address:   input.Address,
		OrderTime: time.Now().UTC(),
		Items:     append(models.Cart{}, sess.Cart...),
		Total:     sess.Cart.GrandTotal(),
	}

	// The result is deliberately ignored: the adapter has already logged
	// any failure and checkout proceeds regardless.
	h.Orders.Put(c.Request.Context(), order)

	if err := h.Mailer.SendEmail(order.Email, "Your Home-Made order confirmation", order.EmailSummary()); err != nil {
		log.Printf("ERROR: Failed to send confirmation email to %s: %v", order.Email, err)
	}

	if err := h.Push.Send(c.Request.Context(), notify.Target{Topic: h.OrderTopic}, order.PushMessage()); err != nil {
		log.Printf("ERROR: Failed to push order notification for %s: %v", order.OrderID, err)
	}

	sess.Cart = nil
	h.Sessions.Persist(c, sess)

	log.Println("Order placed and cart cleared.")
	c.Redirect(http.StatusFound, "/order_success")
}

// OrderSuccess is the handler for GET /order_success.
func (h *Handlers) OrderSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Your order has been placed. A confirmation email is on its way.",
	})
}
