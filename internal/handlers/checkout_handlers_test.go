package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutForm() url.Values {
	return url.Values{
		"name":    {"A"},
		"email":   {"a@x.com"},
		"address": {"addr"},
	}
}

func TestCheckout_EmptyCartRedirectsToCart(t *testing.T) {
	app := newTestApp(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := app.do(t, method, "/checkout", checkoutForm(), nil)
		assert.Equal(t, http.StatusFound, w.Code, method)
		assert.Equal(t, "/cart", w.Header().Get("Location"), method)
	}

	// no order written, nothing notified
	assert.NoError(t, app.mock.ExpectationsWereMet())
	assert.Empty(t, app.mailer.sent)
	assert.Empty(t, app.push.sent)
}

func TestShowCheckout_NonEmptyCart(t *testing.T) {
	app := newTestApp(t)
	sess := app.sessions.New()
	sess.Cart.Add("Mango Pickle", 250.0, 2)
	cookie := app.seedSession(t, sess)

	w := app.do(t, http.MethodGet, "/checkout", nil, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"grand_total":500`)
}

func TestSubmitCheckout_PlacesOrderAndClearsCart(t *testing.T) {
	app := newTestApp(t)
	sess := app.sessions.New()
	sess.Cart.Add("Mango Pickle", 250.0, 2)
	cookie := app.seedSession(t, sess)

	app.mock.ExpectExec("INSERT INTO orders").
		WithArgs(sqlmock.AnyArg(), "A", "a@x.com", "addr", sqlmock.AnyArg(), sqlmock.AnyArg(), 500.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := app.do(t, http.MethodPost, "/checkout", checkoutForm(), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/order_success", w.Header().Get("Location"))
	assert.NoError(t, app.mock.ExpectationsWereMet())

	// confirmation email to the buyer
	require.Len(t, app.mailer.sent, 1)
	assert.Equal(t, "a@x.com", app.mailer.sent[0].to)
	assert.Contains(t, app.mailer.sent[0].body, "Total: ₹500.00")

	// broadcast on the order topic
	require.Len(t, app.push.sent, 1)
	assert.Equal(t, "placed", app.push.sent[0].target.Topic)
	assert.Contains(t, app.push.sent[0].message, "New Order Placed!")

	// cart cleared
	got := app.sessionState(t, sess.ID)
	assert.Empty(t, got.Cart)
}

func TestSubmitCheckout_SucceedsWhenEverythingDownstreamFails(t *testing.T) {
	app := newTestApp(t)
	sess := app.sessions.New()
	sess.Cart.Add("Mango Pickle", 250.0, 2)
	cookie := app.seedSession(t, sess)

	app.mock.ExpectExec("INSERT INTO orders").
		WillReturnError(errors.New("database is down"))
	app.mailer.err = errors.New("smtp relay refused")
	app.push.err = errors.New("broker unreachable")

	w := app.do(t, http.MethodPost, "/checkout", checkoutForm(), cookie)

	// checkout still reaches success and the cart is still cleared
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/order_success", w.Header().Get("Location"))

	got := app.sessionState(t, sess.ID)
	assert.Empty(t, got.Cart)
}

func TestSubmitCheckout_InvalidBuyerDetails(t *testing.T) {
	app := newTestApp(t)
	sess := app.sessions.New()
	sess.Cart.Add("Mango Pickle", 250.0, 2)
	cookie := app.seedSession(t, sess)

	w := app.do(t, http.MethodPost, "/checkout", url.Values{
		"name":    {"A"},
		"email":   {"not-an-email"},
		"address": {"addr"},
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing happened: no order, no notifications, cart untouched
	assert.NoError(t, app.mock.ExpectationsWereMet())
	assert.Empty(t, app.mailer.sent)
	got := app.sessionState(t, sess.ID)
	assert.Len(t, got.Cart, 1)
}

func TestOrderSuccessPage(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/order_success", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
