package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticPages(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/about", "/products", "/contact", "/signup", "/login"} {
		w := app.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCategoryPages(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/products/veg-pickles", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mango Pickle")

	w = app.do(t, http.MethodGet, "/products/no-such-category", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContact_AcknowledgesWithoutPersisting(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/contact", url.Values{
		"name":    {"A"},
		"email":   {"a@x.com"},
		"message": {"Do you ship abroad?"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	// nothing touched the database
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestUnmappedRouteGets404Page(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/definitely/not/a/page", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}
