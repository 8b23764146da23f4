package handlers

import (
	"github.com/Pooja-Gajula/home-made/internal/notify"
	"github.com/Pooja-Gajula/home-made/internal/session"
	"github.com/Pooja-Gajula/home-made/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Users    *store.UserStore
	Orders   *store.OrderStore
	Sessions *session.Store
	Mailer   notify.Mailer
	Push     notify.Push

	// OrderTopic is the broadcast topic every placed order is pushed to.
	OrderTopic string
}
