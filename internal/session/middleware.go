package session

import (
	"log"

	"github.com/gin-gonic/gin"
)

const contextKey = "session"

// Middleware attaches the request's session to the gin context. Handlers
// that mutate the session call Persist (or Destroy) before responding.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		sess := s.resolve(c.Request.Context(), token)
		c.Set(contextKey, sess)
		c.Next()
	}
}

// FromContext returns the session placed on the context by Middleware.
func FromContext(c *gin.Context) *Session {
	sess, _ := c.Get(contextKey)
	return sess.(*Session)
}

// Persist writes the session to Redis and refreshes the signed cookie.
// A failed save is logged and dropped; the request still completes.
func (s *Store) Persist(c *gin.Context, sess *Session) {
	if err := s.Save(c.Request.Context(), sess); err != nil {
		log.Printf("ERROR: Failed to save session %s: %v", sess.ID, err)
		return
	}

	token, err := s.Token(sess)
	if err != nil {
		log.Printf("ERROR: Failed to sign session token: %v", err)
		return
	}
	c.SetCookie(CookieName, token, s.TTLSeconds(), "/", "", false, true)
}

// Destroy removes the session from Redis, expires the cookie and resets the
// in-memory session to a fresh one. Idempotent.
func (s *Store) Destroy(c *gin.Context, sess *Session) {
	if err := s.Delete(c.Request.Context(), sess.ID); err != nil {
		log.Printf("ERROR: Failed to delete session %s: %v", sess.ID, err)
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	*sess = *s.New()
}
