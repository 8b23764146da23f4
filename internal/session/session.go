package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Pooja-Gajula/home-made/internal/auth"
	"github.com/Pooja-Gajula/home-made/internal/models"
)

// CookieName is the cookie the signed session token travels in.
const CookieName = "storefront_session"

// ErrNotFound is returned when no session exists under the given ID,
// including sessions that expired out of Redis.
var ErrNotFound = errors.New("session not found")

// Session is the per-browser state: the pending cart and, once logged in,
// the authenticated identifier. The ID never leaves the server unsigned.
type Session struct {
	ID         string      `json:"-"`
	Cart       models.Cart `json:"cart,omitempty"`
	Identifier string      `json:"identifier,omitempty"`
}

// LoggedIn reports whether the session carries an authenticated identifier.
func (s *Session) LoggedIn() bool {
	return s.Identifier != ""
}

// Store keeps sessions in Redis as JSON under "session:<id>" and signs the
// ID into the cookie token. Saves are last-write-wins; concurrent requests
// from the same browser are not coordinated.
type Store struct {
	client *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewStore(client *redis.Client, secret []byte) *Store {
	return &Store{
		client: client,
		secret: secret,
		ttl:    72 * time.Hour,
	}
}

// New returns a fresh, empty session with a random ID. Nothing is written
// to Redis until the first Save.
func (s *Store) New() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	sess := &Session{ID: id}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}

	return sess, nil
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Token signs the session ID for transport in the cookie.
func (s *Store) Token(sess *Session) (string, error) {
	return auth.GenerateSessionToken(s.secret, sess.ID, s.ttl)
}

// TTLSeconds is the cookie max-age matching the Redis TTL.
func (s *Store) TTLSeconds() int {
	return int(s.ttl.Seconds())
}

// resolve turns a cookie token into a live session. A missing, forged or
// expired token and a vanished Redis entry all yield a fresh session, so a
// bad cookie is indistinguishable from no cookie.
func (s *Store) resolve(ctx context.Context, token string) *Session {
	if token == "" {
		return s.New()
	}

	id, err := auth.ParseSessionToken(s.secret, token)
	if err != nil {
		return s.New()
	}

	sess, err := s.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("ERROR: Failed to load session %s: %v", id, err)
		}
		return s.New()
	}

	return sess
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
