package store

import (
	"context"
	"database/sql"
	"log"

	"github.com/Pooja-Gajula/home-made/internal/models"
)

// UserStore wraps get/put against the users table. Driver errors are
// terminated here: they are logged and reported as absent/failed, never
// returned, so a flaky database cannot abort the enclosing request.
type UserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{DB: db}
}

// Get looks up an account by identifier. The second result is false when
// the account does not exist or the lookup itself failed.
func (s *UserStore) Get(ctx context.Context, identifier string) (*models.User, bool) {
	query := `
		SELECT identifier, display_name, password_hash, created_at
		FROM users
		WHERE identifier = ?`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, identifier).Scan(
		&user.Identifier,
		&user.DisplayName,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("ERROR: Failed to look up user %s: %v", identifier, err)
		}
		return nil, false
	}

	return &user, true
}

// Put stores a new account record. Returns false if the write failed.
func (s *UserStore) Put(ctx context.Context, user *models.User) bool {
	query := `
		INSERT INTO users (identifier, display_name, password_hash, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := s.DB.ExecContext(ctx, query,
		user.Identifier,
		user.DisplayName,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		log.Printf("ERROR: Failed to store user %s: %v", user.Identifier, err)
		return false
	}

	return true
}
