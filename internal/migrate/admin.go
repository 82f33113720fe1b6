package migrate

import (
	"context"
	"errors"
	"strings"

	"chitrakala-api/internal/domain/content"

	"golang.org/x/crypto/bcrypt"
)

// AdminUpdater is satisfied by either content store.
type AdminUpdater interface {
	UpdateAdminCredentials(ctx context.Context, username, passwordHash string) (int64, error)
}

// UpdateAdminCredentials hashes password and writes it with username to
// every admin user. It returns how many users changed.
func UpdateAdminCredentials(ctx context.Context, s AdminUpdater, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, &content.ValidationError{Field: "username", Message: "is required"}
	}
	if password == "" {
		return 0, &content.ValidationError{Field: "password", Message: "is required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	n, err := s.UpdateAdminCredentials(ctx, username, string(hash))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("migrate: no admin user to update")
	}
	return n, nil
}
