// Package content holds the site content model and the storage contracts
// shared by the file and relational backends.
package content

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id has no row/document, or a
	// singleton has never been written.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a storage-level constraint violation, e.g. a
	// duplicate artwork id.
	ErrConflict = errors.New("constraint violation")
)

// ValidationError is raised at the API boundary only. Stores trust callers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Store is implemented by both backends. One is chosen at process start.
type Store interface {
	ListUsers(ctx context.Context) ([]User, error)
	// GetUserByUsername matches case-insensitively.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, u *User) error
	// UpdateAdminCredentials rewrites username and password hash of every
	// admin user and returns how many were changed.
	UpdateAdminCredentials(ctx context.Context, username, passwordHash string) (int64, error)

	// ListArtworks returns newest first.
	ListArtworks(ctx context.Context) ([]Artwork, error)
	GetArtwork(ctx context.Context, id string) (*Artwork, error)
	CreateArtwork(ctx context.Context, a *Artwork) (*Artwork, error)
	// UpdateArtwork replaces every mutable field. Missing id is ErrNotFound.
	UpdateArtwork(ctx context.Context, id string, a *Artwork) (*Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error

	GetAbout(ctx context.Context) (*About, error)
	UpdateAbout(ctx context.Context, a *About) error
	GetContact(ctx context.Context) (*Contact, error)
	UpdateContact(ctx context.Context, c *Contact) error
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSettings(ctx context.Context, s *Settings) error

	Close() error
}

// ImageStore is only implemented by the relational backend. Callers check
// for it with a type assertion.
type ImageStore interface {
	StoreArtworkImage(ctx context.Context, id string, img Image) error
	GetArtworkImage(ctx context.Context, id string) (*Image, error)
	StoreAboutImage(ctx context.Context, img Image) error
	GetAboutImage(ctx context.Context) (*Image, error)
	StoreLogoImage(ctx context.Context, img Image) error
	GetLogoImage(ctx context.Context) (*Image, error)
}
