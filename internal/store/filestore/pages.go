package filestore

import (
	"context"
	"strings"

	"chitrakala-api/internal/domain/content"

	"github.com/google/uuid"
)

func (s *Store) ListUsers(ctx context.Context) ([]content.User, error) {
	var users []content.User
	if _, err := s.readEntity(docUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []content.User{}
	}
	return users, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*content.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, content.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, u *content.User) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.ID == u.ID || strings.EqualFold(existing.Username, u.Username) {
			return content.ErrConflict
		}
	}
	return s.writeEntity(docUsers, append(users, *u))
}

func (s *Store) UpdateAdminCredentials(ctx context.Context, username, passwordHash string) (int64, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	for i := range users {
		if users[i].Role == content.RoleAdmin {
			users[i].Username = username
			users[i].Password = passwordHash
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return n, s.writeEntity(docUsers, users)
}

func (s *Store) GetAbout(ctx context.Context) (*content.About, error) {
	var about content.About
	found, err := s.readEntity(docAbout, &about)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, content.ErrNotFound
	}
	about.Normalize()
	return &about, nil
}

// UpdateAbout replaces the document, art forms included. DisplayOrder is
// stamped from the position in the supplied list and art forms without an
// id get one, so later migrations see the same id every run.
func (s *Store) UpdateAbout(ctx context.Context, a *content.About) error {
	doc := *a
	doc.ArtForms = make([]content.ArtForm, len(a.ArtForms))
	for i, f := range a.ArtForms {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		f.DisplayOrder = i
		doc.ArtForms[i] = f
	}
	doc.Normalize()
	return s.writeEntity(docAbout, doc)
}

// GetContact decodes over the defaults, so flags missing from the document
// read as their default rather than false.
func (s *Store) GetContact(ctx context.Context) (*content.Contact, error) {
	c := content.DefaultContact()
	found, err := s.readEntity(docContact, &c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, content.ErrNotFound
	}
	c.Normalize()
	return &c, nil
}

func (s *Store) UpdateContact(ctx context.Context, c *content.Contact) error {
	return s.writeEntity(docContact, c)
}

func (s *Store) GetSettings(ctx context.Context) (*content.Settings, error) {
	st := content.DefaultSettings()
	// a document without a copyright line keeps it empty
	st.Copyright = ""
	found, err := s.readEntity(docSettings, &st)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, content.ErrNotFound
	}
	return &st, nil
}

func (s *Store) UpdateSettings(ctx context.Context, st *content.Settings) error {
	return s.writeEntity(docSettings, st)
}
