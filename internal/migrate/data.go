// Package migrate holds the one-shot jobs that move content between
// backends and keep the relational store maintained.
package migrate

import (
	"context"
	"errors"
	"strconv"

	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/store/pgstore"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Source is the read side of a content store.
type Source interface {
	ListUsers(ctx context.Context) ([]content.User, error)
	ListArtworks(ctx context.Context) ([]content.Artwork, error)
	GetAbout(ctx context.Context) (*content.About, error)
	GetContact(ctx context.Context) (*content.Contact, error)
	GetSettings(ctx context.Context) (*content.Settings, error)
}

type Step string

const (
	StepUsers    Step = "users"
	StepArtworks Step = "artworks"
	StepAbout    Step = "about"
	StepContact  Step = "contact"
	StepSettings Step = "settings"
)

type DataReport struct {
	Users           int
	UsersSkipped    int
	Artworks        int
	ArtworksSkipped int
	ArtForms        int
}

type dataOptions struct {
	beforeStep func(Step) error
}

type Option func(*dataOptions)

// WithBeforeStep runs fn before each step inside the transaction. A non-nil
// error aborts the migration.
func WithBeforeStep(fn func(Step) error) Option {
	return func(o *dataOptions) { o.beforeStep = fn }
}

type snapshot struct {
	users    []content.User
	artworks []content.Artwork
	about    content.About
	contact  content.Contact
	settings content.Settings
}

// Data copies every entity from src into db in one transaction. Users and
// artworks already present are kept as they are; about, art forms, contact
// and settings are overwritten with the source values. Any failure rolls the
// whole run back.
func Data(ctx context.Context, src Source, db *gorm.DB, log *logrus.Logger, opts ...Option) (*DataReport, error) {
	o := dataOptions{beforeStep: func(Step) error { return nil }}
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := readSnapshot(ctx, src)
	if err != nil {
		return nil, err
	}

	report := &DataReport{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := o.beforeStep(StepUsers); err != nil {
			return err
		}
		log.Info("Migrating users...")
		for i := range snap.users {
			written, err := pgstore.InsertUserIfAbsent(tx, &snap.users[i])
			if err != nil {
				return err
			}
			if written {
				report.Users++
			} else {
				report.UsersSkipped++
			}
		}

		if err := o.beforeStep(StepArtworks); err != nil {
			return err
		}
		log.Info("Migrating artworks...")
		for i := range snap.artworks {
			written, err := pgstore.InsertArtworkIfAbsent(tx, &snap.artworks[i])
			if err != nil {
				return err
			}
			if written {
				report.Artworks++
			} else {
				report.ArtworksSkipped++
			}
		}

		if err := o.beforeStep(StepAbout); err != nil {
			return err
		}
		log.Info("Migrating about page...")
		n, err := pgstore.UpsertAbout(tx, &snap.about)
		if err != nil {
			return err
		}
		report.ArtForms = n

		if err := o.beforeStep(StepContact); err != nil {
			return err
		}
		log.Info("Migrating contact info...")
		if err := pgstore.UpsertContact(tx, &snap.contact); err != nil {
			return err
		}

		if err := o.beforeStep(StepSettings); err != nil {
			return err
		}
		log.Info("Migrating settings...")
		return pgstore.UpsertSettings(tx, &snap.settings)
	})
	if err != nil {
		log.WithError(err).Error("❌ Migration error, rolled back")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"users":     report.Users,
		"artworks":  report.Artworks,
		"art_forms": report.ArtForms,
	}).Info("✅ Data migration completed successfully!")
	return report, nil
}

func readSnapshot(ctx context.Context, src Source) (*snapshot, error) {
	users, err := src.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	artworks, err := src.ListArtworks(ctx)
	if err != nil {
		return nil, err
	}

	about := content.DefaultAbout()
	if a, err := src.GetAbout(ctx); err == nil {
		about = withAboutDefaults(*a)
	} else if !errors.Is(err, content.ErrNotFound) {
		return nil, err
	}

	contact := content.DefaultContact()
	if c, err := src.GetContact(ctx); err == nil {
		contact = *c
		contact.Normalize()
	} else if !errors.Is(err, content.ErrNotFound) {
		return nil, err
	}

	settings := content.DefaultSettings()
	settings.Copyright = ""
	if s, err := src.GetSettings(ctx); err == nil {
		settings = *s
		if settings.SiteName == "" {
			settings.SiteName = content.DefaultSettings().SiteName
		}
	} else if !errors.Is(err, content.ErrNotFound) {
		return nil, err
	}

	return &snapshot{
		users:    users,
		artworks: artworks,
		about:    about,
		contact:  contact,
		settings: settings,
	}, nil
}

func withAboutDefaults(a content.About) content.About {
	def := content.DefaultAbout()
	if a.Story.Title == "" {
		a.Story.Title = def.Story.Title
	}
	if a.Process.Title == "" {
		a.Process.Title = def.Process.Title
	}
	if a.Commitment.Title == "" {
		a.Commitment.Title = def.Commitment.Title
	}
	a.Normalize()
	// Documents written before art forms carried ids get one derived from
	// position and title, so a rerun upserts the same rows.
	forms := make([]content.ArtForm, len(a.ArtForms))
	for i, f := range a.ArtForms {
		if f.ID == "" {
			f.ID = legacyArtFormID(i, f.Title)
		}
		forms[i] = f
	}
	a.ArtForms = forms
	return a
}

func legacyArtFormID(pos int, title string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("art-form/"+strconv.Itoa(pos)+"/"+title)).String()
}
