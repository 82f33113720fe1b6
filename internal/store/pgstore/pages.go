package pgstore

import (
	"context"

	"chitrakala-api/internal/domain/content"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListUsers(ctx context.Context) ([]content.User, error) {
	var rows []userRow
	if err := s.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	users := make([]content.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, content.User(r))
	}
	return users, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*content.User, error) {
	var row userRow
	err := s.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		Take(&row).Error
	if err != nil {
		return nil, mapError(err)
	}
	u := content.User(row)
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *content.User) error {
	row := userRow(*u)
	return mapError(s.db.WithContext(ctx).Create(&row).Error)
}

func (s *Store) UpdateAdminCredentials(ctx context.Context, username, passwordHash string) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&userRow{}).
		Where("role = ?", content.RoleAdmin).
		Updates(map[string]any{"username": username, "password": passwordHash})
	if res.Error != nil {
		return 0, mapError(res.Error)
	}
	return res.RowsAffected, nil
}

// InsertUserIfAbsent inserts inside tx and keeps any existing row with the
// same id. It reports whether a row was written.
func InsertUserIfAbsent(tx *gorm.DB, u *content.User) (bool, error) {
	row := userRow(*u)
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return false, mapError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetAbout returns the about row with every art form ordered by
// display_order, including forms that later updates no longer mention.
func (s *Store) GetAbout(ctx context.Context) (*content.About, error) {
	db := s.db.WithContext(ctx)

	var row aboutRow
	if err := db.Where("id = ?", singletonID).Take(&row).Error; err != nil {
		return nil, mapError(err)
	}

	var forms []artFormRow
	if err := db.Order("display_order").Find(&forms).Error; err != nil {
		return nil, mapError(err)
	}

	about := &content.About{
		Story: content.Story{
			Title:      row.StoryTitle,
			Paragraphs: []string(row.StoryParagraphs),
			Image:      row.StoryImage,
		},
		Process:    content.TitledText{Title: row.ProcessTitle, Text: row.ProcessText},
		Commitment: content.TitledText{Title: row.CommitmentTitle, Text: row.CommitmentText},
	}
	for _, f := range forms {
		about.ArtForms = append(about.ArtForms, content.ArtForm(f))
	}
	about.Normalize()
	return about, nil
}

// UpdateAbout upserts the about row and every supplied art form in one
// transaction. Art forms left out of a.ArtForms are not deleted.
func (s *Store) UpdateAbout(ctx context.Context, a *content.About) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := UpsertAbout(tx, a)
		return err
	})
}

// UpsertAbout writes the about singleton and upserts a.ArtForms with
// display_order set to their position. Forms without an id get a fresh one.
// It returns the number of art forms written.
func UpsertAbout(tx *gorm.DB, a *content.About) (int, error) {
	row := toAboutRow(a)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(aboutUpdateColumns),
	}).Create(&row).Error
	if err != nil {
		return 0, mapError(err)
	}

	for i, f := range a.ArtForms {
		form := artFormRow{
			ID:           f.ID,
			Title:        f.Title,
			Description:  f.Description,
			DisplayOrder: i,
		}
		if form.ID == "" {
			form.ID = uuid.NewString()
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "display_order"}),
		}).Create(&form).Error
		if err != nil {
			return i, mapError(err)
		}
	}
	return len(a.ArtForms), nil
}

func (s *Store) GetContact(ctx context.Context) (*content.Contact, error) {
	var row contactRow
	if err := s.db.WithContext(ctx).Where("id = ?", singletonID).Take(&row).Error; err != nil {
		return nil, mapError(err)
	}
	c := row.toDomain()
	return &c, nil
}

func (s *Store) UpdateContact(ctx context.Context, c *content.Contact) error {
	return UpsertContact(s.db.WithContext(ctx), c)
}

// UpsertContact writes the contact singleton through tx.
func UpsertContact(tx *gorm.DB, c *content.Contact) error {
	row := toContactRow(c)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(contactUpdateColumns),
	}).Create(&row).Error
	return mapError(err)
}

func (s *Store) GetSettings(ctx context.Context) (*content.Settings, error) {
	var row settingsRow
	if err := s.db.WithContext(ctx).Where("id = ?", singletonID).Take(&row).Error; err != nil {
		return nil, mapError(err)
	}
	st := row.toDomain()
	return &st, nil
}

func (s *Store) UpdateSettings(ctx context.Context, st *content.Settings) error {
	return UpsertSettings(s.db.WithContext(ctx), st)
}

// UpsertSettings writes the settings singleton through tx. The stored logo
// bytes are kept.
func UpsertSettings(tx *gorm.DB, st *content.Settings) error {
	row := toSettingsRow(st)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(settingsUpdateColumns),
	}).Create(&row).Error
	return mapError(err)
}
