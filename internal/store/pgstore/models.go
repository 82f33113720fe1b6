package pgstore

import (
	"time"

	"chitrakala-api/internal/domain/content"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type userRow struct {
	ID        string `gorm:"primaryKey"`
	Username  string
	Password  string
	Role      string
	CreatedAt time.Time
}

func (userRow) TableName() string { return "users" }

// artworkRow never selects the image blob; see artworkColumns.
type artworkRow struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Category    string
	Price       float64
	Description string
	Dimensions  string
	Materials   string
	Image       string
	Featured    bool
	Sizes       datatypes.JSONSlice[content.SizePrice] `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (artworkRow) TableName() string { return "artworks" }

var artworkColumns = []string{
	"id", "title", "category", "price", "description", "dimensions",
	"materials", "image", "featured", "sizes", "created_at", "updated_at",
}

func toArtworkRow(a *content.Artwork) artworkRow {
	sizes := a.Sizes
	if sizes == nil {
		sizes = []content.SizePrice{}
	}
	return artworkRow{
		ID:          a.ID,
		Title:       a.Title,
		Category:    a.Category,
		Price:       a.Price,
		Description: a.Description,
		Dimensions:  a.Dimensions,
		Materials:   a.Materials,
		Image:       a.Image,
		Featured:    a.Featured,
		Sizes:       datatypes.NewJSONSlice(sizes),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r artworkRow) toDomain() content.Artwork {
	a := content.Artwork{
		ID:          r.ID,
		Title:       r.Title,
		Category:    r.Category,
		Price:       r.Price,
		Description: r.Description,
		Dimensions:  r.Dimensions,
		Materials:   r.Materials,
		Image:       r.Image,
		Featured:    r.Featured,
		Sizes:       []content.SizePrice(r.Sizes),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	a.Normalize()
	return a
}

type aboutRow struct {
	ID              int `gorm:"primaryKey;autoIncrement:false"`
	StoryTitle      string
	StoryParagraphs pq.StringArray `gorm:"type:text[]"`
	StoryImage      string
	ProcessTitle    string
	ProcessText     string
	CommitmentTitle string
	CommitmentText  string
	UpdatedAt       time.Time
}

func (aboutRow) TableName() string { return "about" }

var aboutUpdateColumns = []string{
	"story_title", "story_paragraphs", "story_image", "process_title",
	"process_text", "commitment_title", "commitment_text", "updated_at",
}

type artFormRow struct {
	ID           string `gorm:"primaryKey"`
	Title        string
	Description  string
	DisplayOrder int
}

func (artFormRow) TableName() string { return "art_forms" }

type contactRow struct {
	ID              int `gorm:"primaryKey;autoIncrement:false"`
	Emails          pq.StringArray `gorm:"type:text[]"`
	Phone           string
	AddressStreet   string
	AddressCity     string
	AddressState    string
	AddressZip      string
	HoursWeekdays   string
	HoursWeekend    string
	SocialFacebook  string
	SocialInstagram string
	SocialPinterest string
	SocialTwitter   string
	ShowHours       bool
	ShowAddress     bool
	ShowSocial      bool
	UpdatedAt       time.Time
}

func (contactRow) TableName() string { return "contact" }

var contactUpdateColumns = []string{
	"emails", "phone", "address_street", "address_city", "address_state",
	"address_zip", "hours_weekdays", "hours_weekend", "social_facebook",
	"social_instagram", "social_pinterest", "social_twitter", "show_hours",
	"show_address", "show_social", "updated_at",
}

type settingsRow struct {
	ID                  int `gorm:"primaryKey;autoIncrement:false"`
	SiteName            string
	Tagline             string
	Copyright           string
	SocialFacebook      string
	SocialInstagram     string
	SocialPinterest     string
	SocialTwitter       string
	SocialYoutube       string
	DeveloperName       string
	DeveloperLogo       string
	DeveloperWebsite    string
	DeveloperShowCredit bool
	ShowSocial          bool
	UpdatedAt           time.Time
}

func (settingsRow) TableName() string { return "settings" }

var settingsUpdateColumns = []string{
	"site_name", "tagline", "copyright", "social_facebook", "social_instagram",
	"social_pinterest", "social_twitter", "social_youtube", "developer_name",
	"developer_logo", "developer_website", "developer_show_credit",
	"show_social", "updated_at",
}

func toContactRow(c *content.Contact) contactRow {
	emails := c.Emails
	if emails == nil {
		emails = []string{}
	}
	return contactRow{
		ID:              singletonID,
		Emails:          pq.StringArray(emails),
		Phone:           c.Phone,
		AddressStreet:   c.Address.Street,
		AddressCity:     c.Address.City,
		AddressState:    c.Address.State,
		AddressZip:      c.Address.Zip,
		HoursWeekdays:   c.Hours.Weekdays,
		HoursWeekend:    c.Hours.Weekend,
		SocialFacebook:  c.Social.Facebook,
		SocialInstagram: c.Social.Instagram,
		SocialPinterest: c.Social.Pinterest,
		SocialTwitter:   c.Social.Twitter,
		ShowHours:       c.ShowHours,
		ShowAddress:     c.ShowAddress,
		ShowSocial:      c.ShowSocial,
		UpdatedAt:       time.Now().UTC(),
	}
}

func (r contactRow) toDomain() content.Contact {
	c := content.Contact{
		Emails:      []string(r.Emails),
		Phone:       r.Phone,
		Address:     content.Address{Street: r.AddressStreet, City: r.AddressCity, State: r.AddressState, Zip: r.AddressZip},
		Hours:       content.Hours{Weekdays: r.HoursWeekdays, Weekend: r.HoursWeekend},
		Social:      content.Social{Facebook: r.SocialFacebook, Instagram: r.SocialInstagram, Pinterest: r.SocialPinterest, Twitter: r.SocialTwitter},
		ShowHours:   r.ShowHours,
		ShowAddress: r.ShowAddress,
		ShowSocial:  r.ShowSocial,
	}
	c.Normalize()
	return c
}

func toSettingsRow(s *content.Settings) settingsRow {
	return settingsRow{
		ID:                  singletonID,
		SiteName:            s.SiteName,
		Tagline:             s.Tagline,
		Copyright:           s.Copyright,
		SocialFacebook:      s.Social.Facebook,
		SocialInstagram:     s.Social.Instagram,
		SocialPinterest:     s.Social.Pinterest,
		SocialTwitter:       s.Social.Twitter,
		SocialYoutube:       s.Social.Youtube,
		DeveloperName:       s.Developer.Name,
		DeveloperLogo:       s.Developer.Logo,
		DeveloperWebsite:    s.Developer.Website,
		DeveloperShowCredit: s.Developer.ShowCredit,
		ShowSocial:          s.ShowSocial,
		UpdatedAt:           time.Now().UTC(),
	}
}

func (r settingsRow) toDomain() content.Settings {
	return content.Settings{
		SiteName:  r.SiteName,
		Tagline:   r.Tagline,
		Copyright: r.Copyright,
		Social: content.Social{
			Facebook:  r.SocialFacebook,
			Instagram: r.SocialInstagram,
			Pinterest: r.SocialPinterest,
			Twitter:   r.SocialTwitter,
			Youtube:   r.SocialYoutube,
		},
		Developer: content.Developer{
			Name:       r.DeveloperName,
			Logo:       r.DeveloperLogo,
			Website:    r.DeveloperWebsite,
			ShowCredit: r.DeveloperShowCredit,
		},
		ShowSocial: r.ShowSocial,
	}
}

func toAboutRow(a *content.About) aboutRow {
	paragraphs := a.Story.Paragraphs
	if paragraphs == nil {
		paragraphs = []string{}
	}
	return aboutRow{
		ID:              singletonID,
		StoryTitle:      a.Story.Title,
		StoryParagraphs: pq.StringArray(paragraphs),
		StoryImage:      a.Story.Image,
		ProcessTitle:    a.Process.Title,
		ProcessText:     a.Process.Text,
		CommitmentTitle: a.Commitment.Title,
		CommitmentText:  a.Commitment.Text,
		UpdatedAt:       time.Now().UTC(),
	}
}
