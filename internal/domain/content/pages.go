package content

import (
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

const RoleAdmin = "admin"

type Story struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
	Image      string   `json:"image"`
}

type TitledText struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ArtForm struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// About is the singleton about page. ArtForms are kept in display order.
type About struct {
	Story      Story      `json:"story"`
	ArtForms   []ArtForm  `json:"artForms"`
	Process    TitledText `json:"process"`
	Commitment TitledText `json:"commitment"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type Hours struct {
	Weekdays string `json:"weekdays"`
	Weekend  string `json:"weekend"`
}

type Social struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Pinterest string `json:"pinterest"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube,omitempty"`
}

type Contact struct {
	Emails      []string `json:"emails"`
	Phone       string   `json:"phone"`
	Address     Address  `json:"address"`
	Hours       Hours    `json:"hours"`
	Social      Social   `json:"social"`
	ShowHours   bool     `json:"showHours"`
	ShowAddress bool     `json:"showAddress"`
	ShowSocial  bool     `json:"showSocial"`
}

type Developer struct {
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	Website    string `json:"website"`
	ShowCredit bool   `json:"showCredit"`
}

type Settings struct {
	SiteName   string    `json:"siteName"`
	Tagline    string    `json:"tagline"`
	Copyright  string    `json:"copyright"`
	Social     Social    `json:"social"`
	Developer  Developer `json:"developer"`
	ShowSocial bool      `json:"showSocial"`
}

// CopyrightFor resolves the {year} placeholder. Storage keeps the template.
func (s Settings) CopyrightFor(year int) string {
	return strings.ReplaceAll(s.Copyright, "{year}", strconv.Itoa(year))
}

// Image is a stored binary blob owned by an artwork, the about page or the
// settings logo.
type Image struct {
	Data     []byte
	MimeType string
}

func (i *Image) Empty() bool {
	return i == nil || len(i.Data) == 0
}
