package content

// Defaults used when a singleton has never been written, and by the
// migration for source fields that are missing.

func DefaultAbout() About {
	return About{
		Story:      Story{Title: "Our Story", Paragraphs: []string{}},
		ArtForms:   []ArtForm{},
		Process:    TitledText{Title: "Our Process"},
		Commitment: TitledText{Title: "Our Commitment"},
	}
}

func DefaultContact() Contact {
	return Contact{
		Emails:      []string{},
		ShowHours:   true,
		ShowAddress: true,
		ShowSocial:  false,
	}
}

func DefaultSettings() Settings {
	return Settings{
		SiteName:   "Chitrakala Arts",
		Copyright:  "© {year} Chitrakala Arts. All rights reserved.",
		Developer:  Developer{ShowCredit: true},
		ShowSocial: true,
	}
}

// Normalize replaces nil slices with empty ones.
func (a *About) Normalize() {
	if a.Story.Paragraphs == nil {
		a.Story.Paragraphs = []string{}
	}
	if a.ArtForms == nil {
		a.ArtForms = []ArtForm{}
	}
}

func (c *Contact) Normalize() {
	if c.Emails == nil {
		c.Emails = []string{}
	}
}
