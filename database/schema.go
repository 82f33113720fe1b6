package database

// SchemaStatements create the relational store. Singleton tables (about,
// contact, settings) are pinned to one row with CHECK (id = 1); every write to
// them is an INSERT ... ON CONFLICT (id) DO UPDATE.
//
// The ALTER statements bring databases created before sizes, updated_at and
// in-database images existed up to date.
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         VARCHAR(50) PRIMARY KEY,
		username   VARCHAR(50) UNIQUE NOT NULL,
		password   VARCHAR(255) NOT NULL,
		role       VARCHAR(20) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS artworks (
		id              VARCHAR(50) PRIMARY KEY,
		title           VARCHAR(255) NOT NULL,
		category        VARCHAR(50) NOT NULL,
		price           DECIMAL(10, 2),
		description     TEXT,
		dimensions      VARCHAR(100),
		materials       VARCHAR(255),
		image           VARCHAR(255),
		featured        BOOLEAN DEFAULT FALSE,
		sizes           JSONB NOT NULL DEFAULT '[]',
		image_data      BYTEA,
		image_mime_type VARCHAR(50),
		created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at      TIMESTAMP
	)`,
	`ALTER TABLE artworks ADD COLUMN IF NOT EXISTS sizes JSONB NOT NULL DEFAULT '[]'`,
	`ALTER TABLE artworks ADD COLUMN IF NOT EXISTS image_data BYTEA`,
	`ALTER TABLE artworks ADD COLUMN IF NOT EXISTS image_mime_type VARCHAR(50)`,
	`ALTER TABLE artworks ADD COLUMN IF NOT EXISTS updated_at TIMESTAMP`,

	`CREATE TABLE IF NOT EXISTS about (
		id                    INTEGER PRIMARY KEY DEFAULT 1,
		story_title           VARCHAR(255),
		story_paragraphs      TEXT[],
		story_image           VARCHAR(255),
		story_image_data      BYTEA,
		story_image_mime_type VARCHAR(50),
		process_title         VARCHAR(255),
		process_text          TEXT,
		commitment_title      VARCHAR(255),
		commitment_text       TEXT,
		updated_at            TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT about_single_row CHECK (id = 1)
	)`,
	`ALTER TABLE about ADD COLUMN IF NOT EXISTS story_image_data BYTEA`,
	`ALTER TABLE about ADD COLUMN IF NOT EXISTS story_image_mime_type VARCHAR(50)`,

	`CREATE TABLE IF NOT EXISTS art_forms (
		id            VARCHAR(50) PRIMARY KEY,
		title         VARCHAR(255) NOT NULL,
		description   TEXT,
		display_order INTEGER DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS contact (
		id               INTEGER PRIMARY KEY DEFAULT 1,
		emails           TEXT[],
		phone            VARCHAR(50),
		address_street   VARCHAR(255),
		address_city     VARCHAR(100),
		address_state    VARCHAR(50),
		address_zip      VARCHAR(20),
		hours_weekdays   VARCHAR(100),
		hours_weekend    VARCHAR(100),
		social_facebook  VARCHAR(255),
		social_instagram VARCHAR(255),
		social_pinterest VARCHAR(255),
		social_twitter   VARCHAR(255),
		show_hours       BOOLEAN DEFAULT TRUE,
		show_address     BOOLEAN DEFAULT TRUE,
		show_social      BOOLEAN DEFAULT FALSE,
		updated_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT contact_single_row CHECK (id = 1)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                    INTEGER PRIMARY KEY DEFAULT 1,
		site_name             VARCHAR(255),
		tagline               VARCHAR(255),
		copyright             TEXT,
		social_facebook       VARCHAR(255),
		social_instagram      VARCHAR(255),
		social_pinterest      VARCHAR(255),
		social_twitter        VARCHAR(255),
		social_youtube        VARCHAR(255),
		developer_name        VARCHAR(255),
		developer_logo        VARCHAR(255),
		developer_website     VARCHAR(255),
		developer_show_credit BOOLEAN DEFAULT TRUE,
		logo_data             BYTEA,
		logo_mime_type        VARCHAR(50),
		show_social           BOOLEAN DEFAULT TRUE,
		updated_at            TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT settings_single_row CHECK (id = 1)
	)`,
	`ALTER TABLE settings ADD COLUMN IF NOT EXISTS logo_data BYTEA`,
	`ALTER TABLE settings ADD COLUMN IF NOT EXISTS logo_mime_type VARCHAR(50)`,
}
