// Package pgstore is the PostgreSQL content backend. Every entity maps to a
// table created by database.InitSchema; about, contact and settings are single
// rows pinned to id 1.
package pgstore

import (
	"chitrakala-api/database"
	"chitrakala-api/internal/domain/content"

	"gorm.io/gorm"
)

const singletonID = 1

type Store struct {
	db *gorm.DB
}

var (
	_ content.Store      = (*Store)(nil)
	_ content.ImageStore = (*Store)(nil)
)

// New wraps an open handle. The store owns it from here on and releases it
// on Close.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the handle for batch jobs that need their own transaction.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Close() error {
	return database.Close(s.db)
}
