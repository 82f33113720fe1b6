package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestInitSchemaCommits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	for _, stmt := range SchemaStatements {
		mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, InitSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchemaRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(SchemaStatements[0]).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(SchemaStatements[1]).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := InitSchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap schema")
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaSingletonTablesAreConstrained(t *testing.T) {
	var checks int
	for _, stmt := range SchemaStatements {
		if strings.Contains(stmt, "CHECK (id = 1)") {
			checks++
		}
	}
	assert.Equal(t, 3, checks, "about, contact and settings hold one row each")
}

func TestWithSSLMode(t *testing.T) {
	assert.Equal(t, "postgres://h/db", withSSLMode("postgres://h/db", false))
	assert.Equal(t, "postgres://h/db?sslmode=require", withSSLMode("postgres://h/db", true))
	assert.Equal(t, "postgres://h/db?x=1&sslmode=require", withSSLMode("postgres://h/db?x=1", true))
	assert.Equal(t, "postgres://h/db?sslmode=disable", withSSLMode("postgres://h/db?sslmode=disable", true))
	assert.Equal(t, "postgresql://h/db?sslmode=require", withSSLMode("postgresql://h/db", true))
	assert.Equal(t, "host=h user=u dbname=db sslmode=require", withSSLMode("host=h user=u dbname=db", true))
	assert.Equal(t, "host=h sslmode=disable", withSSLMode("host=h sslmode=disable", true))
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.Error(t, err)
}
