package store

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"chitrakala-api/config"
	"chitrakala-api/internal/domain/content"
	"chitrakala-api/internal/store/filestore"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOpenWithoutDatabaseURLUsesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := Open(context.Background(), &config.Config{DataDir: dir}, quietLogger())
	require.NoError(t, err)
	defer s.Close()

	fs, ok := s.(*filestore.Store)
	require.True(t, ok)
	assert.Equal(t, dir, fs.Dir())
}

func TestEnsureDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	log := quietLogger()

	require.NoError(t, EnsureDefaultAdmin(ctx, s, "first-pass", false, log))
	u, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminID, u.ID)
	assert.Equal(t, content.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("first-pass")))

	// existing users are left alone
	require.NoError(t, EnsureDefaultAdmin(ctx, s, "second-pass", false, log))
	u, err = s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("first-pass")))

	require.NoError(t, EnsureDefaultAdmin(ctx, s, "third-pass", true, log))
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("third-pass")))
}

func TestEnsureDefaultAdminNeedsPassword(t *testing.T) {
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, EnsureDefaultAdmin(context.Background(), s, "", false, quietLogger()))
}
