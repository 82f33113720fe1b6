package migrate

import (
	"context"
	"testing"

	"chitrakala-api/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUpdateAdminCredentials(t *testing.T) {
	ctx := context.Background()
	src := seededSource(t)

	n, err := UpdateAdminCredentials(ctx, src, "  curator ", "n3w-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	u, err := src.GetUserByUsername(ctx, "curator")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("n3w-secret")))
}

func TestUpdateAdminCredentialsValidation(t *testing.T) {
	ctx := context.Background()
	src := seededSource(t)

	_, err := UpdateAdminCredentials(ctx, src, "", "pw")
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)

	_, err = UpdateAdminCredentials(ctx, src, "curator", "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}
