package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backoffice-api/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate("secret", "user-1", "biz-1", "backoffice-api", 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, businessID, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "biz-1", businessID)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate("secret", "user-1", "biz-1", "backoffice-api", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("other", token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := jwt.Generate("secret", "user-1", "biz-1", "backoffice-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "biz-1", "backoffice-api", 5)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "whatever")
	assert.Error(t, err)
}
