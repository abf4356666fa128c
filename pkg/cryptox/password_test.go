package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	assert.NoError(t, VerifyPassword("Sup3rSecret", hash))
	assert.ErrorIs(t, VerifyPassword("Sup3rSecre7", hash), ErrPasswordMismatch)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	h2, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("whatever", "not-a-phc-string"))
	assert.Error(t, VerifyPassword("whatever", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$AAAA"))
}
