package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "correct horse")

	ok, err := Verify(hash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify(hash, "wrong password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashUsesRandomSalt(t *testing.T) {
	h1, err := Hash("same password")
	require.NoError(t, err)
	h2, err := Hash("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyMalformed(t *testing.T) {
	_, err := Verify("not-a-hash", "pw")
	assert.ErrorIs(t, err, ErrMalformedHash)

	_, err = Verify("$bcrypt$v=19$m=1,t=1,p=1$abc$def", "pw")
	assert.ErrorIs(t, err, ErrMalformedHash)
}
