package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	j, err := New("test-key")
	require.NoError(t, err)

	identity := &Identity{
		ID:      "8e4f0f9e-3a44-4d2f-9c36-5a2d5577f0a1",
		Expires: time.Now().Add(time.Hour).Unix(),
	}
	token, err := j.SignToken(identity)
	require.NoError(t, err)

	parsed, err := j.ParseIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, parsed.ID)
	assert.Equal(t, identity.Expires, parsed.Expires)
}

func TestNewRejectsEmptyKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestParseRejectsBadTokens(t *testing.T) {
	j, err := New("test-key")
	require.NoError(t, err)

	// 空令牌
	_, err = j.ParseIdentity("")
	assert.Error(t, err)

	// 密钥不一致
	other, err := New("other-key")
	require.NoError(t, err)
	token, err := other.SignToken(&Identity{ID: "id", Expires: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)
	_, err = j.ParseIdentity(token)
	assert.Error(t, err)

	// 已过期
	token, err = j.SignToken(&Identity{ID: "id", Expires: time.Now().Add(-time.Hour).Unix()})
	require.NoError(t, err)
	_, err = j.ParseIdentity(token)
	assert.Error(t, err)
}
