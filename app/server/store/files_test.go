package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskFileStoreSaveAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskFileStore(dir, "http://localhost:1323/avatars/")

	require.NoError(t, s.Save("user-1/avatar.png", strings.NewReader("first")))
	content, err := os.ReadFile(filepath.Join(dir, "user-1", "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))

	// 相同路径重复写入是覆盖
	require.NoError(t, s.Save("user-1/avatar.png", strings.NewReader("second")))
	content, err = os.ReadFile(filepath.Join(dir, "user-1", "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestDiskFileStorePublicURL(t *testing.T) {
	s := NewDiskFileStore(t.TempDir(), "http://localhost:1323/avatars/")

	assert.Equal(t, "http://localhost:1323/avatars/user-1/avatar.png", s.PublicURL("user-1/avatar.png"))
	assert.Equal(t, "http://localhost:1323/avatars/user-1/avatar.png", s.PublicURL("/user-1/avatar.png"))
}
