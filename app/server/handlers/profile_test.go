package handlers

import (
	"biolink/app/server/models"
	"biolink/app/server/types"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileGetCaseInsensitive(t *testing.T) {
	ta := newTestApp(t)
	id := ta.seedProfile(t, "alice")

	// 路径里大小写混写也能命中同一个档案
	for _, path := range []string{"/api/profiles/alice", "/api/profiles/Alice", "/api/profiles/ALICE"} {
		rec := ta.request(http.MethodGet, path, nil, "", "")
		require.Equal(t, http.StatusOK, rec.Code, path)

		var res profileInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, id, res.Id)
		assert.Equal(t, "alice", res.Username)
		assert.False(t, res.IsOwner)
	}

	// 主人访问时 is_owner 为真
	rec := ta.request(http.MethodGet, "/api/profiles/alice", nil, "", ta.sessionFor(t, id))
	require.Equal(t, http.StatusOK, rec.Code)
	var res profileInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.IsOwner)

	// 其他人访问不是主人
	otherID := ta.seedProfile(t, "bob")
	rec = ta.request(http.MethodGet, "/api/profiles/alice", nil, "", ta.sessionFor(t, otherID))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.IsOwner)
}

func TestProfileGetNotFound(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.request(http.MethodGet, "/api/profiles/nobody", nil, "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile not found")
}

func TestProfileUpdateOwnership(t *testing.T) {
	ta := newTestApp(t)
	id := ta.seedProfile(t, "alice")
	otherID := ta.seedProfile(t, "bob")

	body := `{"bio":"hello"}`

	// 匿名不能改
	rec := ta.request(http.MethodPatch, "/api/profiles/alice", strings.NewReader(body), "application/json", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 别人不能改
	rec = ta.request(http.MethodPatch, "/api/profiles/alice", strings.NewReader(body), "application/json", ta.sessionFor(t, otherID))
	require.Equal(t, http.StatusForbidden, rec.Code)

	// 档案保持原样
	var profile models.Profile
	require.NoError(t, ta.db.First(&profile, "id = ?", id).Error)
	assert.Empty(t, profile.Bio)

	// 主人可以改
	rec = ta.request(http.MethodPatch, "/api/profiles/alice", strings.NewReader(body), "application/json", ta.sessionFor(t, id))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, ta.db.First(&profile, "id = ?", id).Error)
	assert.Equal(t, "hello", profile.Bio)
}

func TestProfileUpdateClampsPositionAndLowercasesUsername(t *testing.T) {
	ta := newTestApp(t)
	id := ta.seedProfile(t, "alice")

	body := `{"username":"NewAlice","avatar_position":{"x":500,"y":-500,"scale":9}}`
	rec := ta.request(http.MethodPatch, "/api/profiles/alice", strings.NewReader(body), "application/json", ta.sessionFor(t, id))
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	require.NoError(t, ta.db.First(&profile, "id = ?", id).Error)
	assert.Equal(t, "newalice", profile.Username)
	assert.Equal(t, types.AvatarPosition{X: 100, Y: -100, Scale: 2}, profile.AvatarPosition)

	// 旧用户名已经不再命中
	rec = ta.request(http.MethodGet, "/api/profiles/alice", nil, "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = ta.request(http.MethodGet, "/api/profiles/newalice", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileUpdateRejectsEmptyUsername(t *testing.T) {
	ta := newTestApp(t)
	id := ta.seedProfile(t, "alice")

	rec := ta.request(http.MethodPatch, "/api/profiles/alice", strings.NewReader(`{"username":"  "}`), "application/json", ta.sessionFor(t, id))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var profile models.Profile
	require.NoError(t, ta.db.First(&profile, "id = ?", id).Error)
	assert.Equal(t, "alice", profile.Username)
}
