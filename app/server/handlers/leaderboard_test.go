package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchLeaderboard(t *testing.T, ta *testApp, query string) []leaderboardEntry {
	t.Helper()

	rec := ta.request(http.MethodGet, "/api/leaderboard"+query, nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []leaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	return entries
}

func TestLeaderboardAggregatesAndSorts(t *testing.T) {
	ta := newTestApp(t)

	now := time.Now()
	aliceID := ta.seedProfile(t, "alice")
	ta.seedLink(t, aliceID, "a1", "https://a1.example.com", 856, now)
	ta.seedLink(t, aliceID, "a2", "https://a2.example.com", 412, now)
	ta.seedLink(t, aliceID, "a3", "https://a3.example.com", 164, now)

	bobID := ta.seedProfile(t, "bob")
	ta.seedLink(t, bobID, "b1", "https://b1.example.com", 999, now)

	// 一条链接都没有的档案总数记 0
	ta.seedProfile(t, "carol")

	// 按点击总数降序：alice 1432 > bob 999 > carol 0
	entries := fetchLeaderboard(t, ta, "")
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Username)
	assert.EqualValues(t, 1432, entries[0].TotalClicks)
	assert.Equal(t, "bob", entries[1].Username)
	assert.EqualValues(t, 999, entries[1].TotalClicks)
	assert.Equal(t, "carol", entries[2].Username)
	assert.EqualValues(t, 0, entries[2].TotalClicks)
}

func TestLeaderboardLimit(t *testing.T) {
	ta := newTestApp(t)

	now := time.Now()
	for i := 0; i < 8; i++ {
		id := ta.seedProfile(t, "user"+strconv.Itoa(i))
		ta.seedLink(t, id, "l", "https://l.example.com", uint(i*10), now)
	}

	// 默认取前 5
	assert.Len(t, fetchLeaderboard(t, ta, ""), 5)

	// 显式 limit
	entries := fetchLeaderboard(t, ta, "?limit=2")
	require.Len(t, entries, 2)
	assert.Equal(t, "user7", entries[0].Username)

	// 非法 limit
	rec := ta.request(http.MethodGet, "/api/leaderboard?limit=0", nil, "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderboardExcludesDeletedLinks(t *testing.T) {
	ta := newTestApp(t)

	now := time.Now()
	id := ta.seedProfile(t, "alice")
	ta.seedLink(t, id, "keep", "https://keep.example.com", 100, now)
	linkID := ta.seedLink(t, id, "drop", "https://drop.example.com", 900, now)

	// 软删除后的链接不计入总数
	rec := ta.request(http.MethodDelete, "/api/links/"+strconv.Itoa(int(linkID))+"?confirm=true", nil, "", ta.sessionFor(t, id))
	require.Equal(t, http.StatusNoContent, rec.Code)

	entries := fetchLeaderboard(t, ta, "")
	require.Len(t, entries, 1)
	assert.EqualValues(t, 100, entries[0].TotalClicks)
}
