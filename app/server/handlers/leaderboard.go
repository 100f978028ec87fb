package handlers

import (
	"biolink/app/server/constants"
	"biolink/app/server/models"
	"encoding/json"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strconv"
)

type leaderboardEntry struct {
	Username    string `json:"username"`
	AvatarUrl   string `json:"avatar_url,omitempty" gorm:"column:avatar_url"`
	TotalClicks uint   `json:"total_clicks" gorm:"column:total_clicks"`
}

// Leaderboard 汇总每个档案的点击总数，按降序取前 N 名。
// 结果短暂缓存在 Redis 里，缓存不可用时直接回源数据库。
func (a *App) Leaderboard(c echo.Context) error {
	rctx := c.Request().Context()

	limit := 5
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err != nil || parsed < 1 {
			return a.erMsg(c, http.StatusBadRequest, "limit should be a positive integer")
		} else {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}

	// 先试缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyLeaderboard, limit)
	if cached, err := a.rdb.Get(rctx, cacheKey).Bytes(); err == nil {
		var entries []leaderboardEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return c.JSON(http.StatusOK, entries)
		}
	}

	// 回源：每个档案的点击总数 = 名下所有链接计数之和
	var entries []leaderboardEntry
	if err := a.db.WithContext(rctx).
		Model(&models.Profile{}).
		Select("profiles.username AS username, profiles.avatar_url AS avatar_url, COALESCE(SUM(links.click_count), 0) AS total_clicks").
		Joins("LEFT JOIN links ON links.owner_id = profiles.id AND links.deleted_at IS NULL").
		Group("profiles.id, profiles.username, profiles.avatar_url").
		Order("total_clicks DESC").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		a.l.Error("failed to aggregate leaderboard", zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	if entries == nil {
		entries = []leaderboardEntry{}
	}

	// 写缓存失败不影响响应
	if data, err := json.Marshal(entries); err == nil {
		if err := a.rdb.Set(rctx, cacheKey, data, constants.CacheExpireLeaderboard).Err(); err != nil {
			a.l.Warn("failed to cache leaderboard", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, entries)
}
