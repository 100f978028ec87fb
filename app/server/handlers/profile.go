package handlers

import (
	"biolink/app/server/models"
	"biolink/app/server/types"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strings"
)

type profileInfo struct {
	Id             string               `json:"id"`
	Username       string               `json:"username"`
	Bio            string               `json:"bio,omitempty"`
	AvatarUrl      string               `json:"avatar_url,omitempty"`
	AvatarPosition types.AvatarPosition `json:"avatar_position"`
	IsOwner        bool                 `json:"is_owner"`
}

type profileUpdateRequest struct {
	Username       *string               `json:"username"`
	Bio            *string               `json:"bio"`
	AvatarPosition *types.AvatarPosition `json:"avatar_position"`
}

func (a *App) profileMapFields(req *profileUpdateRequest, profile *models.Profile) {
	if req.Username != nil {
		profile.Username = strings.ToLower(strings.TrimSpace(*req.Username))
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.AvatarPosition != nil {
		profile.AvatarPosition = req.AvatarPosition.Clamp()
	}
}

func (a *App) profileInfoRes(profile *models.Profile, isOwner bool) *profileInfo {
	return &profileInfo{
		Id:             profile.ID,
		Username:       profile.Username,
		Bio:            profile.Bio,
		AvatarUrl:      profile.AvatarURL,
		AvatarPosition: profile.AvatarPosition.Clamp(),
		IsOwner:        isOwner,
	}
}

// findProfileByUsername 按用户名取档案，查询始终用全小写
func (a *App) findProfileByUsername(c echo.Context, username string) (*models.Profile, error, int) {
	rctx := c.Request().Context()

	var profile models.Profile
	if err := a.db.WithContext(rctx).First(&profile, "username = ?", strings.ToLower(username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err, http.StatusNotFound
		}
		a.l.Error("failed to get profile", zap.String("username", username), zap.Error(err))
		return nil, err, http.StatusInternalServerError
	}

	return &profile, nil, http.StatusOK
}

func (a *App) ProfileGet(c echo.Context) error {
	profile, err, statusCode := a.findProfileByUsername(c, c.Param("username"))
	if err != nil {
		if statusCode == http.StatusNotFound {
			return a.erMsg(c, statusCode, "Profile not found")
		}
		return a.er(c, statusCode)
	}

	// 判断当前访问者是否为档案主人（匿名访问也允许，只是 is_owner 为 false ）
	isOwner := false
	if identity, err := a.currentIdentity(c); err == nil {
		isOwner = identity.ID == profile.ID
	}

	return c.JSON(http.StatusOK, a.profileInfoRes(profile, isOwner))
}

func (a *App) ProfileUpdate(c echo.Context) error {
	// 抓取身份信息（认证）
	identity, err := a.currentIdentity(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	profile, err, statusCode := a.findProfileByUsername(c, c.Param("username"))
	if err != nil {
		if statusCode == http.StatusNotFound {
			return a.erMsg(c, statusCode, "Profile not found")
		}
		return a.er(c, statusCode)
	}

	// 只有档案主人可以编辑
	if identity.ID != profile.ID {
		return a.er(c, http.StatusForbidden)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req profileUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Username != nil && strings.TrimSpace(*req.Username) == "" {
		return a.erMsg(c, http.StatusBadRequest, "username cannot be empty")
	}

	a.profileMapFields(&req, profile)

	if err := a.db.WithContext(rctx).Save(profile).Error; err != nil {
		a.l.Error("failed to update profile", zap.String("id", profile.ID), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, a.profileInfoRes(profile, true))
}
