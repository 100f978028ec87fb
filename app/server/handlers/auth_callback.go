package handlers

import (
	"biolink/app/server/constants"
	"biolink/app/server/jwt"
	"biolink/app/server/models"
	"encoding/json"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"net/http"
	"time"
)

// AuthCallback 兑换一次性确认码：确认邮箱、补建档案、签发会话，然后跳转到档案页。
// 出任何问题都跳回首页并带上错误标记，这个路由没有自己的界面。
func (a *App) AuthCallback(c echo.Context) error {
	rctx := c.Request().Context()

	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, "/?error=no_code_provided")
	}

	// 兑换确认码（只能用一次）
	identityID, err := a.codes.Redeem(rctx, code)
	if err != nil {
		a.l.Error("failed to redeem confirmation code", zap.Error(err))
		return c.Redirect(http.StatusFound, "/?error=callback_error")
	}

	var identity models.Identity
	if err := a.db.WithContext(rctx).First(&identity, "id = ?", identityID).Error; err != nil {
		a.l.Error("failed to get identity", zap.String("id", identityID), zap.Error(err))
		return c.Redirect(http.StatusFound, "/?error=callback_error")
	}

	// 标记邮箱已确认
	if identity.EmailConfirmedAt == nil {
		now := time.Now()
		if err := a.db.WithContext(rctx).Model(&identity).Update("email_confirmed_at", &now).Error; err != nil {
			a.l.Error("failed to mark email confirmed", zap.String("id", identityID), zap.Error(err))
			return c.Redirect(http.StatusFound, "/?error=callback_error")
		}
	}

	// 从注册时暂存的资料里取出用户名
	var metadata identityMetadata
	if err := json.Unmarshal(identity.Metadata, &metadata); err != nil || metadata.Username == "" {
		a.l.Error("no username in identity metadata", zap.String("id", identityID), zap.Error(err))
		return c.Redirect(http.StatusFound, "/?error=callback_error")
	}

	// 以身份 ID 为键补建档案，重复回调是幂等的
	profile := models.Profile{
		ID:       identity.ID,
		Username: metadata.Username,
		Email:    identity.Email,
	}
	if err := a.db.WithContext(rctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "email", "updated_at"}),
	}).Create(&profile).Error; err != nil {
		a.l.Error("failed to upsert profile", zap.String("id", identityID), zap.Error(err))
		return c.Redirect(http.StatusFound, "/?error=callback_error")
	}

	// 签出会话并跳转到新档案页
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.Identity{
		ID:      identity.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return c.Redirect(http.StatusFound, "/?error=callback_error")
	}
	a.setSessionCookie(c, token, expires)

	return c.Redirect(http.StatusFound, "/"+profile.Username)
}
