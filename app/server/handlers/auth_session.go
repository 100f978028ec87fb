package handlers

import (
	"biolink/app/server/constants"
	"biolink/app/server/jwt"
	"biolink/app/server/models"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strings"
	"time"
)

// sessionToken 提取会话令牌：cookie 优先，其次 Authorization 头
func (a *App) sessionToken(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing auth token")
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return "", fmt.Errorf("invalid auth header: %s", authHeader)
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return "", fmt.Errorf("unknown auth method: %s", splits[0])
	}

	return splits[1], nil
}

// currentIdentity 解析当前访问者的身份，匿名访问时返回错误
func (a *App) currentIdentity(c echo.Context) (*jwt.Identity, error) {
	token, err := a.sessionToken(c)
	if err != nil {
		return nil, err
	}

	// 验证 token
	identity, err := a.jwt.ParseIdentity(token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return identity, nil
}

func (a *App) setSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *App) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *App) AuthSignOut(c echo.Context) error {
	a.clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (a *App) AuthMe(c echo.Context) error {
	identity, err := a.currentIdentity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 带出对应的档案（可能还没建好，那就只返回身份 ID ）
	var profile models.Profile
	res := struct {
		Id       string `json:"id"`
		Username string `json:"username,omitempty"`
	}{
		Id: identity.ID,
	}
	if err := a.db.WithContext(rctx).First(&profile, "id = ?", identity.ID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.l.Error("failed to get profile", zap.String("id", identity.ID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	} else {
		res.Username = profile.Username
	}

	return c.JSON(http.StatusOK, &res)
}
