package handlers

import (
	"biolink/app/server/constants"
	"biolink/app/server/jwt"
	"biolink/app/server/models"
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strings"
	"time"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (a *App) AuthSignIn(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return a.erMsg(c, http.StatusBadRequest, "email and password are required")
	}

	var identity models.Identity
	if err := a.db.WithContext(rctx).First(&identity, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized)
		} else {
			a.l.Error("failed to find identity", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, identity.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致
		return a.er(c, http.StatusUnauthorized)
	}

	// 邮箱未经确认不允许登录
	if identity.EmailConfirmedAt == nil {
		return a.erMsg(c, http.StatusUnauthorized, "Email not confirmed")
	}

	// 找到对应的档案来引导跳转，找不到说明是没有档案的孤立身份
	var profile models.Profile
	if err := a.db.WithContext(rctx).First(&profile, "id = ?", identity.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erMsg(c, http.StatusNotFound, "Profile not found")
		} else {
			a.l.Error("failed to get profile", zap.String("id", identity.ID), zap.Error(err))
			return a.erMsg(c, http.StatusInternalServerError, "Failed to fetch profile")
		}
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.Identity{
		ID:      identity.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.setSessionCookie(c, token, expires)

	// 返回
	return c.JSON(http.StatusOK, &signInResponse{
		Token:    token,
		Username: profile.Username,
	})
}
