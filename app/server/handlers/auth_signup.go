package handlers

import (
	"biolink/app/server/models"
	"encoding/json"
	"errors"
	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strings"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type identityMetadata struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (a *App) AuthSignUp(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	if req.Email == "" || req.Password == "" || req.Username == "" {
		return a.erMsg(c, http.StatusBadRequest, "email, password and username are required")
	}

	// 用户名占用预检查（大小写不敏感，储存时始终全小写）。
	// 并发注册下这只是体验优化，最终兜底是 profiles.username 的唯一索引。
	var existing models.Profile
	if err := a.db.WithContext(rctx).First(&existing, "username = ?", req.Username).Error; err == nil {
		return a.erMsg(c, http.StatusConflict, "Username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check username", zap.String("username", req.Username), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 把选定的用户名暂存到身份资料里，等确认回调时再建档案
	metadata, err := json.Marshal(&identityMetadata{
		Username: req.Username,
		FullName: req.Username,
	})
	if err != nil {
		a.l.Error("failed to marshal metadata", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建身份
	identity := models.Identity{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: passwordHash,
		Metadata: metadata,
	}
	if err := a.db.WithContext(rctx).Create(&identity).Error; err != nil {
		a.l.Error("failed to create identity", zap.String("email", req.Email), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	// 签发一次性确认码。没有接邮件服务，确认链接直接落在日志里
	code, err := a.codes.Issue(rctx, identity.ID)
	if err != nil {
		a.l.Error("failed to issue confirmation code", zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}
	a.l.Info("confirmation link issued",
		zap.String("email", identity.Email),
		zap.String("url", a.baseURL+"/auth/callback?code="+code),
	)

	return c.JSON(http.StatusCreated, &struct {
		Message string `json:"message"`
	}{
		Message: "Please check your email to confirm your account. You can close this window after confirming.",
	})
}
