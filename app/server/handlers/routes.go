package handlers

import (
	"github.com/labstack/echo/v4"
)

func (a *App) RegisterRoutes(e *echo.Echo) {
	// 基础
	e.GET("/api/health", a.Healthcheck)

	// 认证
	e.POST("/api/auth/signup", a.AuthSignUp)
	e.POST("/api/auth/signin", a.AuthSignIn)
	e.POST("/api/auth/signout", a.AuthSignOut)
	e.GET("/api/auth/me", a.AuthMe)
	e.GET("/auth/callback", a.AuthCallback) // 邮箱确认回调，纯跳转逻辑，不在 /api 下

	// 档案
	e.GET("/api/profiles/:username", a.ProfileGet)
	e.PATCH("/api/profiles/:username", a.ProfileUpdate)
	e.POST("/api/profiles/:username/avatar", a.AvatarUpload)

	// 链接
	e.GET("/api/profiles/:username/links", a.LinkList)
	e.POST("/api/links", a.LinkCreate)
	e.PATCH("/api/links/:id", a.LinkUpdate)
	e.DELETE("/api/links/:id", a.LinkDelete)
	e.POST("/api/links/:id/click", a.LinkClick)

	// 排行榜
	e.GET("/api/leaderboard", a.Leaderboard)
}
