package handlers

import (
	"biolink/app/server/models"
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strconv"
	"strings"
)

type linkInfo struct {
	Id         uint   `json:"id"`
	OwnerId    string `json:"owner_id"`
	Title      string `json:"title"`
	Url        string `json:"url"`
	ClickCount uint   `json:"click_count"`
}

type linkCreateRequest struct {
	Title string `json:"title"`
	Url   string `json:"url"`
}

type linkUpdateRequest struct {
	Title *string `json:"title"`
	Url   *string `json:"url"`
}

func (a *App) linkMapFields(req *linkUpdateRequest, link *models.Link) {
	if req.Title != nil {
		link.Title = *req.Title
	}
	if req.Url != nil {
		link.URL = *req.Url
	}
}

func (a *App) linkInfoRes(link *models.Link) *linkInfo {
	return &linkInfo{
		Id:         link.ID,
		OwnerId:    link.OwnerID,
		Title:      link.Title,
		Url:        link.URL,
		ClickCount: link.ClickCount,
	}
}

// findLinkByParam 按路径参数取链接
func (a *App) findLinkByParam(c echo.Context) (*models.Link, error, int) {
	rctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, err, http.StatusBadRequest
	}

	var link models.Link
	if err := a.db.WithContext(rctx).First(&link, "id = ?", uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err, http.StatusNotFound
		}
		a.l.Error("failed to get link", zap.Uint64("id", id), zap.Error(err))
		return nil, err, http.StatusInternalServerError
	}

	return &link, nil, http.StatusOK
}

func (a *App) LinkList(c echo.Context) error {
	profile, err, statusCode := a.findProfileByUsername(c, c.Param("username"))
	if err != nil {
		if statusCode == http.StatusNotFound {
			return a.erMsg(c, statusCode, "Profile not found")
		}
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 新建的排前面
	var links []models.Link
	if err := a.db.WithContext(rctx).
		Where("owner_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&links).Error; err != nil {
		a.l.Error("failed to get link list", zap.String("owner", profile.ID), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	resLinks := []linkInfo{}
	for i := range links {
		resLinks = append(resLinks, *a.linkInfoRes(&links[i]))
	}

	return c.JSON(http.StatusOK, resLinks)
}

func (a *App) LinkCreate(c echo.Context) error {
	// 抓取身份信息（认证）
	identity, err := a.currentIdentity(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req linkCreateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Url) == "" {
		return a.erMsg(c, http.StatusBadRequest, "title and url are required")
	}

	// 创建链接，计数从 0 开始
	link := models.Link{
		OwnerID:    identity.ID,
		Title:      req.Title,
		URL:        req.Url,
		ClickCount: 0,
	}
	if err := a.db.WithContext(rctx).Create(&link).Error; err != nil {
		a.l.Error("failed to create link", zap.Any("link", link), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, a.linkInfoRes(&link))
}

func (a *App) LinkUpdate(c echo.Context) error {
	// 抓取身份信息（认证）
	identity, err := a.currentIdentity(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	link, err, statusCode := a.findLinkByParam(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	// 只有主人可以编辑
	if link.OwnerID != identity.ID {
		return a.er(c, http.StatusForbidden)
	}

	rctx := c.Request().Context()

	// 绑定请求体。只开放标题和地址，计数与归属从这条路径改不了
	var req linkUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	a.linkMapFields(&req, link)

	if err := a.db.WithContext(rctx).Model(link).Select("title", "url").Updates(link).Error; err != nil {
		a.l.Error("failed to update link", zap.Uint("id", link.ID), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, a.linkInfoRes(link))
}

func (a *App) LinkDelete(c echo.Context) error {
	// 抓取身份信息（认证）
	identity, err := a.currentIdentity(c)
	if err != nil {
		a.l.Error("failed to auth", zap.Error(err))
		return a.er(c, http.StatusUnauthorized)
	}

	// 删除必须显式确认，没确认就什么都不动
	if c.QueryParam("confirm") != "true" {
		return a.erMsg(c, http.StatusBadRequest, "deletion requires confirm=true")
	}

	link, err, statusCode := a.findLinkByParam(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	// 只有主人可以删除
	if link.OwnerID != identity.ID {
		return a.er(c, http.StatusForbidden)
	}

	rctx := c.Request().Context()

	if err := a.db.WithContext(rctx).Delete(link).Error; err != nil {
		a.l.Error("failed to delete link", zap.Uint("id", link.ID), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// LinkClick 任何访问者都可以点击：原子地加一后返回目标地址。
// 计数更新失败只记日志，照样返回地址，访问体验不被统计问题挡住。
func (a *App) LinkClick(c echo.Context) error {
	link, err, statusCode := a.findLinkByParam(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	if err := a.db.WithContext(rctx).
		Model(&models.Link{}).
		Where("id = ?", link.ID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1)).Error; err != nil {
		a.l.Error("failed to update click count", zap.Uint("id", link.ID), zap.Error(err))
	} else {
		link.ClickCount++
	}

	return c.JSON(http.StatusOK, &struct {
		Url        string `json:"url"`
		ClickCount uint   `json:"click_count"`
	}{
		Url:        link.URL,
		ClickCount: link.ClickCount,
	})
}
