package handlers

import (
	"biolink/app/server/constants"
	"biolink/app/server/types"
	"encoding/json"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"path"
	"strings"
)

type avatarUploadResponse struct {
	AvatarUrl      string               `json:"avatar_url"`
	AvatarPosition types.AvatarPosition `json:"avatar_position"`
}

// AvatarUpload 接收头像文件与定位状态，储存到稳定路径后把公开地址与定位一并写回档案。
// 任何一步失败都不会动已有的头像。
func (a *App) AvatarUpload(c echo.Context) error {
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

	// 只有档案主人可以换头像
	if identity.ID != profile.ID {
		return a.er(c, http.StatusForbidden)
	}

	// 只取第一个名为 file 的部分，同一次提交里多余的文件忽略
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return a.erMsg(c, http.StatusBadRequest, "missing avatar file")
	}

	// 只接受图片类型
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return a.erMsg(c, http.StatusBadRequest, "Please upload an image file")
	}

	// 定位状态随文件一起提交；新选的图片默认回到原点
	position := types.DefaultAvatarPosition()
	if posStr := c.FormValue("position"); posStr != "" {
		if err := json.Unmarshal([]byte(posStr), &position); err != nil {
			return a.erMsg(c, http.StatusBadRequest, "invalid avatar position")
		}
		position = position.Clamp()
	}

	// 以身份 ID 作为命名空间得出稳定路径，重新上传直接覆盖旧头像
	ext := path.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".png"
	}
	storePath := fmt.Sprintf("%s/%s%s", profile.ID, constants.AvatarFileBase, ext)

	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	if err := a.files.Save(storePath, src); err != nil {
		a.l.Error("failed to save avatar file", zap.String("path", storePath), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	publicURL := a.files.PublicURL(storePath)

	rctx := c.Request().Context()

	// 公开地址和定位在同一次更新里写入
	if err := a.db.WithContext(rctx).Model(profile).Updates(map[string]interface{}{
		"avatar_url":      publicURL,
		"avatar_position": position,
	}).Error; err != nil {
		a.l.Error("failed to update profile avatar", zap.String("id", profile.ID), zap.Error(err))
		return a.erMsg(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, &avatarUploadResponse{
		AvatarUrl:      publicURL,
		AvatarPosition: position,
	})
}
