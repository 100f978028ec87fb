package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

type errorMessage struct {
	Message string `json:"message"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &errorMessage{
		Message: http.StatusText(statusCode),
	})
}

// erMsg 用于需要把具体原因透出给用户的场合（校验失败、后端错误原文）
func (a *App) erMsg(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &errorMessage{
		Message: message,
	})
}
