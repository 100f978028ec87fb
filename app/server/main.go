package main

import (
	"biolink/app/server/constants"
	"biolink/app/server/handlers"
	"biolink/app/server/inits"
	"biolink/app/server/jwt"
	"biolink/app/server/store"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"strings"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备确认码与头像文件储存
	codes := store.NewRedisConfirmationCodes(rdb)
	files := store.NewDiskFileStore(
		cfg.System.AvatarDir,
		cfg.System.PublicBaseURL+strings.TrimSuffix(constants.AvatarPublicPath, "/"),
	)

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, codes, files, cfg.System.PublicBaseURL)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	handlerApp.RegisterRoutes(e)

	// 头像文件的公开地址
	e.Static(strings.TrimSuffix(constants.AvatarPublicPath, "/"), cfg.System.AvatarDir)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
