package handlers

import (
	"biolink/app/server/jwt"
	"biolink/app/server/store"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l       *zap.Logger             // 日志
	db      *gorm.DB                // 数据库
	rdb     *redis.Client           // Redis ，用于排行榜缓存
	jwt     *jwt.JWT                // JWT ，用于无状态会话
	codes   store.ConfirmationCodes // 一次性邮箱确认码
	files   store.FileStore         // 头像文件储存
	baseURL string                  // 对外基础地址，用于拼接确认链接
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, codes store.ConfirmationCodes, files store.FileStore, baseURL string) *App {
	return &App{
		l:       l,
		db:      db,
		rdb:     rdb,
		jwt:     j,
		codes:   codes,
		files:   files,
		baseURL: baseURL,
	}
}
