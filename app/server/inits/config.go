package inits

import (
	"biolink/app/server/config"
	"biolink/app/server/constants"
	"fmt"
	"os"
	"strings"
)

func Config() (*config.Config, error) {
	// 手动配置映射，全部来自环境变量
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if baseURL, exist := os.LookupEnv("PUBLIC_BASE_URL"); !exist {
		cfg.System.PublicBaseURL = "http://localhost:1323"
	} else {
		cfg.System.PublicBaseURL = strings.TrimSuffix(baseURL, "/")
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if avatarDir, exist := os.LookupEnv("AVATAR_DIR"); !exist {
		cfg.System.AvatarDir = constants.AvatarPathPrefix
	} else {
		cfg.System.AvatarDir = avatarDir
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	return &cfg, nil
}
