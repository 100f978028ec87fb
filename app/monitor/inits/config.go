package inits

import (
	"biolink/app/monitor/config"
	"fmt"
	"os"
	"strings"
	"time"
)

func Config() (*config.Config, error) {
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.DBConnectionString = dbconn
	}

	if checkIntervalStr, exist := os.LookupEnv("CHECK_INTERVAL"); !exist {
		cfg.CheckInterval = 5 * time.Minute // 默认每五分钟一轮
	} else if interval, err := time.ParseDuration(checkIntervalStr); err != nil {
		return nil, fmt.Errorf("CHECK_INTERVAL should be a valid duration")
	} else {
		cfg.CheckInterval = interval
	}

	if requestTimeoutStr, exist := os.LookupEnv("REQUEST_TIMEOUT"); !exist {
		cfg.RequestTimeout = 5 * time.Second
	} else if timeout, err := time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("REQUEST_TIMEOUT should be a valid duration")
	} else {
		cfg.RequestTimeout = timeout
	}

	return &cfg, nil
}
