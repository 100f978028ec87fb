package main

import (
	"biolink/app/monitor/checker"
	"biolink/app/monitor/inits"
	"fmt"
	"go.uber.org/zap"
	"log"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 开启巡检循环
	ch := checker.NewChecker(l, db, cfg.CheckInterval, cfg.RequestTimeout)
	ch.Start()

	// 卡住进程避免结束
	select {}
}
