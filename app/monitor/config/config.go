package config

import (
	"time"
)

type Config struct {
	// 基础配置
	IsProd bool

	// 数据来源
	DBConnectionString string

	// 巡检配置
	CheckInterval  time.Duration // 两轮巡检之间的间隔
	RequestTimeout time.Duration // 单个链接的探测超时
}
