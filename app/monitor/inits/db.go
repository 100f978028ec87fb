package inits

import (
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// 监控只读链接表，不负责迁移，迁移由 server 完成
func DB(conn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
