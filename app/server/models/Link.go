package models

import "gorm.io/gorm"

type Link struct {
	gorm.Model

	OwnerID string `gorm:"column:owner_id;type:uuid;index"` // 所属档案（身份）的 uuid

	Title      string `gorm:"column:title"`
	URL        string `gorm:"column:url"`
	ClickCount uint   `gorm:"column:click_count"` // 点击计数，只增不减，从 0 开始
}
