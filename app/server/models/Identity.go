package models

import (
	"encoding/json"
	"time"
)

type Identity struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey"` // 身份的 uuid ，也是档案与链接的归属键
	CreatedAt time.Time
	UpdatedAt time.Time

	// 登录凭据
	Email    string `gorm:"column:email;uniqueIndex"` // 登录邮箱，全局唯一
	Password string `gorm:"column:password"`          // 密码，使用 argon2id 储存

	// 注册阶段附带的资料（例如选定的用户名），确认回调时用来补建档案
	Metadata json.RawMessage `gorm:"column:metadata;type:jsonb"`

	EmailConfirmedAt *time.Time `gorm:"column:email_confirmed_at"` // 邮箱确认时间， NULL 表示尚未确认
}
