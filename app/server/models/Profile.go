package models

import (
	"biolink/app/server/types"
	"time"
)

type Profile struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey"` // 与对应身份共用同一个 uuid
	CreatedAt time.Time
	UpdatedAt time.Time

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex"` // 用户名，全小写，全局唯一，仅作展示别名使用（关联一律走 ID ）
	Email    string `gorm:"column:email"`
	Bio      string `gorm:"column:bio"`

	// 头像信息
	AvatarURL      string               `gorm:"column:avatar_url"`                  // 头像的公开地址
	AvatarPosition types.AvatarPosition `gorm:"column:avatar_position;type:jsonb"` // 头像在圆形裁切框里的变换状态
}
