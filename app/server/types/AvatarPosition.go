package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// 头像裁切框的约束：平移每轴限制在 ±MaxOffset 像素内，缩放限制在 [ScaleMin, ScaleMax]
const (
	AvatarMaxOffset  = 100.0
	AvatarScaleMin   = 1.0
	AvatarScaleMax   = 2.0
	AvatarWheelRatio = -0.001 // 滚轮 deltaY 到缩放增量的线性系数
)

type AvatarPosition struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

func DefaultAvatarPosition() AvatarPosition {
	return AvatarPosition{X: 0, Y: 0, Scale: 1}
}

func (p AvatarPosition) Clamp() AvatarPosition {
	p.X = clamp(p.X, -AvatarMaxOffset, AvatarMaxOffset)
	p.Y = clamp(p.Y, -AvatarMaxOffset, AvatarMaxOffset)
	p.Scale = clamp(p.Scale, AvatarScaleMin, AvatarScaleMax)
	return p
}

// DragStart 记录拖拽起点：指针坐标减去当前平移量
func (p AvatarPosition) DragStart(pointerX, pointerY float64) (float64, float64) {
	return pointerX - p.X, pointerY - p.Y
}

// Drag 根据拖拽起点与当前指针坐标得出新的平移量，每轴独立截断
func (p AvatarPosition) Drag(startX, startY, pointerX, pointerY float64) AvatarPosition {
	p.X = clamp(pointerX-startX, -AvatarMaxOffset, AvatarMaxOffset)
	p.Y = clamp(pointerY-startY, -AvatarMaxOffset, AvatarMaxOffset)
	return p
}

// Wheel 根据滚轮增量调整缩放，平移量不做重新归一
func (p AvatarPosition) Wheel(deltaY float64) AvatarPosition {
	p.Scale = clamp(p.Scale+deltaY*AvatarWheelRatio, AvatarScaleMin, AvatarScaleMax)
	return p
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// 作为 jsonb 储存，写入前统一截断，保证库里的值始终在约束范围内
func (p AvatarPosition) Value() (driver.Value, error) {
	return json.Marshal(p.Clamp())
}

func (p *AvatarPosition) Scan(src any) error {
	if src == nil {
		*p = DefaultAvatarPosition()
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported avatar position source type: %T", src)
	}
}
