package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarPositionDragClamps(t *testing.T) {
	pos := DefaultAvatarPosition()

	// 任意拖拽偏移量，平移都不能超出 ±100
	cases := []struct {
		pointerX, pointerY float64
		wantX, wantY       float64
	}{
		{30, -40, 30, -40},
		{100, 100, 100, 100},
		{101, 250, 100, 100},
		{-3000, 15, -100, 15},
		{0, -99.5, 0, -99.5},
	}

	for _, c := range cases {
		startX, startY := pos.DragStart(0, 0)
		got := pos.Drag(startX, startY, c.pointerX, c.pointerY)
		assert.Equal(t, c.wantX, got.X)
		assert.Equal(t, c.wantY, got.Y)
		// 拖拽不影响缩放
		assert.Equal(t, pos.Scale, got.Scale)
	}
}

func TestAvatarPositionDragStart(t *testing.T) {
	pos := AvatarPosition{X: 20, Y: -10, Scale: 1.5}

	// 拖拽起点 = 指针坐标 - 当前平移量
	startX, startY := pos.DragStart(50, 50)
	assert.Equal(t, 30.0, startX)
	assert.Equal(t, 60.0, startY)

	// 指针保持不动时平移量应当不变
	got := pos.Drag(startX, startY, 50, 50)
	assert.Equal(t, pos.X, got.X)
	assert.Equal(t, pos.Y, got.Y)
}

func TestAvatarPositionWheelClamps(t *testing.T) {
	pos := DefaultAvatarPosition()

	// 向上滚动放大
	got := pos.Wheel(-100)
	assert.InDelta(t, 1.1, got.Scale, 1e-9)

	// 任意滚轮序列缩放都保持在 [1,2]
	for _, delta := range []float64{-500, -1000, -1000, 300, 250, 10000, -42} {
		got = got.Wheel(delta)
		assert.GreaterOrEqual(t, got.Scale, AvatarScaleMin)
		assert.LessOrEqual(t, got.Scale, AvatarScaleMax)
	}

	// 已经最小时继续缩小没有变化
	got = DefaultAvatarPosition().Wheel(2000)
	assert.Equal(t, AvatarScaleMin, got.Scale)

	// 缩放不影响平移量
	moved := AvatarPosition{X: 42, Y: -42, Scale: 1}.Wheel(-100)
	assert.Equal(t, 42.0, moved.X)
	assert.Equal(t, -42.0, moved.Y)
}

func TestAvatarPositionScanAndValue(t *testing.T) {
	// NULL 映射为初始状态
	var pos AvatarPosition
	require.NoError(t, pos.Scan(nil))
	assert.Equal(t, DefaultAvatarPosition(), pos)

	// 写入前统一截断
	v, err := AvatarPosition{X: 300, Y: -300, Scale: 9}.Value()
	require.NoError(t, err)
	var stored AvatarPosition
	require.NoError(t, stored.Scan(v))
	assert.Equal(t, AvatarPosition{X: 100, Y: -100, Scale: 2}, stored)

	// 零值（未设置过的档案）落库后读回是初始状态
	v, err = AvatarPosition{}.Value()
	require.NoError(t, err)
	require.NoError(t, stored.Scan(v))
	assert.Equal(t, DefaultAvatarPosition(), stored)

	assert.Error(t, stored.Scan(42))
}
