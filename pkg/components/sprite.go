package components

import "image/color"

// SpriteKind 决定实体的绘制形状
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteAsteroid
	SpriteLazer
)

// SpriteComponent 存储实体的视觉表现
// 素材加载不在游戏逻辑范围内，渲染系统根据 Kind 绘制几何图形
type SpriteComponent struct {
	Kind   SpriteKind
	Width  float64
	Height float64
	Tint   color.RGBA // 着色，玩家死亡时变红
}
