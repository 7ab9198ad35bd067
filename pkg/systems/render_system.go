package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// RenderSystem 绘制游戏世界实体
//
// 不加载素材，按 SpriteComponent.Kind 绘制几何图形：
//   - 飞船：碰撞盒（机身 + 机翼）填充
//   - 陨石：实心圆 + 描边
//   - 激光：矩形
//
// 绘制顺序：陨石 → 激光 → 飞船
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

var renderOrder = []components.SpriteKind{
	components.SpriteAsteroid,
	components.SpriteLazer,
	components.SpritePlayer,
}

// Draw 绘制所有带精灵的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)

	for _, kind := range renderOrder {
		for _, id := range ids {
			sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
			if sprite.Kind != kind {
				continue
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			s.drawEntity(screen, id, pos, sprite)
		}
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	sx, sy := config.WorldToScreen(pos.X, pos.Y)

	switch sprite.Kind {
	case components.SpriteAsteroid:
		r := float32(sprite.Width / 2)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, sprite.Tint, true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), r, 2, outlineColor(sprite.Tint), true)

	case components.SpritePlayer:
		collider, ok := ecs.GetComponent[*components.BoxColliderComponent](s.entityManager, id)
		if !ok {
			drawCenteredRect(screen, sx, sy, sprite.Width, sprite.Height, sprite)
			return
		}
		for _, box := range collider.Boxes {
			bx, by := config.WorldToScreen(pos.X+box.OffsetX, pos.Y+box.OffsetY)
			drawCenteredRect(screen, bx, by, box.Width, box.Height, sprite)
		}

	default:
		drawCenteredRect(screen, sx, sy, sprite.Width, sprite.Height, sprite)
	}
}

// drawCenteredRect 以 (cx, cy) 为中心绘制矩形（屏幕坐标）
func drawCenteredRect(screen *ebiten.Image, cx, cy, w, h float64, sprite *components.SpriteComponent) {
	vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), sprite.Tint, false)
}
