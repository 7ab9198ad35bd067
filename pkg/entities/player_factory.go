package entities

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// 实体着色
var (
	PlayerTint     = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	PlayerDeadTint = color.RGBA{R: 255, A: 255} // 死亡后变红
	AsteroidTint   = color.RGBA{R: 150, G: 120, B: 100, A: 255}
	LazerTint      = color.RGBA{R: 80, G: 255, B: 120, A: 255}
)

// NewPlayerEntity 创建玩家飞船实体
// 飞船出生在 (0, SpawnHeight)，碰撞体由机身和机翼两个盒子组成
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//
// 返回:
//   - ecs.EntityID: 创建的飞船实体ID
//   - error: 参数无效时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	p := cfg.Player
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: 0, Y: p.SpawnHeight})
	ecs.AddComponent(em, entityID, &components.DirectionComponent{})
	ecs.AddComponent(em, entityID, &components.SpeedComponent{Value: p.MoveSpeed})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: p.Health,
		MaxHealth:     p.Health,
	})

	// 机身窄而高，机翼宽而矮，两者都以实体位置为中心
	ecs.AddComponent(em, entityID, &components.BoxColliderComponent{
		Boxes: []components.Box{
			{Width: p.BodySize.Width, Height: p.BodySize.Height},
			{Width: p.WingsSize.Width, Height: p.WingsSize.Height},
		},
	})

	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Kind:   components.SpritePlayer,
		Width:  p.WingsSize.Width,
		Height: p.BodySize.Height,
		Tint:   PlayerTint,
	})

	ecs.AddComponent(em, entityID, &components.PlayerComponent{})
	ecs.AddComponent(em, entityID, &components.DespawnOnRestartComponent{})
	ecs.AddComponent(em, entityID, &components.DespawnOnExitComponent{})

	log.Debugf("[PlayerFactory] 创建飞船 %d at (0, %.0f), health=%d", entityID, p.SpawnHeight, p.Health)
	return entityID, nil
}
