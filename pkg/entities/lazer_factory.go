package entities

import (
	"fmt"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// NewLazerEntity 创建激光实体
// 激光从飞船上方 YOffset 处发射，沿 Y 轴正方向匀速飞行
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - shipX, shipY: 发射时飞船的世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的激光实体ID
//   - error: 参数无效时返回错误
func NewLazerEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, shipX, shipY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	l := cfg.Lazer
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: shipX, Y: shipY + l.YOffset})
	ecs.AddComponent(em, entityID, &components.DirectionComponent{X: 0, Y: 1})
	ecs.AddComponent(em, entityID, &components.SpeedComponent{Value: l.Speed})
	ecs.AddComponent(em, entityID, &components.BoxColliderComponent{
		Boxes: []components.Box{{Width: l.Size.Width, Height: l.Size.Height}},
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Kind:   components.SpriteLazer,
		Width:  l.Size.Width,
		Height: l.Size.Height,
		Tint:   LazerTint,
	})
	ecs.AddComponent(em, entityID, &components.LazerComponent{})
	ecs.AddComponent(em, entityID, &components.DespawnOnRestartComponent{})
	ecs.AddComponent(em, entityID, &components.DespawnOnExitComponent{})

	return entityID, nil
}
