package entities

import (
	"fmt"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// NewAsteroidEntity 创建陨石实体
// 陨石在顶部出生，沿 Y 轴负方向匀速下落
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - x: 出生点世界坐标X（由生成系统在出生区间内随机）
//
// 返回:
//   - ecs.EntityID: 创建的陨石实体ID
//   - error: 参数无效时返回错误
func NewAsteroidEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, x float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	a := cfg.Asteroid
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: a.SpawnHeight})
	ecs.AddComponent(em, entityID, &components.DirectionComponent{X: 0, Y: -1})
	ecs.AddComponent(em, entityID, &components.SpeedComponent{Value: a.Speed})
	ecs.AddComponent(em, entityID, &components.CircleColliderComponent{Radius: cfg.AsteroidRadius()})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Kind:   components.SpriteAsteroid,
		Width:  a.Diameter,
		Height: a.Diameter,
		Tint:   AsteroidTint,
	})
	ecs.AddComponent(em, entityID, &components.AsteroidComponent{})
	ecs.AddComponent(em, entityID, &components.DespawnOnRestartComponent{})
	ecs.AddComponent(em, entityID, &components.DespawnOnExitComponent{})

	return entityID, nil
}
