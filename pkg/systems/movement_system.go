package systems

import (
	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// MovementSystem 匀速运动积分：位置 += 方向 × 速度 × 时间
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建运动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 更新所有可移动实体的位置
func (s *MovementSystem) Update(deltaTime float64) {
	movers := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.DirectionComponent,
		*components.SpeedComponent,
	](s.entityManager)

	for _, id := range movers {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		dir, _ := ecs.GetComponent[*components.DirectionComponent](s.entityManager, id)
		speed, _ := ecs.GetComponent[*components.SpeedComponent](s.entityManager, id)

		pos.X += dir.X * speed.Value * deltaTime
		pos.Y += dir.Y * speed.Value * deltaTime
	}
}
