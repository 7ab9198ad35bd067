package systems

import (
	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// DestroySystem 帧末销毁所有带 DestroyComponent 的实体
type DestroySystem struct {
	entityManager *ecs.EntityManager
}

// NewDestroySystem 创建销毁系统
func NewDestroySystem(em *ecs.EntityManager) *DestroySystem {
	return &DestroySystem{entityManager: em}
}

// Update 标记删除，实际清理由帧末的 RemoveMarkedEntities 完成
func (s *DestroySystem) Update(deltaTime float64) {
	despawnAllWith[*components.DestroyComponent](s.entityManager)
}
