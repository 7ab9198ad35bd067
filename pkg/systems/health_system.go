package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// HealthSystem 结算伤害
//
// 生命值扣减后不低于 0；降到 0 时添加 DeadComponent（只添加一次）。
// 结算完成后移除 DamageComponent。
type HealthSystem struct {
	entityManager *ecs.EntityManager
}

// NewHealthSystem 创建生命值系统
func NewHealthSystem(em *ecs.EntityManager) *HealthSystem {
	return &HealthSystem{entityManager: em}
}

// Update 结算所有待处理伤害
func (s *HealthSystem) Update(deltaTime float64) {
	damaged := ecs.GetEntitiesWith2[*components.HealthComponent, *components.DamageComponent](s.entityManager)

	for _, id := range damaged {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		damage, _ := ecs.GetComponent[*components.DamageComponent](s.entityManager, id)

		health.CurrentHealth -= damage.Amount
		if health.CurrentHealth < 0 {
			health.CurrentHealth = 0
		}
		ecs.RemoveComponent[*components.DamageComponent](s.entityManager, id)

		log.Debugf("[HealthSystem] 实体 %d 受到 %d 点伤害，剩余生命 %d", id, damage.Amount, health.CurrentHealth)

		if health.CurrentHealth == 0 && !ecs.HasComponent[*components.DeadComponent](s.entityManager, id) {
			ecs.AddComponent(s.entityManager, id, &components.DeadComponent{})
			log.Infof("[HealthSystem] 实体 %d 死亡", id)
		}
	}
}
