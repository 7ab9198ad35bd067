package systems

import (
	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/events"
)

// DamageSystem 汇总本帧的陨石伤害并挂到玩家身上
// 玩家已有未结算的 DamageComponent 时累加
type DamageSystem struct {
	entityManager *ecs.EntityManager
	events        *events.EventQueue
}

// NewDamageSystem 创建伤害汇总系统
func NewDamageSystem(em *ecs.EntityManager, queue *events.EventQueue) *DamageSystem {
	return &DamageSystem{
		entityManager: em,
		events:        queue,
	}
}

// Update 消费伤害事件
func (s *DamageSystem) Update(deltaTime float64) {
	total := 0
	for _, ev := range s.events.Consume(events.EventAsteroidDamage) {
		total += ev.Amount
	}
	if total <= 0 {
		return
	}

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.entityManager)
	for _, id := range players {
		if damage, ok := ecs.GetComponent[*components.DamageComponent](s.entityManager, id); ok {
			damage.Amount += total
			continue
		}
		ecs.AddComponent(s.entityManager, id, &components.DamageComponent{Amount: total})
	}
}
