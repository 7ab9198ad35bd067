package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/entities"
	"github.com/gonewx/lazerfall/pkg/events"
	"github.com/gonewx/lazerfall/pkg/game"
)

// PlayerDeathSystem 玩家死亡时结束本局
// 切换到 GameOver、飞船变红并发送 EventGameOver
type PlayerDeathSystem struct {
	entityManager *ecs.EntityManager
	session       *game.GameSession
	events        *events.EventQueue
}

// NewPlayerDeathSystem 创建玩家死亡系统
func NewPlayerDeathSystem(em *ecs.EntityManager, session *game.GameSession, queue *events.EventQueue) *PlayerDeathSystem {
	return &PlayerDeathSystem{
		entityManager: em,
		session:       session,
		events:        queue,
	}
}

// Update 检查死亡的玩家
func (s *PlayerDeathSystem) Update(deltaTime float64) {
	if s.session.IsGameOver() {
		return
	}

	dead := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.DeadComponent](s.entityManager)
	if len(dead) == 0 {
		return
	}

	s.session.State = game.GameplayGameOver
	for _, id := range dead {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Tint = entities.PlayerDeadTint
		}
	}
	s.events.Send(events.EventGameOver)
	log.Infof("[PlayerDeathSystem] 玩家死亡，本局结束 (score %d)", s.session.Score)
}
