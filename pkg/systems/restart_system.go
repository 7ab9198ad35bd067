package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/entities"
	"github.com/gonewx/lazerfall/pkg/events"
	"github.com/gonewx/lazerfall/pkg/game"
)

// RestartSystem 处理重新开始
// 清理局内实体、重置会话并生成新的飞船
type RestartSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
	session       *game.GameSession
	events        *events.EventQueue
}

// NewRestartSystem 创建重开系统
func NewRestartSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, session *game.GameSession, queue *events.EventQueue) *RestartSystem {
	return &RestartSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		events:        queue,
	}
}

// Update 消费 EventRestart
func (s *RestartSystem) Update(deltaTime float64) {
	if len(s.events.Consume(events.EventRestart)) == 0 {
		return
	}

	removed := despawnAllWith[*components.DespawnOnRestartComponent](s.entityManager)
	s.session.Reset()

	if _, err := entities.NewPlayerEntity(s.entityManager, s.config); err != nil {
		log.Errorf("[RestartSystem] 创建飞船失败: %v", err)
		return
	}
	log.Infof("[RestartSystem] 重新开始：清理 %d 个实体，新会话 %s", removed, s.session.ID)
}
