package systems

import (
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/events"
	"github.com/gonewx/lazerfall/pkg/game"
)

// ScoreSystem 每击毁一颗陨石加分
type ScoreSystem struct {
	config  *config.GameplayConfig
	session *game.GameSession
	events  *events.EventQueue
}

// NewScoreSystem 创建计分系统
func NewScoreSystem(cfg *config.GameplayConfig, session *game.GameSession, queue *events.EventQueue) *ScoreSystem {
	return &ScoreSystem{
		config:  cfg,
		session: session,
		events:  queue,
	}
}

// Update 消费击毁事件
func (s *ScoreSystem) Update(deltaTime float64) {
	hits := s.events.Consume(events.EventAsteroidHitByLazer)
	if len(hits) == 0 {
		return
	}
	s.session.AddScore(len(hits) * s.config.ScorePerAsteroid)
}
