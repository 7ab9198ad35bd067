package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/events"
	"github.com/gonewx/lazerfall/pkg/game"
)

// GameOverSystem 结算本局
// 得分超过最高分时刷新记录并持久化
type GameOverSystem struct {
	session *game.GameSession
	records *game.RecordManager
	events  *events.EventQueue
}

// NewGameOverSystem 创建结算系统
//
// 参数:
//   - session: 当前会话
//   - records: 最高分记录管理器
//   - queue: 事件队列
func NewGameOverSystem(session *game.GameSession, records *game.RecordManager, queue *events.EventQueue) *GameOverSystem {
	return &GameOverSystem{
		session: session,
		records: records,
		events:  queue,
	}
}

// Update 消费 EventGameOver
func (s *GameOverSystem) Update(deltaTime float64) {
	if len(s.events.Consume(events.EventGameOver)) == 0 {
		return
	}

	s.session.State = game.GameplayGameOver

	updated, err := s.records.Submit(s.session.Score, s.session.ID)
	if err != nil {
		log.Errorf("[GameOverSystem] 保存最高分失败: %v", err)
	}
	if updated {
		log.Infof("[GameOverSystem] 新纪录: %d (session %s)", s.session.Score, s.session.ID)
	}
}
