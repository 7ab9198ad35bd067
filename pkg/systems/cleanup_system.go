package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/events"
)

// CleanupSystem 处理退出到主菜单
// 清理全部局内实体后调用 onExit（由场景移除会话并切回主菜单）
type CleanupSystem struct {
	entityManager *ecs.EntityManager
	events        *events.EventQueue
	onExit        func()
}

// NewCleanupSystem 创建退出清理系统
//
// 参数:
//   - em: 实体管理器
//   - queue: 事件队列
//   - onExit: 清理完成后的回调，可为 nil
func NewCleanupSystem(em *ecs.EntityManager, queue *events.EventQueue, onExit func()) *CleanupSystem {
	return &CleanupSystem{
		entityManager: em,
		events:        queue,
		onExit:        onExit,
	}
}

// Update 消费 EventExitToMenu
func (s *CleanupSystem) Update(deltaTime float64) {
	if len(s.events.Consume(events.EventExitToMenu)) == 0 {
		return
	}

	removed := s.DespawnAll()
	log.Infof("[CleanupSystem] 退出到主菜单，清理 %d 个实体", removed)

	if s.onExit != nil {
		s.onExit()
	}
}

// DespawnAll 立即清理全部局内实体
//
// 返回：
//   - int: 删除的实体数量
func (s *CleanupSystem) DespawnAll() int {
	despawnAllWith[*components.DespawnOnExitComponent](s.entityManager)
	return s.entityManager.RemoveMarkedEntities()
}
