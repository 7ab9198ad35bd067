// Package events 提供系统之间传递的帧内事件
//
// 事件在产生它的帧内被消费：碰撞系统写入，结算系统在同一帧稍后读取。
package events

import "github.com/gonewx/lazerfall/pkg/ecs"

// EventType 事件类型
type EventType int

const (
	// EventAsteroidHitByLazer 激光击毁陨石
	// Trigger: CollisionSystem | Consumer: ScoreSystem | Entity: 被击毁的陨石
	EventAsteroidHitByLazer EventType = iota

	// EventAsteroidDamage 陨石对玩家造成伤害
	// Trigger: CollisionSystem（撞击玩家或落出屏幕底部）
	// Consumer: DamageSystem | Amount: 伤害值
	EventAsteroidDamage

	// EventGameOver 玩家死亡，本局结束
	// Trigger: PlayerDeathSystem | Consumer: GameOverSystem
	EventGameOver

	// EventRestart 请求重新开始
	// Trigger: GameScene（结算面板“重新开始”） | Consumer: RestartSystem
	EventRestart

	// EventExitToMenu 请求退出到主菜单
	// Trigger: GameScene（结算面板“返回菜单”） | Consumer: GameScene
	EventExitToMenu
)

var eventTypeNames = map[EventType]string{
	EventAsteroidHitByLazer: "AsteroidHitByLazer",
	EventAsteroidDamage:     "AsteroidDamage",
	EventGameOver:           "GameOver",
	EventRestart:            "Restart",
	EventExitToMenu:         "ExitToMenu",
}

// String 返回事件类型名称（用于日志）
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent 游戏事件
type GameEvent struct {
	Type   EventType
	Entity ecs.EntityID // 相关实体，可为 ecs.InvalidEntity
	Amount int          // 数值载荷（伤害值等）
}
