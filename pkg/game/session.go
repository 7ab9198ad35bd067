package game

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gonewx/lazerfall/pkg/config"
)

// GameplayState 局内状态
type GameplayState int

const (
	// GameplayGame 游戏进行中
	GameplayGame GameplayState = iota
	// GameplayGameOver 玩家死亡，显示结算面板
	GameplayGameOver
)

// String 返回状态名称
func (s GameplayState) String() string {
	switch s {
	case GameplayGame:
		return "Game"
	case GameplayGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameSession 一局游戏的资源
// 只在局内存在：进入游戏时创建，退出到主菜单时销毁
type GameSession struct {
	ID    string        // 会话ID，用于日志和记录溯源
	Score int           // 当前得分
	State GameplayState // 局内状态

	AsteroidSpawnTimer *Timer // 陨石生成计时器（循环）
	LazerShootingTimer *Timer // 激光射击冷却（单次）
}

// NewGameSession 根据玩法配置创建新的游戏会话
func NewGameSession(cfg *config.GameplayConfig) *GameSession {
	s := &GameSession{
		AsteroidSpawnTimer: NewTimer(cfg.Asteroid.SpawnInterval, TimerRepeating),
		LazerShootingTimer: NewTimer(cfg.Lazer.FireCooldown, TimerOnce),
	}
	s.Reset()
	return s
}

// Reset 重新开始本局：得分清零、状态回到游戏中、计时器归零
// 会分配新的会话ID
func (s *GameSession) Reset() {
	s.ID = uuid.NewString()
	s.Score = 0
	s.State = GameplayGame
	s.AsteroidSpawnTimer.Reset()
	s.LazerShootingTimer.Reset()
	log.Debugf("[GameSession] 新会话: %s", s.ID)
}

// AddScore 增加得分（负值被忽略，得分只增不减）
func (s *GameSession) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	s.Score += amount
}

// IsGameOver 是否已结束
func (s *GameSession) IsGameOver() bool {
	return s.State == GameplayGameOver
}

// ApplyConfig 应用热重载后的配置（只影响计时器时长）
func (s *GameSession) ApplyConfig(cfg *config.GameplayConfig) {
	s.AsteroidSpawnTimer.SetDuration(cfg.Asteroid.SpawnInterval)
	s.LazerShootingTimer.SetDuration(cfg.Lazer.FireCooldown)
}
