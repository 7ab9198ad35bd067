package scenes

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Context 场景共享的依赖
// 主菜单和游戏场景互相创建对方时传递同一个 Context
type Context struct {
	SceneManager *game.SceneManager
	GameState    *game.GameState
	Input        game.InputSource

	// Config 当前玩法配置，新的一局使用它创建会话
	Config *config.GameplayConfig
	// ConfigUpdates 热重载通道，可为 nil
	ConfigUpdates <-chan *config.GameplayConfig

	// Rand 陨石生成随机源，可为 nil（使用时间种子）
	Rand *rand.Rand
}

// PollConfig 非阻塞地读取热重载配置
//
// 返回：
//   - bool: 配置是否发生变化
func (c *Context) PollConfig() bool {
	select {
	case cfg, ok := <-c.ConfigUpdates:
		if !ok || cfg == nil {
			return false
		}
		c.Config = cfg
		log.Infof("[Scenes] 已切换到新的玩法配置")
		return true
	default:
		return false
	}
}
