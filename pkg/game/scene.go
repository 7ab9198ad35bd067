package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (main menu or gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Exitable 是一个可选接口，场景在被切换走或程序退出前调用 OnExit
//
// 游戏场景借此销毁局内实体并移除会话资源。
type Exitable interface {
	OnExit()
}
