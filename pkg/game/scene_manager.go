package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景切换请求在当前帧 Update 结束后才生效，避免场景在自己的 Update 中被替换。
type SceneManager struct {
	currentScene  Scene
	pendingScene  Scene
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene immediately.
// 旧场景实现 Exitable 时会先调用其 OnExit。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if exitable, ok := sm.currentScene.(Exitable); ok && sm.currentScene != scene {
		exitable.OnExit()
	}
	sm.currentScene = scene
	sm.pendingScene = nil
}

// RequestSwitch 请求在本帧结束时切换场景
func (sm *SceneManager) RequestSwitch(scene Scene) {
	sm.pendingScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// RequestQuit 请求退出程序（主菜单 Quit 按钮）
func (sm *SceneManager) RequestQuit() {
	log.Infof("[SceneManager] 收到退出请求")
	sm.quitRequested = true
}

// IsQuitRequested 是否已请求退出
func (sm *SceneManager) IsQuitRequested() bool {
	return sm.quitRequested
}

// Shutdown 退出前通知当前场景
func (sm *SceneManager) Shutdown() {
	if exitable, ok := sm.currentScene.(Exitable); ok {
		exitable.OnExit()
	}
	sm.currentScene = nil
	sm.pendingScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	if sm.pendingScene != nil {
		sm.SwitchTo(sm.pendingScene)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
