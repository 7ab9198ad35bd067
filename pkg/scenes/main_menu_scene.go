package scenes

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/game"
)

// MenuItem 主菜单项
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuSoundVolume
	MenuMusicVolume
	MenuQuit
)

// VolumeStep 每次按左右键调整的音量
const VolumeStep = 10.0

var menuItems = []MenuItem{MenuStart, MenuSoundVolume, MenuMusicVolume, MenuQuit}

// Label 菜单项文字
func (m MenuItem) Label() string {
	switch m {
	case MenuStart:
		return "Start"
	case MenuSoundVolume:
		return "Sound volume"
	case MenuMusicVolume:
		return "Music volume"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// MainMenuScene 主菜单
//
// 操作：
//   - 上/下：切换菜单项
//   - 左/右：在音量项上调整音量（立即保存并应用）
//   - 确认：开始游戏或退出
type MainMenuScene struct {
	ctx      *Context
	selected int
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(ctx *Context) *MainMenuScene {
	log.Debugf("[MainMenuScene] 进入主菜单，最高分 %d", ctx.GameState.ScoreRecord())
	return &MainMenuScene{ctx: ctx}
}

// Update 处理菜单输入
func (s *MainMenuScene) Update(deltaTime float64) {
	s.ctx.PollConfig()

	in := s.ctx.Input
	if in == nil {
		return
	}

	switch {
	case in.IsJustPressed(game.ActionMenuUp):
		s.selected = (s.selected - 1 + len(menuItems)) % len(menuItems)
	case in.IsJustPressed(game.ActionMenuDown):
		s.selected = (s.selected + 1) % len(menuItems)
	case in.IsJustPressed(game.ActionMoveLeft):
		s.adjustVolume(-VolumeStep)
	case in.IsJustPressed(game.ActionMoveRight):
		s.adjustVolume(VolumeStep)
	case in.IsJustPressed(game.ActionConfirm):
		s.activate()
	}
}

// Selected 当前选中的菜单项
func (s *MainMenuScene) Selected() MenuItem {
	return menuItems[s.selected]
}

// Items 全部菜单项（按显示顺序）
func (s *MainMenuScene) Items() []MenuItem {
	return menuItems
}

// Record 最高分
func (s *MainMenuScene) Record() int {
	return s.ctx.GameState.ScoreRecord()
}

// Volume 返回音量项当前的值，非音量项返回 -1
func (s *MainMenuScene) Volume(item MenuItem) float64 {
	settings := s.ctx.GameState.GetSettingsManager().GetSettings()
	switch item {
	case MenuSoundVolume:
		return settings.SoundVolume
	case MenuMusicVolume:
		return settings.MusicVolume
	default:
		return -1
	}
}

func (s *MainMenuScene) adjustVolume(delta float64) {
	sm := s.ctx.GameState.GetSettingsManager()
	settings := sm.GetSettings()

	switch s.Selected() {
	case MenuSoundVolume:
		sm.SetSoundVolume(settings.SoundVolume + delta)
	case MenuMusicVolume:
		sm.SetMusicVolume(settings.MusicVolume + delta)
	default:
		return
	}

	if err := sm.Save(); err != nil {
		log.Warnf("[MainMenuScene] 保存设置失败: %v", err)
	}
	if am := s.ctx.GameState.GetAudioManager(); am != nil {
		am.ApplyVolume()
	}
}

func (s *MainMenuScene) activate() {
	switch s.Selected() {
	case MenuStart:
		gameScene, err := NewGameScene(s.ctx)
		if err != nil {
			log.Errorf("[MainMenuScene] 无法开始游戏: %v", err)
			return
		}
		s.ctx.SceneManager.RequestSwitch(gameScene)
	case MenuQuit:
		s.ctx.SceneManager.RequestQuit()
	}
}
