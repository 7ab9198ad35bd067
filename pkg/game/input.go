package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 抽象输入动作
// 游戏逻辑只关心动作，具体按键由输入源映射
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionFire
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionBack
)

// InputSource 每帧轮询的输入源
type InputSource interface {
	// IsPressed 动作对应的按键当前是否按住
	IsPressed(action Action) bool
	// IsJustPressed 动作对应的按键是否在本帧刚按下
	IsJustPressed(action Action) bool
}

// DefaultKeyBindings 默认键位
// 每个动作可以绑定多个按键，任意一个满足即可
var DefaultKeyBindings = map[Action][]ebiten.Key{
	ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	ActionFire:      {ebiten.KeySpace},
	ActionMenuUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	ActionMenuDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	ActionConfirm:   {ebiten.KeyEnter},
	ActionBack:      {ebiten.KeyEscape, ebiten.KeyM},
}

// EbitenInput 基于 ebiten 键盘轮询的输入源
type EbitenInput struct {
	bindings map[Action][]ebiten.Key
}

// NewEbitenInput 创建键盘输入源，bindings 为 nil 时使用默认键位
func NewEbitenInput(bindings map[Action][]ebiten.Key) *EbitenInput {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	return &EbitenInput{bindings: bindings}
}

// IsPressed 实现 InputSource
func (in *EbitenInput) IsPressed(action Action) bool {
	for _, key := range in.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// IsJustPressed 实现 InputSource
func (in *EbitenInput) IsJustPressed(action Action) bool {
	for _, key := range in.bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
