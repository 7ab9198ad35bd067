package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lazerfall/pkg/game"
)

// HoldDuration 终端没有按键抬起事件，按下后视为按住的时长（秒）
// 需要大于终端的按键重复间隔，否则长按移动会断断续续
const HoldDuration = 0.15

// KeyInput 基于 tcell 按键事件的输入源
//
// 每帧先调用 HandleEvent 处理本帧收到的事件，场景更新后调用 Advance 推进时间。
type KeyInput struct {
	held        map[game.Action]float64 // 动作 -> 剩余按住时间
	justPressed map[game.Action]bool
}

// NewKeyInput 创建终端输入源
func NewKeyInput() *KeyInput {
	return &KeyInput{
		held:        make(map[game.Action]float64),
		justPressed: make(map[game.Action]bool),
	}
}

// ActionForKey 将 tcell 按键映射为游戏动作
//
// 返回：
//   - game.Action: 对应动作
//   - bool: 按键是否绑定了动作
func ActionForKey(ev *tcell.EventKey) (game.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.ActionMoveLeft, true
	case tcell.KeyRight:
		return game.ActionMoveRight, true
	case tcell.KeyUp:
		return game.ActionMenuUp, true
	case tcell.KeyDown:
		return game.ActionMenuDown, true
	case tcell.KeyEnter:
		return game.ActionConfirm, true
	case tcell.KeyEscape:
		return game.ActionBack, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.ActionMoveLeft, true
		case 'd', 'D':
			return game.ActionMoveRight, true
		case ' ':
			return game.ActionFire, true
		case 'w', 'W':
			return game.ActionMenuUp, true
		case 's', 'S':
			return game.ActionMenuDown, true
		case 'm', 'M':
			return game.ActionBack, true
		}
	}
	return 0, false
}

// HandleEvent 处理一个按键事件
//
// 返回：
//   - bool: 事件是否映射到了动作
func (in *KeyInput) HandleEvent(ev *tcell.EventKey) bool {
	action, ok := ActionForKey(ev)
	if !ok {
		return false
	}

	// 按键重复只刷新按住时间，不重复触发 JustPressed
	if _, holding := in.held[action]; !holding {
		in.justPressed[action] = true
	}
	in.held[action] = HoldDuration

	// 左右互斥：终端按键重复只会报告最后按下的方向
	switch action {
	case game.ActionMoveLeft:
		delete(in.held, game.ActionMoveRight)
	case game.ActionMoveRight:
		delete(in.held, game.ActionMoveLeft)
	}
	return true
}

// Advance 帧末推进：清除 JustPressed，按住时间到期的动作视为松开
func (in *KeyInput) Advance(deltaTime float64) {
	clear(in.justPressed)
	for action, remaining := range in.held {
		remaining -= deltaTime
		if remaining <= 0 {
			delete(in.held, action)
			continue
		}
		in.held[action] = remaining
	}
}

// IsPressed 实现 game.InputSource
func (in *KeyInput) IsPressed(action game.Action) bool {
	_, ok := in.held[action]
	return ok
}

// IsJustPressed 实现 game.InputSource
func (in *KeyInput) IsJustPressed(action game.Action) bool {
	return in.justPressed[action]
}
