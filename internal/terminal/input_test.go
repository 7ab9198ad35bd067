package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lazerfall/pkg/game"
)

func keyRune(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

// TestActionForKey 按键映射
func TestActionForKey(t *testing.T) {
	tests := []struct {
		name   string
		event  *tcell.EventKey
		want   game.Action
		mapped bool
	}{
		{"左方向键", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.ActionMoveLeft, true},
		{"D 键", keyRune('d'), game.ActionMoveRight, true},
		{"大写 D 键", keyRune('D'), game.ActionMoveRight, true},
		{"空格", keyRune(' '), game.ActionFire, true},
		{"回车", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.ActionConfirm, true},
		{"Esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.ActionBack, true},
		{"R 键不作为确认", keyRune('r'), 0, false},
		{"未绑定的键", keyRune('x'), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActionForKey(tt.event)
			if ok != tt.mapped {
				t.Fatalf("mapped: got %v, want %v", ok, tt.mapped)
			}
			if ok && got != tt.want {
				t.Errorf("action: got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestKeyInputHold 按下后在 HoldDuration 内视为按住
func TestKeyInputHold(t *testing.T) {
	in := NewKeyInput()
	in.HandleEvent(keyRune(' '))

	if !in.IsJustPressed(game.ActionFire) || !in.IsPressed(game.ActionFire) {
		t.Fatal("按下的帧应同时为 JustPressed 和 Pressed")
	}

	in.Advance(0.0625)
	if in.IsJustPressed(game.ActionFire) {
		t.Error("下一帧不应再是 JustPressed")
	}
	if !in.IsPressed(game.ActionFire) {
		t.Error("HoldDuration 内仍应视为按住")
	}

	in.Advance(0.125)
	if in.IsPressed(game.ActionFire) {
		t.Error("超过 HoldDuration 应视为松开")
	}
}

// TestKeyInputRepeat 按键重复只刷新按住时间
func TestKeyInputRepeat(t *testing.T) {
	in := NewKeyInput()
	in.HandleEvent(keyRune('a'))
	in.Advance(0.125)

	in.HandleEvent(keyRune('a'))
	if in.IsJustPressed(game.ActionMoveLeft) {
		t.Error("按住期间的重复不应触发 JustPressed")
	}
	in.Advance(0.125)
	if !in.IsPressed(game.ActionMoveLeft) {
		t.Error("重复按键应刷新按住时间")
	}
}

// TestKeyInputOppositeDirections 左右互斥
func TestKeyInputOppositeDirections(t *testing.T) {
	in := NewKeyInput()
	in.HandleEvent(keyRune('a'))
	in.HandleEvent(keyRune('d'))

	if in.IsPressed(game.ActionMoveLeft) {
		t.Error("按下右键后左键应松开")
	}
	if !in.IsPressed(game.ActionMoveRight) {
		t.Error("右键应按住")
	}
}

// TestKeyInputUnmapped 未绑定的键被忽略
func TestKeyInputUnmapped(t *testing.T) {
	in := NewKeyInput()
	if in.HandleEvent(keyRune('x')) {
		t.Error("未绑定的键应返回 false")
	}
}
