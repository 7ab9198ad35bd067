package scenes

import (
	"math/rand"
	"testing"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/game"
)

// scriptedInput 每次 press 只在下一次 Update 中生效
type scriptedInput struct {
	pressed     map[game.Action]bool
	justPressed map[game.Action]bool
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		pressed:     make(map[game.Action]bool),
		justPressed: make(map[game.Action]bool),
	}
}

func (in *scriptedInput) IsPressed(action game.Action) bool {
	return in.pressed[action]
}

func (in *scriptedInput) IsJustPressed(action game.Action) bool {
	return in.justPressed[action]
}

// tap 模拟按下并松开一次按键，执行一帧
func (in *scriptedInput) tap(sm *game.SceneManager, action game.Action) {
	in.justPressed[action] = true
	sm.Update(1.0 / 60.0)
	delete(in.justPressed, action)
}

func newTestContext(t *testing.T) (*Context, *scriptedInput) {
	t.Helper()
	input := newScriptedInput()
	ctx := &Context{
		SceneManager: game.NewSceneManager(),
		GameState:    game.NewGameState(nil),
		Input:        input,
		Config:       config.DefaultGameplayConfig(),
		Rand:         rand.New(rand.NewSource(3)),
	}
	return ctx, input
}
