package main

import (
	"math"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
)

// autopilot 根据场上局势生成输入
// 追踪最低的陨石，对准后射击
type autopilot struct {
	em        *ecs.EntityManager
	tolerance float64 // 对准容差（像素）
	idle      bool    // 只射击不移动

	left, right, fire bool
}

func newAutopilot(em *ecs.EntityManager, tolerance float64, idle bool) *autopilot {
	return &autopilot{em: em, tolerance: tolerance, idle: idle}
}

// plan 计算本帧输入，需在 Pipeline.Update 前调用
func (a *autopilot) plan() {
	a.left, a.right, a.fire = false, false, false

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](a.em)
	if len(players) == 0 {
		return
	}
	player, _ := ecs.GetComponent[*components.PositionComponent](a.em, players[0])

	target, ok := a.lowestAsteroid(player.Y)
	if !ok {
		return
	}

	dx := target.X - player.X
	if !a.idle {
		a.left = dx < -a.tolerance
		a.right = dx > a.tolerance
	}
	a.fire = math.Abs(dx) <= a.tolerance
}

// lowestAsteroid 飞船上方最低的陨石
func (a *autopilot) lowestAsteroid(aboveY float64) (*components.PositionComponent, bool) {
	var lowest *components.PositionComponent
	for _, id := range ecs.GetEntitiesWith2[*components.AsteroidComponent, *components.PositionComponent](a.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.em, id)
		if pos.Y <= aboveY {
			continue
		}
		if lowest == nil || pos.Y < lowest.Y {
			lowest = pos
		}
	}
	return lowest, lowest != nil
}

// IsPressed 实现 game.InputSource
func (a *autopilot) IsPressed(action game.Action) bool {
	switch action {
	case game.ActionMoveLeft:
		return a.left
	case game.ActionMoveRight:
		return a.right
	case game.ActionFire:
		return a.fire
	}
	return false
}

// IsJustPressed 实现 game.InputSource
// 射击冷却由管线处理，对准期间每帧都视为刚按下
func (a *autopilot) IsJustPressed(action game.Action) bool {
	return action == game.ActionFire && a.fire
}

// soundCounter 统计音效触发次数
type soundCounter map[string]int

func (c soundCounter) PlaySound(soundID string) bool {
	c[soundID]++
	return true
}
