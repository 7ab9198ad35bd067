package systems

import (
	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
)

// InputSystem 将左右移动输入写入玩家飞船的方向
// 同时按下左右时左优先
type InputSystem struct {
	entityManager *ecs.EntityManager
	input         game.InputSource
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - em: 实体管理器
//   - input: 输入源（ebiten 键盘或终端）
func NewInputSystem(em *ecs.EntityManager, input game.InputSource) *InputSystem {
	return &InputSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新所有玩家飞船的水平方向
func (s *InputSystem) Update(deltaTime float64) {
	dirX := 0.0
	if s.input != nil {
		switch {
		case s.input.IsPressed(game.ActionMoveLeft):
			dirX = -1
		case s.input.IsPressed(game.ActionMoveRight):
			dirX = 1
		}
	}

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.DirectionComponent](s.entityManager)
	for _, id := range players {
		dir, ok := ecs.GetComponent[*components.DirectionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		dir.X = dirX
	}
}
