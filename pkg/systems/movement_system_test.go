package systems

import (
	"testing"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
)

// TestMovementSystem 位置 += 方向 × 速度 × 时间
func TestMovementSystem(t *testing.T) {
	tests := []struct {
		name         string
		dirX, dirY   float64
		speed        float64
		dt           float64
		wantX, wantY float64
	}{
		{"静止", 0, 0, 250, 1, 10, 20},
		{"向左", -1, 0, 250, 0.5, -115, 20},
		{"下落", 0, -1, 350, 0.25, 10, -67.5},
		{"上升", 0, 1, 600, 0.125, 10, 95},
		{"零时间", 1, 1, 600, 0, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.PositionComponent{X: 10, Y: 20})
			ecs.AddComponent(em, id, &components.DirectionComponent{X: tt.dirX, Y: tt.dirY})
			ecs.AddComponent(em, id, &components.SpeedComponent{Value: tt.speed})

			NewMovementSystem(em).Update(tt.dt)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position: got (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestMovementSystemSkipsIncomplete 缺少速度或方向的实体不移动
func TestMovementSystemSkipsIncomplete(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 1, Y: 2})
	ecs.AddComponent(em, id, &components.DirectionComponent{X: 1, Y: 1})

	NewMovementSystem(em).Update(1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("position: got (%v, %v), want (1, 2)", pos.X, pos.Y)
	}
}
