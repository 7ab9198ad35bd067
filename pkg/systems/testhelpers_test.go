package systems

import (
	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
)

// fakeInput 可编程输入源
type fakeInput struct {
	pressed     map[game.Action]bool
	justPressed map[game.Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:     make(map[game.Action]bool),
		justPressed: make(map[game.Action]bool),
	}
}

func (f *fakeInput) IsPressed(action game.Action) bool {
	return f.pressed[action]
}

func (f *fakeInput) IsJustPressed(action game.Action) bool {
	return f.justPressed[action]
}

// fakeSound 记录播放过的音效
type fakeSound struct {
	played []string
}

func (f *fakeSound) PlaySound(soundID string) bool {
	f.played = append(f.played, soundID)
	return true
}

func (f *fakeSound) count(soundID string) int {
	n := 0
	for _, id := range f.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// addTestAsteroid 在指定位置放置一颗陨石（使用默认尺寸）
func addTestAsteroid(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.DirectionComponent{X: 0, Y: -1})
	ecs.AddComponent(em, id, &components.SpeedComponent{Value: cfg.Asteroid.Speed})
	ecs.AddComponent(em, id, &components.CircleColliderComponent{Radius: cfg.AsteroidRadius()})
	ecs.AddComponent(em, id, &components.AsteroidComponent{})
	ecs.AddComponent(em, id, &components.DespawnOnRestartComponent{})
	ecs.AddComponent(em, id, &components.DespawnOnExitComponent{})
	return id
}

// addTestLazer 在指定位置放置一道激光（使用默认尺寸）
func addTestLazer(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.BoxColliderComponent{
		Boxes: []components.Box{{Width: cfg.Lazer.Size.Width, Height: cfg.Lazer.Size.Height}},
	})
	ecs.AddComponent(em, id, &components.LazerComponent{})
	ecs.AddComponent(em, id, &components.DespawnOnRestartComponent{})
	ecs.AddComponent(em, id, &components.DespawnOnExitComponent{})
	return id
}

// countWith 统计拥有 T 组件的实体数量
func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
