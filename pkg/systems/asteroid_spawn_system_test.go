package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
)

// TestAsteroidSpawnInterval 每 SpawnInterval 秒生成一颗陨石
func TestAsteroidSpawnInterval(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()
	session := game.NewGameSession(cfg)
	system := NewAsteroidSpawnSystem(em, cfg, session, rand.New(rand.NewSource(7)))

	tests := []struct {
		dt   float64
		want int
	}{
		{1.0, 0},
		{0.5, 0},
		{0.5, 1},
		{1.5, 1},
		{0.5, 2},
	}

	for i, tt := range tests {
		system.Update(tt.dt)
		if got := countWith[*components.AsteroidComponent](em); got != tt.want {
			t.Fatalf("step %d: asteroids got %d, want %d", i, got, tt.want)
		}
	}
}

// TestAsteroidSpawnPosition 出生点位于顶部且 X 在出生区间内
func TestAsteroidSpawnPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()
	session := game.NewGameSession(cfg)
	system := NewAsteroidSpawnSystem(em, cfg, session, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		system.Update(cfg.Asteroid.SpawnInterval)
	}

	asteroids := ecs.GetEntitiesWith1[*components.AsteroidComponent](em)
	if len(asteroids) != 50 {
		t.Fatalf("asteroids: got %d, want 50", len(asteroids))
	}
	for _, id := range asteroids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.Y != cfg.Asteroid.SpawnHeight {
			t.Errorf("Y: got %v, want %v", pos.Y, cfg.Asteroid.SpawnHeight)
		}
		if pos.X < cfg.Asteroid.SpawnMinX || pos.X > cfg.Asteroid.SpawnMaxX {
			t.Errorf("X %v out of [%v, %v]", pos.X, cfg.Asteroid.SpawnMinX, cfg.Asteroid.SpawnMaxX)
		}
	}
}

// TestAsteroidSpawnDeterministic 相同种子生成相同位置
func TestAsteroidSpawnDeterministic(t *testing.T) {
	spawnX := func() float64 {
		em := ecs.NewEntityManager()
		cfg := config.DefaultGameplayConfig()
		system := NewAsteroidSpawnSystem(em, cfg, game.NewGameSession(cfg), rand.New(rand.NewSource(99)))
		system.Update(cfg.Asteroid.SpawnInterval)
		ids := ecs.GetEntitiesWith1[*components.AsteroidComponent](em)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[0])
		return pos.X
	}

	if a, b := spawnX(), spawnX(); a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}
