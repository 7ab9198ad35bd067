package systems

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/entities"
	"github.com/gonewx/lazerfall/pkg/game"
)

// AsteroidSpawnSystem 按固定间隔在顶部随机位置生成陨石
type AsteroidSpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
	session       *game.GameSession
	rng           *rand.Rand
}

// NewAsteroidSpawnSystem 创建陨石生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（出生高度、出生区间）
//   - session: 当前会话（持有生成计时器）
//   - rng: 随机源，测试中可传入固定种子
func NewAsteroidSpawnSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, session *game.GameSession, rng *rand.Rand) *AsteroidSpawnSystem {
	return &AsteroidSpawnSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		rng:           rng,
	}
}

// Update 推进生成计时器，到时生成一颗陨石
func (s *AsteroidSpawnSystem) Update(deltaTime float64) {
	if !s.session.AsteroidSpawnTimer.Tick(deltaTime).JustFinished() {
		return
	}

	x := s.randomSpawnX()
	id, err := entities.NewAsteroidEntity(s.entityManager, s.config, x)
	if err != nil {
		log.Errorf("[AsteroidSpawnSystem] 创建陨石失败: %v", err)
		return
	}
	log.Debugf("[AsteroidSpawnSystem] 生成陨石 %d at x=%.1f", id, x)
}

// randomSpawnX 在 [SpawnMinX, SpawnMaxX] 内均匀取值
func (s *AsteroidSpawnSystem) randomSpawnX() float64 {
	a := s.config.Asteroid
	return a.SpawnMinX + s.rng.Float64()*(a.SpawnMaxX-a.SpawnMinX)
}
