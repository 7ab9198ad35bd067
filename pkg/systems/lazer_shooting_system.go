package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/entities"
	"github.com/gonewx/lazerfall/pkg/game"
)

// LazerShootingSystem 处理射击输入和射速冷却
//
// 冷却计时器为单次计时：未冷却完毕时忽略射击输入，
// 冷却完毕后按下射击键，为每架飞船发射一道激光并重置冷却。
type LazerShootingSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
	session       *game.GameSession
	input         game.InputSource
	sound         game.SoundPlayer
}

// NewLazerShootingSystem 创建射击系统
func NewLazerShootingSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, session *game.GameSession, input game.InputSource, sound game.SoundPlayer) *LazerShootingSystem {
	return &LazerShootingSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
		input:         input,
		sound:         sound,
	}
}

// Update 推进冷却并处理射击
func (s *LazerShootingSystem) Update(deltaTime float64) {
	timer := s.session.LazerShootingTimer
	if !timer.Tick(deltaTime).Finished() {
		return
	}
	if s.input == nil || !s.input.IsJustPressed(game.ActionFire) {
		return
	}

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}

	for _, id := range players {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if _, err := entities.NewLazerEntity(s.entityManager, s.config, pos.X, pos.Y); err != nil {
			log.Errorf("[LazerShootingSystem] 创建激光失败: %v", err)
			continue
		}
	}

	playSound(s.sound, game.SoundLazer)
	timer.Reset()
}
