package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/events"
	"github.com/gonewx/lazerfall/pkg/game"
	"github.com/gonewx/lazerfall/pkg/utils"
)

// CollisionSystem 碰撞检测
//
// 每帧依次处理：
//  1. 激光 ↔ 陨石：飞出陨石出生高度的激光直接销毁；
//     命中时激光和陨石都销毁，一道激光最多击毁一颗陨石
//  2. 玩家 ↔ 陨石：玩家 X 限制在出生区间内；机身或机翼与陨石相交即受伤
//  3. 底部边界：陨石落到 -SpawnHeight 以下视为漏过，同样对玩家造成伤害
//
// 已带 DestroyComponent 的陨石不会再参与后续检测。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
	events        *events.EventQueue
	sound         game.SoundPlayer
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（出生区间、伤害值）
//   - queue: 事件队列，命中和伤害通过事件传递给结算系统
//   - sound: 音效接口，可为 nil
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, queue *events.EventQueue, sound game.SoundPlayer) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
		events:        queue,
		sound:         sound,
	}
}

// Update 执行全部碰撞检测
func (s *CollisionSystem) Update(deltaTime float64) {
	s.checkLazerCollisions()
	s.checkPlayerCollisions()
	s.checkBottomWall()
}

// checkLazerCollisions 激光与陨石
func (s *CollisionSystem) checkLazerCollisions() {
	lazers := ecs.GetEntitiesWith3[
		*components.LazerComponent,
		*components.PositionComponent,
		*components.BoxColliderComponent,
	](s.entityManager)
	asteroids := s.asteroids()

	for _, lazerID := range lazers {
		if isMarkedDestroy(s.entityManager, lazerID) {
			continue
		}
		lazerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, lazerID)
		lazerCol, _ := ecs.GetComponent[*components.BoxColliderComponent](s.entityManager, lazerID)

		if lazerPos.Y > s.config.Asteroid.SpawnHeight {
			markDestroy(s.entityManager, lazerID)
			continue
		}

		for _, asteroidID := range asteroids {
			if isMarkedDestroy(s.entityManager, asteroidID) {
				continue
			}
			circle, ok := s.asteroidCircle(asteroidID)
			if !ok {
				continue
			}
			if !boxesIntersectCircle(lazerPos, lazerCol, circle) {
				continue
			}

			markDestroy(s.entityManager, lazerID)
			markDestroy(s.entityManager, asteroidID)
			s.events.Push(events.GameEvent{
				Type:   events.EventAsteroidHitByLazer,
				Entity: asteroidID,
			})
			log.Debugf("[CollisionSystem] 激光 %d 击毁陨石 %d", lazerID, asteroidID)
			break
		}
	}
}

// checkPlayerCollisions 玩家与陨石
func (s *CollisionSystem) checkPlayerCollisions() {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.BoxColliderComponent,
	](s.entityManager)
	asteroids := s.asteroids()

	lane := s.config.Asteroid
	for _, playerID := range players {
		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		playerCol, _ := ecs.GetComponent[*components.BoxColliderComponent](s.entityManager, playerID)

		playerPos.X = utils.Clamp(playerPos.X, lane.SpawnMinX, lane.SpawnMaxX)

		for _, asteroidID := range asteroids {
			if isMarkedDestroy(s.entityManager, asteroidID) {
				continue
			}
			circle, ok := s.asteroidCircle(asteroidID)
			if !ok {
				continue
			}
			if !boxesIntersectCircle(playerPos, playerCol, circle) {
				continue
			}

			log.Debugf("[CollisionSystem] 陨石 %d 撞击玩家 %d", asteroidID, playerID)
			s.damagePlayer(asteroidID)
		}
	}
}

// checkBottomWall 陨石落出屏幕底部
func (s *CollisionSystem) checkBottomWall() {
	bottom := -s.config.Asteroid.SpawnHeight
	for _, asteroidID := range s.asteroids() {
		if isMarkedDestroy(s.entityManager, asteroidID) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, asteroidID)
		if pos.Y < bottom {
			log.Debugf("[CollisionSystem] 陨石 %d 漏过底部", asteroidID)
			s.damagePlayer(asteroidID)
		}
	}
}

// damagePlayer 发送伤害事件、销毁陨石并播放受伤音效
func (s *CollisionSystem) damagePlayer(asteroidID ecs.EntityID) {
	s.events.Push(events.GameEvent{
		Type:   events.EventAsteroidDamage,
		Entity: asteroidID,
		Amount: s.config.Asteroid.Damage,
	})
	markDestroy(s.entityManager, asteroidID)
	playSound(s.sound, game.SoundDamage)
}

func (s *CollisionSystem) asteroids() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.AsteroidComponent,
		*components.PositionComponent,
		*components.CircleColliderComponent,
	](s.entityManager)
}

// asteroidCircle 返回陨石的圆形包围体
func (s *CollisionSystem) asteroidCircle(id ecs.EntityID) (utils.Circle, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return utils.Circle{}, false
	}
	col, ok := ecs.GetComponent[*components.CircleColliderComponent](s.entityManager, id)
	if !ok {
		return utils.Circle{}, false
	}
	return utils.Circle{CenterX: pos.X, CenterY: pos.Y, Radius: col.Radius}, true
}

// boxesIntersectCircle 任意一个碰撞盒与圆相交即返回 true
func boxesIntersectCircle(pos *components.PositionComponent, col *components.BoxColliderComponent, circle utils.Circle) bool {
	for _, box := range col.Boxes {
		aabb := utils.NewAABB(pos.X+box.OffsetX, pos.Y+box.OffsetY, box.Width, box.Height)
		if aabb.IntersectsCircle(circle) {
			return true
		}
	}
	return false
}
