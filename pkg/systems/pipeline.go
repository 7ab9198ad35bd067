package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/entities"
	"github.com/gonewx/lazerfall/pkg/events"
	"github.com/gonewx/lazerfall/pkg/game"
)

// Updater 每帧更新的系统
type Updater interface {
	Update(deltaTime float64)
}

// PipelineOptions 创建局内系统管线所需的依赖
type PipelineOptions struct {
	EntityManager *ecs.EntityManager
	Config        *config.GameplayConfig
	Session       *game.GameSession
	Records       *game.RecordManager
	Input         game.InputSource
	Sound         game.SoundPlayer // 可为 nil（无声）
	Rand          *rand.Rand       // 可为 nil，使用时间种子
	OnExit        func()           // 退出到主菜单时调用，可为 nil
}

// Pipeline 局内系统管线
//
// 每帧按固定顺序执行：
//   - 游戏阶段（GameOver 时冻结）：输入、射击、陨石生成、运动、碰撞
//   - 结算阶段（始终执行）：计分、伤害、生命值、玩家死亡、结算、重开、退出清理、销毁
//
// 帧末统一删除被标记的实体。
type Pipeline struct {
	entityManager *ecs.EntityManager
	config        *config.GameplayConfig
	session       *game.GameSession
	events        *events.EventQueue

	gameplay   []Updater
	resolution []Updater
	cleanup    *CleanupSystem

	frame uint64
}

// NewPipeline 创建系统管线
//
// 配置会被复制一份，热重载通过 ApplyConfig 原地更新，所有系统共享同一份配置。
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if opts.EntityManager == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if opts.Config == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}
	if opts.Session == nil {
		return nil, fmt.Errorf("game session cannot be nil")
	}
	if opts.Records == nil {
		opts.Records = game.NewRecordManager(nil)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := opts.EntityManager
	cfg := opts.Config.Clone()
	queue := events.NewEventQueue()

	p := &Pipeline{
		entityManager: em,
		config:        cfg,
		session:       opts.Session,
		events:        queue,
		cleanup:       NewCleanupSystem(em, queue, opts.OnExit),
	}

	p.gameplay = []Updater{
		NewInputSystem(em, opts.Input),
		NewLazerShootingSystem(em, cfg, opts.Session, opts.Input, opts.Sound),
		NewAsteroidSpawnSystem(em, cfg, opts.Session, opts.Rand),
		NewMovementSystem(em),
		NewCollisionSystem(em, cfg, queue, opts.Sound),
	}
	p.resolution = []Updater{
		NewScoreSystem(cfg, opts.Session, queue),
		NewDamageSystem(em, queue),
		NewHealthSystem(em),
		NewPlayerDeathSystem(em, opts.Session, queue),
		NewGameOverSystem(opts.Session, opts.Records, queue),
		NewRestartSystem(em, cfg, opts.Session, queue),
		p.cleanup,
		NewDestroySystem(em),
	}

	return p, nil
}

// Start 进入游戏：生成玩家飞船
func (p *Pipeline) Start() error {
	if _, err := entities.NewPlayerEntity(p.entityManager, p.config); err != nil {
		return fmt.Errorf("failed to spawn player: %w", err)
	}
	log.Infof("[Pipeline] 进入游戏 (session %s)", p.session.ID)
	return nil
}

// Update 执行一帧
func (p *Pipeline) Update(deltaTime float64) {
	p.frame++

	if !p.session.IsGameOver() {
		for _, sys := range p.gameplay {
			sys.Update(deltaTime)
		}
	}
	for _, sys := range p.resolution {
		sys.Update(deltaTime)
	}

	p.entityManager.RemoveMarkedEntities()
}

// RequestRestart 请求重新开始（下一帧的结算阶段处理）
func (p *Pipeline) RequestRestart() {
	p.events.Send(events.EventRestart)
}

// RequestExit 请求退出到主菜单（下一帧的结算阶段处理）
func (p *Pipeline) RequestExit() {
	p.events.Send(events.EventExitToMenu)
}

// ApplyConfig 应用热重载的配置
// 已存在实体的速度和尺寸保持不变，新生成的实体使用新配置
func (p *Pipeline) ApplyConfig(cfg *config.GameplayConfig) {
	if cfg == nil {
		return
	}
	*p.config = *cfg.Clone()
	p.session.ApplyConfig(p.config)
	log.Infof("[Pipeline] 已应用新配置")
}

// Shutdown 立即清理全部局内实体（场景销毁时调用）
func (p *Pipeline) Shutdown() int {
	p.events.Clear()
	return p.cleanup.DespawnAll()
}

// EntityManager 返回实体管理器
func (p *Pipeline) EntityManager() *ecs.EntityManager {
	return p.entityManager
}

// Session 返回当前会话
func (p *Pipeline) Session() *game.GameSession {
	return p.session
}

// Config 返回管线使用的配置
func (p *Pipeline) Config() *config.GameplayConfig {
	return p.config
}

// Frame 返回已执行的帧数
func (p *Pipeline) Frame() uint64 {
	return p.frame
}
