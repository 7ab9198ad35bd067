package scenes

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
	"github.com/gonewx/lazerfall/pkg/systems"
	"github.com/gonewx/lazerfall/pkg/utils"
)

// PanelSlideDuration 结算面板滑入动画时长（秒）
const PanelSlideDuration = 0.4

// PanelOption 结算面板选项
type PanelOption int

const (
	PanelRestart PanelOption = iota
	PanelExit
)

// Label 面板按钮文字
func (o PanelOption) Label() string {
	if o == PanelRestart {
		return "Restart"
	}
	return "Exit to menu"
}

// GameScene 游戏场景
//
// 进入时创建会话资源和玩家飞船，退出时清理全部局内实体并移除会话。
// 结算面板只在 GameOver 时响应输入：上/下选择，确认执行，返回键直接退出到主菜单。
type GameScene struct {
	ctx           *Context
	entityManager *ecs.EntityManager
	session       *game.GameSession
	pipeline      *systems.Pipeline
	renderSystem  *systems.RenderSystem

	panelSelection  PanelOption
	gameOverElapsed float64 // 进入 GameOver 后经过的时间，驱动面板滑入
	exited          bool
}

// NewGameScene 创建游戏场景并开始新的一局
//
// 返回：
//   - *GameScene: 场景实例
//   - error: 系统管线创建失败或飞船生成失败时返回错误
func NewGameScene(ctx *Context) (*GameScene, error) {
	if ctx.Config == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}

	gs := ctx.GameState
	em := ecs.NewEntityManager()
	session := gs.StartSession(ctx.Config)

	scene := &GameScene{
		ctx:           ctx,
		entityManager: em,
		session:       session,
		renderSystem:  systems.NewRenderSystem(em),
	}

	pipeline, err := systems.NewPipeline(systems.PipelineOptions{
		EntityManager: em,
		Config:        ctx.Config,
		Session:       session,
		Records:       gs.GetRecordManager(),
		Input:         ctx.Input,
		Sound:         gs.GetSoundPlayer(),
		Rand:          ctx.Rand,
		OnExit:        scene.backToMenu,
	})
	if err != nil {
		gs.EndSession()
		return nil, fmt.Errorf("failed to create system pipeline: %w", err)
	}
	if err := pipeline.Start(); err != nil {
		gs.EndSession()
		return nil, err
	}
	scene.pipeline = pipeline

	return scene, nil
}

// Update 更新游戏逻辑
func (s *GameScene) Update(deltaTime float64) {
	if s.exited {
		return
	}
	if s.ctx.PollConfig() {
		s.pipeline.ApplyConfig(s.ctx.Config)
	}

	if s.session.IsGameOver() {
		s.handlePanelInput()
	} else {
		s.panelSelection = PanelRestart
	}

	s.pipeline.Update(deltaTime)

	if s.session.IsGameOver() {
		s.gameOverElapsed += deltaTime
	} else {
		s.gameOverElapsed = 0
	}
}

// handlePanelInput 处理结算面板输入
func (s *GameScene) handlePanelInput() {
	in := s.ctx.Input
	if in == nil {
		return
	}

	switch {
	case in.IsJustPressed(game.ActionMenuUp), in.IsJustPressed(game.ActionMenuDown):
		if s.panelSelection == PanelRestart {
			s.panelSelection = PanelExit
		} else {
			s.panelSelection = PanelRestart
		}
	case in.IsJustPressed(game.ActionBack):
		s.pipeline.RequestExit()
	case in.IsJustPressed(game.ActionConfirm):
		if s.panelSelection == PanelRestart {
			s.pipeline.RequestRestart()
		} else {
			s.pipeline.RequestExit()
		}
	}
}

// backToMenu 退出清理完成后的回调：移除会话并切回主菜单
func (s *GameScene) backToMenu() {
	s.exited = true
	s.ctx.GameState.EndSession()
	s.ctx.SceneManager.RequestSwitch(NewMainMenuScene(s.ctx))
}

// OnExit 场景被切换或程序退出时清理
func (s *GameScene) OnExit() {
	if s.exited {
		return
	}
	s.exited = true
	removed := s.pipeline.Shutdown()
	s.ctx.GameState.EndSession()
	log.Debugf("[GameScene] 场景关闭，清理 %d 个实体", removed)
}

// Pipeline 返回系统管线
func (s *GameScene) Pipeline() *systems.Pipeline {
	return s.pipeline
}

// Session 返回本场景的会话
func (s *GameScene) Session() *game.GameSession {
	return s.session
}

// EntityManager 返回实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PanelSelection 结算面板当前选中的按钮
func (s *GameScene) PanelSelection() PanelOption {
	return s.panelSelection
}

// PanelProgress 结算面板滑入进度（0~1，已缓动）
func (s *GameScene) PanelProgress() float64 {
	return utils.EaseOutCubic(utils.Progress(s.gameOverElapsed, PanelSlideDuration))
}

// Record 最高分
func (s *GameScene) Record() int {
	return s.ctx.GameState.ScoreRecord()
}

// PlayerHealth 玩家当前生命值（没有飞船时为 0）
func (s *GameScene) PlayerHealth() int {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.HealthComponent](s.entityManager)
	if len(players) == 0 {
		return 0
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, players[0])
	return health.CurrentHealth
}
