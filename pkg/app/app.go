// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载玩法配置、启动配置热重载、
// 创建音频管理器和场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/game"
	"github.com/gonewx/lazerfall/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 玩法配置文件路径（.yaml/.yml/.toml），为空使用默认配置
	ConfigPath string
	// Watch 监听配置文件变化并热重载（需要 ConfigPath）
	Watch bool
	// Mute 不创建音频上下文
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameState                *game.GameState
	cancelWatch              context.CancelFunc
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 按路径加载玩法配置，路径为空时返回默认配置
func LoadConfig(path string) (*config.GameplayConfig, error) {
	if path == "" {
		return config.DefaultGameplayConfig(), nil
	}
	cfg, err := config.LoadGameplayConfig(path)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	log.Infof("[App] 加载玩法配置: %s", path)
	return cfg, nil
}

// StartWatcher 启动配置热重载，返回更新通道和停止函数
// path 为空时返回 nil 通道
func StartWatcher(path string) (<-chan *config.GameplayConfig, context.CancelFunc, error) {
	if path == "" {
		return nil, func() {}, nil
	}

	watcher, err := config.NewConfigWatcher(path)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warnf("[App] 配置监听退出: %v", err)
		}
	}()
	log.Infof("[App] 正在监听配置文件: %s", path)
	return watcher.Updates(), cancel, nil
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	gameplayConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var updates <-chan *config.GameplayConfig
	cancelWatch := func() {}
	if cfg.Watch {
		updates, cancelWatch, err = StartWatcher(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置热重载启动失败: %w", err)
		}
	}

	gameState := game.GetGameState()

	// 初始化 AudioManager 并设置到 GameState
	if !cfg.Mute {
		audioContext := audio.NewContext(game.AudioSampleRate)
		audioManager := game.NewAudioManager(audioContext, gameState.GetSettingsManager(), game.SynthesizeSoundBank())
		gameState.SetAudioManager(audioManager)
		audioManager.PlayMusic(game.MusicMain)
		log.Debugf("[App] AudioManager initialized")
	}

	sceneManager := game.NewSceneManager()
	sceneCtx := &scenes.Context{
		SceneManager:  sceneManager,
		GameState:     gameState,
		Input:         game.NewEbitenInput(game.DefaultKeyBindings),
		Config:        gameplayConfig,
		ConfigUpdates: updates,
	}
	sceneManager.SwitchTo(scenes.NewMainMenuScene(sceneCtx))

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		cancelWatch:  cancelWatch,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.sceneManager.IsQuitRequested() {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.InitialWindowWidth, config.InitialWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	sm := a.gameState.GetSettingsManager()
	sm.SetFullscreen(fullscreen)
	if err := sm.Save(); err != nil {
		log.Warnf("[App] 保存全屏设置失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 退出前清理：通知当前场景并停止配置监听
func (a *App) Close() {
	a.sceneManager.Shutdown()
	if am := a.gameState.GetAudioManager(); am != nil {
		am.StopMusic()
	}
	a.cancelWatch()
}
