// termplay 在终端中运行 Lazerfall
//
// 使用方法：
//
//	go run ./cmd/termplay [-config data/gameplay.yaml] [-watch] [-log termplay.log] [-verbose]
//
// 操作：A/D 或方向键移动，空格射击，W/S 选择，回车确认，Esc 返回，Ctrl+C 退出
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lazerfall/internal/terminal"
	"github.com/gonewx/lazerfall/pkg/app"
	"github.com/gonewx/lazerfall/pkg/game"
	"github.com/gonewx/lazerfall/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件（.yaml/.yml/.toml）")
	watch      = flag.Bool("watch", false, "配置文件变化时热重载")
	logPath    = flag.String("log", "", "日志文件（终端被游戏占用，默认不输出日志）")
	mute       = flag.Bool("mute", false, "禁用音效")
	seed       = flag.Int64("seed", 0, "陨石生成随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	var logOutput io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOutput = f
	}
	game.InitLogger(logOutput, *verbose)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termplay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	var ctx scenes.Context
	ctx.Config = cfg
	if *watch {
		updates, cancel, err := app.StartWatcher(*configPath)
		if err != nil {
			return fmt.Errorf("配置热重载启动失败: %w", err)
		}
		defer cancel()
		ctx.ConfigUpdates = updates
	}

	gameState := game.GetGameState()
	if !*mute {
		sound, err := terminal.NewSpeakerSound(gameState.GetSettingsManager())
		if err != nil {
			log.Warnf("[Termplay] 音频不可用，无声运行: %v", err)
		} else {
			defer sound.Close()
			gameState.SetSoundPlayer(sound)
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Infof("[Termplay] 随机种子: %d", s)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	input := terminal.NewKeyInput()
	ctx.SceneManager = game.NewSceneManager()
	ctx.GameState = gameState
	ctx.Input = input
	ctx.Rand = rand.New(rand.NewSource(s))
	ctx.SceneManager.SwitchTo(scenes.NewMainMenuScene(&ctx))

	return terminal.NewFrontend(screen, ctx.SceneManager, input).Run(context.Background())
}
