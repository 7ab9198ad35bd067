package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/lazerfall/pkg/app"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件（.yaml/.yml/.toml）")
	watch      = flag.Bool("watch", false, "配置文件变化时热重载")
	mute       = flag.Bool("mute", false, "禁用音频")
)

func main() {
	flag.Parse()
	game.InitLogger(os.Stderr, *verbose)

	application, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		Watch:      *watch,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("[Main] 初始化失败: %v", err)
	}
	defer application.Close()

	ebiten.SetWindowSize(config.InitialWindowWidth, config.InitialWindowHeight)
	ebiten.SetWindowTitle("Lazerfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if game.GetGameState().GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 窗口关闭或主菜单 Quit 时 RunGame 返回
	if err := ebiten.RunGame(application); err != nil {
		log.Errorf("[Main] %v", err)
	}
}
