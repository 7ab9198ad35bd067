// verify_gameplay 无窗口运行游戏管线，用于验证玩法数值
//
// 使用方法：
//
//	go run ./cmd/verify_gameplay [-config data/gameplay.yaml] [-runs 3] [-seconds 120] [-seed 42] [-idle] [-verbose]
//
// 自动驾驶会追踪最低的陨石并射击；-idle 时飞船不移动，用于验证漏过陨石的伤害结算。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/gonewx/lazerfall/pkg/app"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
	"github.com/gonewx/lazerfall/pkg/systems"
)

const deltaTime = 1.0 / 60.0

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "玩法配置文件（.yaml/.yml/.toml）")
	runs       = flag.Int("runs", 3, "连续进行的局数（每局结束后自动重开）")
	seconds    = flag.Float64("seconds", 300, "每局最长模拟时间（秒）")
	seed       = flag.Int64("seed", 42, "陨石生成随机种子")
	tolerance  = flag.Float64("tolerance", 10, "自动驾驶对准容差（像素）")
	idle       = flag.Bool("idle", false, "飞船不移动")
	persist    = flag.Bool("persist", false, "将最高分写入本地存档")
)

// runResult 一局的统计
type runResult struct {
	sessionID string
	score     int
	frames    int
	gameOver  bool
}

func main() {
	flag.Parse()
	game.InitLogger(os.Stderr, *verbose)

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[VerifyGameplay] %v", err)
	}

	records := game.NewRecordManager(nil)
	if *persist {
		records = game.GetGameState().GetRecordManager()
	}

	em := ecs.NewEntityManager()
	session := game.NewGameSession(cfg)
	pilot := newAutopilot(em, *tolerance, *idle)
	sounds := soundCounter{}

	pipeline, err := systems.NewPipeline(systems.PipelineOptions{
		EntityManager: em,
		Config:        cfg,
		Session:       session,
		Records:       records,
		Input:         pilot,
		Sound:         sounds,
		Rand:          rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		log.Fatalf("[VerifyGameplay] %v", err)
	}
	if err := pipeline.Start(); err != nil {
		log.Fatalf("[VerifyGameplay] %v", err)
	}

	maxFrames := int(*seconds / deltaTime)
	results := make([]runResult, 0, *runs)

	for i := 0; i < *runs; i++ {
		if i > 0 {
			pipeline.RequestRestart()
			pipeline.Update(deltaTime)
		}

		result := runResult{sessionID: session.ID}
		for result.frames < maxFrames && !session.IsGameOver() {
			pilot.plan()
			pipeline.Update(deltaTime)
			result.frames++
		}
		result.score = session.Score
		result.gameOver = session.IsGameOver()
		results = append(results, result)
	}

	removed := pipeline.Shutdown()

	fmt.Printf("=== Lazerfall gameplay verification (seed %d) ===\n", *seed)
	for i, r := range results {
		status := "survived"
		if r.gameOver {
			status = "game over"
		}
		fmt.Printf("run %d  session %s  score %4d  time %6.1fs  %s\n",
			i+1, r.sessionID[:8], r.score, float64(r.frames)*deltaTime, status)
	}
	fmt.Printf("record: %d\n", records.Best())
	fmt.Printf("lazer shots: %d  damage sounds: %d\n", sounds[game.SoundLazer], sounds[game.SoundDamage])
	fmt.Printf("entities cleaned up on exit: %d\n", removed)
}
