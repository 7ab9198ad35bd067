package terminal

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lazerfall/pkg/game"
)

// Frontend 终端游戏循环
//
// 事件在单独的 goroutine 中读取，游戏逻辑和绘制在主循环的定时器中执行，
// 与窗口版本一样使用固定的 1/60 秒步长。
type Frontend struct {
	screen   tcell.Screen
	scenes   *game.SceneManager
	input    *KeyInput
	renderer *Renderer
}

// NewFrontend 创建终端前端
//
// 参数：
//   - screen: 已 Init 的 tcell 屏幕
//   - sm: 场景管理器，需已切换到初始场景
//   - input: 场景使用的同一个 KeyInput
func NewFrontend(screen tcell.Screen, sm *game.SceneManager, input *KeyInput) *Frontend {
	return &Frontend{
		screen:   screen,
		scenes:   sm,
		input:    input,
		renderer: NewRenderer(screen),
	}
}

// HandleEvent 处理一个 tcell 事件
// Ctrl+C 请求退出
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			f.scenes.RequestQuit()
			return
		}
		f.input.HandleEvent(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

// Step 执行一帧：更新场景、绘制、推进输入
//
// 返回：
//   - bool: false 表示已请求退出
func (f *Frontend) Step(deltaTime float64) bool {
	if f.scenes.IsQuitRequested() {
		return false
	}
	f.scenes.Update(deltaTime)
	f.renderer.Draw(f.scenes.GetCurrentScene())
	f.input.Advance(deltaTime)
	return !f.scenes.IsQuitRequested()
}

// Run 运行游戏循环，直到退出或 ctx 取消
// 返回前关闭当前场景，调用方负责 screen.Fini()
func (f *Frontend) Run(ctx context.Context) error {
	const deltaTime = 1.0 / 60.0

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	defer f.scenes.Shutdown()

	// 返回时取消，让阻塞在发送上的读取 goroutine 退出
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			f.HandleEvent(ev)

		case <-ticker.C:
			if !f.Step(deltaTime) {
				log.Infof("[Terminal] 退出游戏")
				return nil
			}
		}
	}
}
