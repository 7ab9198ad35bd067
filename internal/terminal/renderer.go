// Package terminal 提供基于 tcell 的终端前端
//
// 终端前端复用与窗口版本相同的场景和系统管线，只替换输入、渲染和音效输出：
//   - KeyInput: 将按键事件转换为游戏动作（模拟按住）
//   - Renderer: 将世界坐标缩放到字符网格，绘制实体、HUD、菜单和结算面板
//   - SpeakerSound: 通过 beep 扬声器播放合成音效
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
	"github.com/gonewx/lazerfall/pkg/scenes"
)

// 实体字符
const (
	RunePlayer   = 'A'
	RuneAsteroid = 'O'
	RuneLazer    = '|'
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 255)).Bold(true)
	stylePanel    = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 40))
)

// renderOrder 后绘制的覆盖先绘制的
var renderOrder = []components.SpriteKind{
	components.SpriteAsteroid,
	components.SpriteLazer,
	components.SpritePlayer,
}

// Renderer 终端渲染器
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// WorldToCell 将世界坐标转换为字符网格坐标
//
// 整个逻辑屏幕（GameWindowWidth x GameWindowHeight）缩放到 width x height 个字符
func WorldToCell(x, y float64, width, height int) (int, int) {
	sx, sy := config.WorldToScreen(x, y)
	cx := int(math.Floor(sx / config.GameWindowWidth * float64(width)))
	cy := int(math.Floor(sy / config.GameWindowHeight * float64(height)))
	return cx, cy
}

// Draw 绘制当前场景
func (r *Renderer) Draw(scene game.Scene) {
	r.screen.Clear()

	switch s := scene.(type) {
	case *scenes.MainMenuScene:
		r.drawMainMenu(s)
	case *scenes.GameScene:
		r.drawGame(s)
	}

	r.screen.Show()
}

func (r *Renderer) drawMainMenu(s *scenes.MainMenuScene) {
	_, h := r.screen.Size()
	top := h / 4

	r.drawCentered(top, "L A Z E R F A L L", styleTitle)
	r.drawCentered(top+2, fmt.Sprintf("Record: %d", s.Record()), styleText)

	for i, item := range s.Items() {
		label := item.Label()
		if volume := s.Volume(item); volume >= 0 {
			label = fmt.Sprintf("%s: %s %3.0f", label, volumeBar(volume), volume)
		}

		style := styleText
		if item == s.Selected() {
			style = styleSelected
			label = "> " + label + " <"
		}
		r.drawCentered(top+5+i*2, label, style)
	}

	r.drawCentered(h-2, "W/S select  A/D adjust  Enter confirm", styleDim)
}

// volumeBar 10 格音量条
func volumeBar(volume float64) string {
	filled := int(volume / game.MaxVolume * 10)
	bar := make([]rune, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return "[" + string(bar) + "]"
}

func (r *Renderer) drawGame(s *scenes.GameScene) {
	r.drawEntities(s.EntityManager())

	r.drawText(0, 0, fmt.Sprintf("Health: %d", s.PlayerHealth()), styleText)
	r.drawText(0, 1, fmt.Sprintf("Score: %d", s.Session().Score), styleText)

	if s.Session().IsGameOver() {
		r.drawGameOverPanel(s)
	}
}

func (r *Renderer) drawEntities(em *ecs.EntityManager) {
	w, h := r.screen.Size()
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](em)

	for _, kind := range renderOrder {
		for _, id := range ids {
			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
			if sprite.Kind != kind {
				continue
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			style := tcell.StyleDefault.Foreground(tintColor(sprite.Tint))

			// 至少绘制中心所在的格子，缩放后再小的实体也可见
			x0, y0 := WorldToCell(pos.X-sprite.Width/2, pos.Y+sprite.Height/2, w, h)
			x1, y1 := WorldToCell(pos.X+sprite.Width/2, pos.Y-sprite.Height/2, w, h)
			cx, cy := WorldToCell(pos.X, pos.Y, w, h)
			r.setCell(cx, cy, spriteRune(kind), style)

			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					r.setCell(x, y, spriteRune(kind), style)
				}
			}
		}
	}
}

func spriteRune(kind components.SpriteKind) rune {
	switch kind {
	case components.SpriteAsteroid:
		return RuneAsteroid
	case components.SpriteLazer:
		return RuneLazer
	default:
		return RunePlayer
	}
}

func tintColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) drawGameOverPanel(s *scenes.GameScene) {
	w, h := r.screen.Size()
	lines := []string{
		"GAME OVER!",
		"",
		fmt.Sprintf("Score: %d", s.Session().Score),
		fmt.Sprintf("Your record: %d", s.Record()),
		"",
	}

	panelWidth := 24
	panelHeight := len(lines) + 5
	px := (w - panelWidth) / 2
	py := (h - panelHeight) / 2
	for y := py; y < py+panelHeight; y++ {
		for x := px; x < px+panelWidth; x++ {
			r.setCell(x, y, ' ', stylePanel)
		}
	}

	for i, line := range lines {
		r.drawCentered(py+1+i, line, stylePanel)
	}
	for i, option := range []scenes.PanelOption{scenes.PanelRestart, scenes.PanelExit} {
		label := option.Label()
		style := stylePanel
		if option == s.PanelSelection() {
			label = "> " + label + " <"
			style = styleSelected
		}
		r.drawCentered(py+1+len(lines)+i*2, label, style)
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(text)))/2, y, text, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.setCell(x+i, y, ch, style)
	}
}

func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
