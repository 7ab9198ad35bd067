package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/game"
)

// 主菜单布局（屏幕坐标）
const (
	menuTitleY      = 300
	menuFirstItemY  = 420
	menuItemSpacing = 60
	menuSliderWidth = 200
	menuCharWidth   = 6 // DebugPrint 字符宽度
)

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	sliderTrack     = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	sliderFill      = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	highlightColor  = color.RGBA{R: 255, G: 255, B: 255, A: 40}
)

// Draw 绘制主菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	drawCenteredText(screen, "L A Z E R F A L L", menuTitleY)
	drawCenteredText(screen, fmt.Sprintf("Record: %d", s.Record()), menuTitleY+40)

	for i, item := range s.Items() {
		y := menuFirstItemY + i*menuItemSpacing
		if item == s.Selected() {
			vector.DrawFilledRect(screen, 100, float32(y-10), config.GameWindowWidth-200, 40, highlightColor, false)
		}

		volume := s.Volume(item)
		if volume < 0 {
			drawCenteredText(screen, item.Label(), y)
			continue
		}

		drawCenteredText(screen, fmt.Sprintf("%s: %.0f", item.Label(), volume), y-4)
		drawSlider(screen, y+14, volume/game.MaxVolume)
	}

	drawCenteredText(screen, "W/S select  A/D adjust  Enter confirm", config.GameWindowHeight-60)
}

// drawSlider 绘制音量滑条（ratio 为 0~1）
func drawSlider(screen *ebiten.Image, y int, ratio float64) {
	x := float32(config.GameWindowWidth-menuSliderWidth) / 2
	vector.DrawFilledRect(screen, x, float32(y), menuSliderWidth, 6, sliderTrack, false)
	vector.DrawFilledRect(screen, x, float32(y), float32(menuSliderWidth*ratio), 6, sliderFill, false)
}

// drawCenteredText 水平居中绘制调试文字
func drawCenteredText(screen *ebiten.Image, text string, y int) {
	x := (config.GameWindowWidth - len(text)*menuCharWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
