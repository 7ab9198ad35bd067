package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/utils"
)

// 结算面板布局（屏幕坐标）
const (
	panelWidth   = 360
	panelHeight  = 320
	buttonWidth  = 200
	buttonHeight = 44
)

var (
	panelColor       = color.RGBA{R: 20, G: 20, B: 40, A: 230}
	buttonColor      = color.RGBA{R: 50, G: 50, B: 80, A: 255}
	buttonHoverColor = color.RGBA{R: 90, G: 90, B: 140, A: 255}
)

// Draw 绘制游戏画面：实体、HUD、结算面板
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)

	if s.session.IsGameOver() {
		s.drawGameOverPanel(screen)
	}
}

// drawHUD 左上角显示生命值和得分
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d", s.PlayerHealth()), config.HUDMargin, config.HUDMargin)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.session.Score), config.HUDMargin, config.HUDMargin+20)
}

// drawGameOverPanel 居中的结算面板，从屏幕上方滑入
func (s *GameScene) drawGameOverPanel(screen *ebiten.Image) {
	px := float32(config.GameWindowWidth-panelWidth) / 2
	py := float32(utils.Lerp(-panelHeight, float64(config.GameWindowHeight-panelHeight)/2, s.PanelProgress()))
	vector.DrawFilledRect(screen, px, py, panelWidth, panelHeight, panelColor, false)
	vector.StrokeRect(screen, px, py, panelWidth, panelHeight, 2, sliderFill, false)

	top := int(py)
	drawCenteredText(screen, "GAME OVER!", top+30)
	drawCenteredText(screen, fmt.Sprintf("Score: %d", s.session.Score), top+80)
	drawCenteredText(screen, fmt.Sprintf("Your record: %d", s.Record()), top+110)

	for i, option := range []PanelOption{PanelRestart, PanelExit} {
		bx := float32(config.GameWindowWidth-buttonWidth) / 2
		by := py + 160 + float32(i)*(buttonHeight+20)
		clr := buttonColor
		if option == s.panelSelection {
			clr = buttonHoverColor
		}
		vector.DrawFilledRect(screen, bx, by, buttonWidth, buttonHeight, clr, false)
		drawCenteredText(screen, option.Label(), int(by)+14)
	}
}
