package config

// 布局配置常量
// 世界坐标原点位于屏幕中心，X 向右、Y 向上为正
// 屏幕坐标原点位于左上角，X 向右、Y 向下为正
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 600

	// GameWindowHeight 逻辑屏幕高度（像素）
	// 需要覆盖陨石生成高度 550 到底部 -550 的整个区间
	GameWindowHeight = 1200

	// InitialWindowWidth 启动时的窗口宽度，Ebitengine 负责缩放
	InitialWindowWidth = 400

	// InitialWindowHeight 启动时的窗口高度
	InitialWindowHeight = 800

	// HUDMargin HUD 文本距屏幕边缘的距离
	HUDMargin = 5
)

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(x, y float64) (float64, float64) {
	return x + GameWindowWidth/2, GameWindowHeight/2 - y
}
