package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标原点位于屏幕中心，Y 轴向上为正
type PositionComponent struct {
	X float64
	Y float64
}

// DirectionComponent 存储实体的移动方向
// 分量取值通常为 -1、0、1，实际位移 = 方向 × 速度 × 时间
type DirectionComponent struct {
	X float64
	Y float64
}

// SpeedComponent 存储实体的移动速度（像素/秒）
type SpeedComponent struct {
	Value float64
}
