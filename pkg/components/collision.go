package components

// Box 轴对齐碰撞盒（中心对齐实体位置）
type Box struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量（像素）
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量（像素），正值向上偏移
}

// BoxColliderComponent 由一个或多个轴对齐碰撞盒组成的碰撞体
// 玩家飞船使用两个盒子：机身 + 机翼；激光使用一个盒子
// 任意一个盒子与对方相交即视为碰撞
type BoxColliderComponent struct {
	Boxes []Box
}

// CircleColliderComponent 圆形碰撞体（圆心为实体位置）
// 用于陨石
type CircleColliderComponent struct {
	Radius float64
}
