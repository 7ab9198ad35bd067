package utils

// AABB 轴对齐包围盒，以中心点和半尺寸表示
// 坐标系为世界坐标（Y 轴向上）
type AABB struct {
	CenterX    float64
	CenterY    float64
	HalfWidth  float64
	HalfHeight float64
}

// NewAABB 根据中心点和完整宽高创建包围盒
func NewAABB(centerX, centerY, width, height float64) AABB {
	return AABB{
		CenterX:    centerX,
		CenterY:    centerY,
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
	}
}

// Min 返回左下角坐标
func (b AABB) Min() (float64, float64) {
	return b.CenterX - b.HalfWidth, b.CenterY - b.HalfHeight
}

// Max 返回右上角坐标
func (b AABB) Max() (float64, float64) {
	return b.CenterX + b.HalfWidth, b.CenterY + b.HalfHeight
}

// Circle 包围圆
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// IntersectsCircle 检查包围盒与圆是否相交
// 取包围盒上距圆心最近的点，判断其是否落在圆内（含边界）
func (b AABB) IntersectsCircle(c Circle) bool {
	minX, minY := b.Min()
	maxX, maxY := b.Max()

	closestX := Clamp(c.CenterX, minX, maxX)
	closestY := Clamp(c.CenterY, minY, maxY)

	dx := c.CenterX - closestX
	dy := c.CenterY - closestY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
