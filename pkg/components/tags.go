package components

// PlayerComponent 玩家飞船标记
type PlayerComponent struct{}

// AsteroidComponent 陨石标记
type AsteroidComponent struct{}

// LazerComponent 激光子弹标记
type LazerComponent struct{}

// DestroyComponent 待销毁标记
// 碰撞检测阶段添加，DestroySystem 在帧末统一销毁
type DestroyComponent struct{}

// DespawnOnRestartComponent 重新开始时需要清理的实体
type DespawnOnRestartComponent struct{}

// DespawnOnExitComponent 退出到主菜单时需要清理的实体
type DespawnOnExitComponent struct{}
