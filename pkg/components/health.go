package components

// HealthComponent 存储实体的生命值信息
// 目前只有玩家飞船拥有生命值
type HealthComponent struct {
	CurrentHealth int // 当前生命值，不会低于 0
	MaxHealth     int // 最大生命值（重开时恢复到该值）
}

// DamageComponent 本帧待结算的伤害
// 由 DamageSystem 添加，HealthSystem 结算后移除
type DamageComponent struct {
	Amount int
}

// DeadComponent 死亡标记
// 生命值降为 0 时添加，每个实体只会添加一次
type DeadComponent struct{}
