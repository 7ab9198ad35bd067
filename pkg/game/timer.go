package game

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 单次计时：到时后保持完成状态，直到 Reset
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时：每次到时后自动从头开始
	TimerRepeating
)

// Timer 帧驱动计时器
// 由系统在每帧调用 Tick 推进，时间单位为秒
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished     bool
	justFinished bool
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{
		Duration: duration,
		Mode:     mode,
	}
}

// Tick 推进计时器
//
// 参数：
//   - deltaTime: 自上一帧以来经过的时间（秒）
//
// 返回：
//   - *Timer: 计时器本身，便于链式调用 t.Tick(dt).JustFinished()
func (t *Timer) Tick(deltaTime float64) *Timer {
	t.justFinished = false

	if t.Mode == TimerOnce && t.finished {
		return t
	}

	t.Elapsed += deltaTime
	if t.Elapsed < t.Duration {
		return t
	}

	t.justFinished = true
	switch t.Mode {
	case TimerRepeating:
		// 循环计时：保留不足一个周期的余量，一帧内多出的周期直接丢弃，JustFinished 只报告一次
		if t.Duration > 0 {
			for t.Elapsed >= t.Duration {
				t.Elapsed -= t.Duration
			}
		} else {
			t.Elapsed = 0
		}
	default:
		t.Elapsed = t.Duration
		t.finished = true
	}
	return t
}

// JustFinished 本次 Tick 是否刚好到时
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished 计时器是否处于完成状态
// 单次计时器到时后一直为 true；循环计时器只在到时那一帧为 true
func (t *Timer) Finished() bool {
	if t.Mode == TimerRepeating {
		return t.justFinished
	}
	return t.finished
}

// Reset 将计时器恢复到初始状态
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
}

// SetDuration 修改时长（配置热重载时使用），不重置已过时间
func (t *Timer) SetDuration(duration float64) {
	t.Duration = duration
	if t.Mode == TimerOnce && t.Elapsed >= duration {
		t.Elapsed = duration
		t.finished = true
	}
}
