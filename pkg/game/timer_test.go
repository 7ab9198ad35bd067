package game

import "testing"

// TestTimerOnce 单次计时器到时后保持完成，直到 Reset
func TestTimerOnce(t *testing.T) {
	timer := NewTimer(0.5, TimerOnce)

	if timer.Tick(0.25).Finished() {
		t.Fatal("0.25s 时不应完成")
	}
	if !timer.Tick(0.25).JustFinished() {
		t.Fatal("0.5s 时应刚好完成")
	}
	if timer.Elapsed != 0.5 {
		t.Errorf("Elapsed: got %v, want 0.5", timer.Elapsed)
	}

	timer.Tick(1.0)
	if !timer.Finished() {
		t.Error("完成状态应保持")
	}
	if timer.JustFinished() {
		t.Error("JustFinished 只在到时那一帧为 true")
	}
	if timer.Elapsed != 0.5 {
		t.Errorf("Elapsed 应停在 Duration, got %v", timer.Elapsed)
	}

	timer.Reset()
	if timer.Finished() || timer.Elapsed != 0 {
		t.Errorf("Reset 后应回到初始状态: finished=%v elapsed=%v", timer.Finished(), timer.Elapsed)
	}
}

// TestTimerRepeating 循环计时器每个周期触发一次并保留余量
func TestTimerRepeating(t *testing.T) {
	tests := []struct {
		name        string
		ticks       []float64
		wantFires   int
		wantElapsed float64
	}{
		{"未到时", []float64{0.5, 0.5}, 0, 1.0},
		{"刚好到时", []float64{1.0, 1.0}, 1, 0},
		{"跨越后保留余量", []float64{1.5, 1.0}, 1, 0.5},
		{"多个周期", []float64{1.0, 1.0, 1.0, 1.0}, 2, 0},
		{"一帧跨越多个周期只触发一次", []float64{5.0}, 1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(2.0, TimerRepeating)
			fires := 0
			for _, dt := range tt.ticks {
				if timer.Tick(dt).JustFinished() {
					fires++
				}
			}
			if fires != tt.wantFires {
				t.Errorf("fires: got %d, want %d", fires, tt.wantFires)
			}
			if timer.Elapsed != tt.wantElapsed {
				t.Errorf("Elapsed: got %v, want %v", timer.Elapsed, tt.wantElapsed)
			}
		})
	}
}

// TestTimerRepeatingFinished 循环计时器的 Finished 只在到时那一帧为 true
func TestTimerRepeatingFinished(t *testing.T) {
	timer := NewTimer(1.0, TimerRepeating)
	if !timer.Tick(1.0).Finished() {
		t.Error("到时那一帧 Finished 应为 true")
	}
	if timer.Tick(0.25).Finished() {
		t.Error("下一帧 Finished 应为 false")
	}
}

// TestTimerSetDuration 缩短单次计时器时长可立即完成
func TestTimerSetDuration(t *testing.T) {
	timer := NewTimer(1.0, TimerOnce)
	timer.Tick(0.5)

	timer.SetDuration(2.0)
	if timer.Finished() {
		t.Error("延长时长后不应完成")
	}

	timer.SetDuration(0.25)
	if !timer.Finished() {
		t.Error("缩短到已过时间以下应立即完成")
	}
}
