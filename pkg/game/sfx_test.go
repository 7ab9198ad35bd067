package game

import (
	"math"
	"testing"
	"time"
)

// TestSynthesizeSoundBank 合成的音频资源齐全且为完整的立体声帧
func TestSynthesizeSoundBank(t *testing.T) {
	bank := SynthesizeSoundBank()

	for _, id := range []string{SoundLazer, SoundDamage, MusicMain} {
		pcm, ok := bank[id]
		if !ok {
			t.Errorf("缺少音频资源 %s", id)
			continue
		}
		if len(pcm) == 0 {
			t.Errorf("%s: PCM 为空", id)
		}
		if len(pcm)%4 != 0 {
			t.Errorf("%s: PCM 长度 %d 不是 16 位立体声帧的整数倍", id, len(pcm))
		}
	}
}

// TestRenderPCMLength 渲染长度与振荡器时长一致
func TestRenderPCMLength(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
	}{
		{"短音", 10 * time.Millisecond},
		{"跨多个缓冲区", 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := renderPCM(newSweep(440, 440, tt.duration, waveSine))
			wantFrames := sampleRate.N(tt.duration)
			if got := len(pcm) / 4; got != wantFrames {
				t.Errorf("frames: got %d, want %d", got, wantFrames)
			}
		})
	}
}

// TestSweepDecays 包络线性衰减，首个采样为静音起点
func TestSweepDecays(t *testing.T) {
	s := newSweep(0, 0, 10*time.Millisecond, waveSquare)
	buf := make([][2]float64, sampleRate.N(10*time.Millisecond))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Stream: got %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 1.0 {
		t.Errorf("首个方波采样: got %v, want 1.0", buf[0][0])
	}
	if last := buf[n-1][0]; last <= 0 || last >= buf[0][0] {
		t.Errorf("末尾采样应衰减: got %v", last)
	}

	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("播放完后应返回 (0, false), got (%d, %v)", n, ok)
	}
}

// TestSoundStream 未知资源返回 nil，静音时输出全为 0
func TestSoundStream(t *testing.T) {
	if SoundStream("SOUND_UNKNOWN", 1) != nil {
		t.Error("未知资源应返回 nil")
	}

	s := SoundStream(SoundLazer, 0)
	if s == nil {
		t.Fatal("SoundLazer 不应返回 nil")
	}
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	if n == 0 {
		t.Fatal("应输出采样")
	}
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("音量为 0 时采样 %d 应为 0, got %v", i, buf[i])
		}
	}
}

// TestNewVolume 线性比例经对数音量还原，0 及以下静音
func TestNewVolume(t *testing.T) {
	tests := []struct {
		name  string
		vol   float64
		ratio float64
	}{
		{"一半", 0.5, 0.5},
		{"四分之一", 0.25, 0.25},
		{"静音", 0, 0},
		{"负数静音", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([][2]float64, 128)
			scaled := make([][2]float64, 128)
			n, _ := newSweep(440, 440, 10*time.Millisecond, waveSine).Stream(raw)
			m, _ := newVolume(newSweep(440, 440, 10*time.Millisecond, waveSine), tt.vol).Stream(scaled)
			if n != m {
				t.Fatalf("采样数不一致: %d vs %d", n, m)
			}
			for i := 0; i < n; i++ {
				want := raw[i][0] * tt.ratio
				if math.Abs(scaled[i][0]-want) > 1e-9 {
					t.Fatalf("采样 %d: got %v, want %v", i, scaled[i][0], want)
				}
			}
		})
	}
}
