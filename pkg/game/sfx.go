package game

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// 音频资源ID
const (
	SoundLazer  = "SOUND_LAZER"  // 激光发射
	SoundDamage = "SOUND_DAMAGE" // 玩家受伤 / 陨石漏过
	MusicMain   = "MUSIC_MAIN"   // 背景音乐（循环）
)

// AudioSampleRate 音频采样率，与 ebiten 音频上下文保持一致
const AudioSampleRate = 48000

var sampleRate = beep.SampleRate(AudioSampleRate)

// waveType 振荡器波形
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// sweepOscillator 频率从 freqStart 线性滑到 freqEnd 的振荡器
type sweepOscillator struct {
	freqStart float64
	freqEnd   float64
	phase     float64
	duration  int
	position  int
	wave      waveType
	rng       *rand.Rand
}

func newSweep(freqStart, freqEnd float64, d time.Duration, wave waveType) beep.Streamer {
	return &sweepOscillator{
		freqStart: freqStart,
		freqEnd:   freqEnd,
		duration:  sampleRate.N(d),
		wave:      wave,
		rng:       rand.New(rand.NewSource(1)), // 固定种子，保证音效每次一致
	}
}

func (o *sweepOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		// 线性衰减包络，避免结尾爆音
		vol := 1.0 - float64(o.position)/float64(o.duration)
		samples[i][0] = val * vol
		samples[i][1] = val * vol

		progress := float64(o.position) / float64(o.duration)
		freq := o.freqStart + (o.freqEnd-o.freqStart)*progress
		o.phase += freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

// newVolume 按线性比例缩放音量
// effects.Volume 以 2 为底取对数，比例 <= 0 时直接静音（Log2(0) 为 -Inf）
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// synthLazer 短促下滑的方波
func synthLazer() beep.Streamer {
	return newVolume(newSweep(1400, 350, 150*time.Millisecond, waveSquare), 0.25)
}

// synthDamage 噪声爆裂 + 低频下沉
func synthDamage() beep.Streamer {
	return beep.Seq(
		newVolume(newSweep(0, 0, 120*time.Millisecond, waveNoise), 0.4),
		newVolume(newSweep(180, 60, 180*time.Millisecond, waveSine), 0.5),
	)
}

// synthMusic 简单的小调琶音，作为循环背景音乐
func synthMusic() beep.Streamer {
	// A 小调: A3 C4 E4 A4 G4 E4 C4 E4
	notes := []float64{220.00, 261.63, 329.63, 440.00, 392.00, 329.63, 261.63, 329.63}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		streamers = append(streamers, newVolume(newSweep(f, f, 250*time.Millisecond, waveSine), 0.15))
	}
	return beep.Seq(streamers...)
}

// renderPCM 将 beep 流渲染为 16 位小端立体声 PCM（ebiten 音频格式）
func renderPCM(s beep.Streamer) []byte {
	var pcm []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := math.Max(-1, math.Min(1, buf[i][ch]))
				binary.LittleEndian.PutUint16(frame[ch*2:], uint16(int16(v*math.MaxInt16)))
			}
			pcm = append(pcm, frame...)
		}
		if !ok {
			return pcm
		}
	}
}

// SoundStream 返回指定音频资源的合成流
//
// 参数：
//   - soundID: 资源ID（SoundLazer / SoundDamage / MusicMain）
//   - volume: 线性音量 0.0~1.0
//
// 返回：
//   - beep.Streamer: 未知资源返回 nil
func SoundStream(soundID string, volume float64) beep.Streamer {
	var s beep.Streamer
	switch soundID {
	case SoundLazer:
		s = synthLazer()
	case SoundDamage:
		s = synthDamage()
	case MusicMain:
		s = synthMusic()
	default:
		return nil
	}
	return newVolume(s, math.Min(1, volume))
}

// SynthesizeSoundBank 生成全部音频资源的 PCM 数据
//
// 返回：
//   - map[string][]byte: 资源ID -> PCM 数据
func SynthesizeSoundBank() map[string][]byte {
	return map[string][]byte{
		SoundLazer:  renderPCM(synthLazer()),
		SoundDamage: renderPCM(synthDamage()),
		MusicMain:   renderPCM(synthMusic()),
	}
}
