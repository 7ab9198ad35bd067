package terminal

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/lazerfall/pkg/game"
)

// SpeakerSound 通过 beep 扬声器直接播放合成音效
// 终端前端没有 ebiten 音频上下文，使用它代替 AudioManager
type SpeakerSound struct {
	settings *game.SettingsManager // 可为 nil（满音量）
}

// NewSpeakerSound 初始化扬声器
//
// 返回：
//   - *SpeakerSound: 音效输出
//   - error: 音频设备不可用时返回错误（调用方可以无声运行）
func NewSpeakerSound(settings *game.SettingsManager) (*SpeakerSound, error) {
	sr := beep.SampleRate(game.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &SpeakerSound{settings: settings}, nil
}

// PlaySound 实现 game.SoundPlayer
func (s *SpeakerSound) PlaySound(soundID string) bool {
	volume := 1.0
	if s.settings != nil {
		volume = game.VolumeToLinear(s.settings.GetSettings().SoundVolume)
	}
	if volume <= 0 {
		return false
	}

	stream := game.SoundStream(soundID, volume)
	if stream == nil {
		return false
	}
	speaker.Play(stream)
	return true
}

// Close 关闭扬声器
func (s *SpeakerSound) Close() {
	speaker.Close()
}
