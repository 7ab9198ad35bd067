package game

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPlayer 音效触发接口
// 游戏系统只依赖该接口，便于测试和无声前端（终端模式）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取设置，0~100 映射为 0.0~1.0）
//
// 音频数据由 SynthesizeSoundBank 合成，不依赖素材文件
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundBank       map[string][]byte        // 资源ID -> PCM
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	currentMusic    *audio.Player            // 当前播放的背景音乐
	currentMusicID  string                   // 当前播放的背景音乐ID
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率需为 AudioSampleRate）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - bank: 音频资源，通常为 SynthesizeSoundBank() 的结果
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, bank map[string][]byte) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundBank:       bank,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	volume := am.getSoundVolume()
	if volume <= 0 {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Warnf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐
// 同一时间只能播放一首背景音乐，重复调用同一首不会重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	pcm, ok := am.soundBank[musicID]
	if !ok {
		log.Warnf("[AudioManager] Unknown music: %s", musicID)
		return false
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := am.audioContext.NewPlayer(loop)
	if err != nil {
		log.Errorf("[AudioManager] Failed to create music player %s: %v", musicID, err)
		return false
	}

	player.SetVolume(am.getMusicVolume())
	player.Play()
	am.currentMusic = player
	am.currentMusicID = musicID
	log.Debugf("[AudioManager] Playing music: %s", musicID)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic == nil {
		return
	}
	am.currentMusic.Pause()
	if err := am.currentMusic.Close(); err != nil {
		log.Warnf("[AudioManager] Failed to close music player: %v", err)
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// ApplyVolume 将当前设置的音乐音量应用到正在播放的音乐
// 在主菜单调整滑条后调用
func (am *AudioManager) ApplyVolume() {
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.getMusicVolume())
	}
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	pcm, ok := am.soundBank[soundID]
	if !ok {
		log.Warnf("[AudioManager] Unknown sound: %s", soundID)
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return VolumeToLinear(am.settingsManager.GetSettings().SoundVolume)
}

func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager == nil {
		return 1.0
	}
	return VolumeToLinear(am.settingsManager.GetSettings().MusicVolume)
}

// VolumeToLinear 将 0~100 的音量设置转换为播放器使用的 0.0~1.0
func VolumeToLinear(volume float64) float64 {
	return clampVolume(volume) / MaxVolume
}
