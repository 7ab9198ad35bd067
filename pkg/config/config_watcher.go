package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher 监听玩法配置文件变化并热重载
//
// 监听的是配置文件所在目录而不是文件本身：
// 很多编辑器保存时会先写临时文件再重命名，直接监听文件会丢失后续事件。
//
// 重载成功的配置通过 Updates() 通道发送，由游戏循环在帧间读取并应用；
// 解析失败时保留旧配置并记录警告。
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *GameplayConfig
}

// NewConfigWatcher 创建配置监听器
//
// 参数：
//   - path: 要监听的配置文件路径
//
// 返回：
//   - *ConfigWatcher: 监听器实例，需调用 Run 启动
//   - error: 创建 fsnotify 监听器或添加目录失败时返回错误
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return &ConfigWatcher{
		path:    absPath,
		watcher: w,
		// 只保留最新一次配置，游戏循环来不及读取时旧的会被丢弃
		updates: make(chan *GameplayConfig, 1),
	}, nil
}

// Updates 返回重载后的配置通道
func (cw *ConfigWatcher) Updates() <-chan *GameplayConfig {
	return cw.updates
}

// Run 处理文件事件，直到 ctx 取消
// 返回时关闭底层监听器
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cw.reload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("[ConfigWatcher] watcher error: %v", err)
		}
	}
}

// reload 重新读取配置文件并推送到通道
func (cw *ConfigWatcher) reload() {
	cfg, err := LoadGameplayConfig(cw.path)
	if err != nil {
		log.Warnf("[ConfigWatcher] 配置重载失败，保留当前配置: %v", err)
		return
	}

	// 丢弃尚未被消费的旧配置
	select {
	case <-cw.updates:
	default:
	}
	cw.updates <- cfg
	log.Infof("[ConfigWatcher] 配置已重载: %s", cw.path)
}
