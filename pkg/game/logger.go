package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// InitLogger 配置全局日志
//
// 参数：
//   - w: 日志输出目标
//   - verbose: 为 true 时输出 Debug 级别日志，否则只输出警告和错误
func InitLogger(w io.Writer, verbose bool) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "lazerfall",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	log.SetDefault(logger)
}
