package logger

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Init points hlog at the rotated file output and applies the
// configured level. Call after config.Init.
func Init() {
	hlog.SetOutput(newOutput())
	hlog.SetLevel(newLevel())
}
