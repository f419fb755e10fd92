package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of zap.SugaredLogger used across imresize
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infof(template string, args ...any)
	Errorf(template string, args ...any)
}

// TimeLayout is the timestamp format of every log line
const TimeLayout = "2006-01-02 15:04:05"

// Default 默认实例
var Default Logger

func init() {
	Default = NewConsole(os.Stderr, false).Sugar()
}

func Set(logger Logger) {
	if logger != nil {
		Default = logger
	}
}

func Get() Logger {
	return Default
}

// NewConsole builds a human-readable logger writing lines like
// "2024-05-01 10:00:00 - INFO - Resized a.jpg" to w.
func NewConsole(w io.Writer, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	ec := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level)
	return zap.New(core)
}
