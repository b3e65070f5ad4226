package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	Level      string
	FormatJSON bool
	FileName   string // empty means stdout only
	ToStdout   bool
}

// Setup configures the global logrus logger.
func Setup(params Params) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.Level))
	logrus.SetOutput(Output(params))
}

// Output builds the writer logs go to: stdout, a rotated file, or both.
func Output(params Params) io.Writer {
	if params.FileName == "" {
		return os.Stdout
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}
	fileLogger := &lumberjack.Logger{
		Filename:  params.FileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	if params.ToStdout {
		return io.MultiWriter(os.Stdout, fileLogger)
	}
	return fileLogger
}

// GetLevel maps a level name to a logrus level, defaulting to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
