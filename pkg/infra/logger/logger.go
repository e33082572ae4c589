package logger

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logsDir = "logs"

// NewLogger builds the process logger for the given server type. Entries are
// written as JSON to logs/<serverType>.log and echoed to stdout.
func NewLogger(serverType string) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	logger.SetLevel(levelFromEnv(os.Getenv("LOG_LEVEL")))

	logFile := filepath.Clean(filepath.Join(logsDir, fileNameFor(serverType)))
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		log.Fatalf("Invalid log file path: must be in logs directory")
	}
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	}
	logger.SetOutput(NewAsyncWriter(rotating, 32*1024))
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger
}

func levelFromEnv(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func fileNameFor(serverType string) string {
	switch serverType {
	case "admin", "worker":
		return serverType + ".log"
	default:
		return "proxy.log"
	}
}
