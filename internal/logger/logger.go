package logger

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

// Setup initializes logrus with file rotation. In dev mode output also goes
// to stdout so logs are visible while running locally.
func Setup(dev bool) {
	rotator := &lumberjack.Logger{
		Filename:   "./logs/app.log",
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   true,
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if dev {
		logrus.SetOutput(os.Stdout)
		logrus.AddHook(&fileHook{rotator: rotator})
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetOutput(rotator)
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// L returns the standard logger for injection into services.
func L() *logrus.Logger {
	return logrus.StandardLogger()
}

// fileHook duplicates entries to the rotating file when the primary output
// is stdout.
type fileHook struct {
	rotator *lumberjack.Logger
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	_, err = h.rotator.Write(line)
	return err
}
