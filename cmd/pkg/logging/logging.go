package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// writerHook дублирует записи лога в несколько writer'ов (stdout + файл).
type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		_, _ = w.Write([]byte(line))
	}
	return nil
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

var e *logrus.Entry

// Logger - обёртка над logrus.Entry, чтобы сервисы не зависели от logrus напрямую.
type Logger struct {
	*logrus.Entry
}

// GetLogger возвращает общий логгер приложения.
func GetLogger() *Logger {
	return &Logger{e}
}

// GetLoggerWithField возвращает логгер с дополнительным полем.
func (l *Logger) GetLoggerWithField(k string, v interface{}) *Logger {
	return &Logger{l.WithField(k, v)}
}

// NewNopLogger возвращает логгер, который ничего не пишет. Используется в тестах.
func NewNopLogger() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{logrus.NewEntry(l)}
}

func init() {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			filename := path.Base(frame.File)
			return fmt.Sprintf("%s()", frame.Function), fmt.Sprintf("%s:%d", filename, frame.Line)
		},
		DisableColors: false,
		FullTimestamp: true,
	}

	l.SetOutput(io.Discard)
	writers := []io.Writer{os.Stdout}

	// LOG_FILE=logs/all.log включает запись в файл помимо stdout
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		if err := os.MkdirAll(path.Dir(logFile), 0o755); err == nil {
			if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640); err == nil {
				writers = append(writers, f)
			}
		}
	}

	l.AddHook(&writerHook{
		Writer:    writers,
		LogLevels: logrus.AllLevels,
	})

	level := logrus.TraceLevel
	if lvl, err := logrus.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); err == nil {
		level = lvl
	}
	l.SetLevel(level)

	e = logrus.NewEntry(l)
}
