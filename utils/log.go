package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	if entry.Caller == nil {
		return []byte(fmt.Sprintf("%s [%s] %s\n", timestamp, level, entry.Message)), nil
	}
	fileName := filepath.Base(entry.Caller.File)
	funcName := entry.Caller.Function
	if i := strings.LastIndex(funcName, "."); i >= 0 {
		funcName = funcName[i+1:]
	}

	// 格式化日志
	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, entry.Caller.Line, funcName, entry.Message)
	return []byte(logMessage), nil
}

// Logger builds the pitaya logger. With an empty dir it writes to stderr,
// otherwise to a daily rotated file under dir.
func Logger(level logrus.Level, dir string) (interfaces.Logger, error) {
	l := logrus.New()
	var out io.Writer = os.Stderr
	if dir != "" {
		writer, err := getWriter(dir)
		if err != nil {
			return nil, err
		}
		out = writer
	}
	l.SetOutput(out)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

func getWriter(logPath string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(logPath, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer, err := newRotateLogs(logFile)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

func newRotateLogs(pattern string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}

// SafeRotateLogs 是一个包装器，确保文件存在
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

// Write recreates the rotator when the current file was removed underneath it.
func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	currentLogFile := s.RotateLogs.CurrentFileName()
	if _, err := os.Stat(currentLogFile); os.IsNotExist(err) {
		writer, err := newRotateLogs(s.logPattern)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}

// ParseLevel accepts logrus level names and falls back to info.
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
