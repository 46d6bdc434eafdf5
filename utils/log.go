package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	DefaultLogDir = "./logs"
	logMaxAge     = 7 * 24 * time.Hour
	logRotation   = 24 * time.Hour
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
	return []byte(fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, entry.Caller.Line, funcName, entry.Message)), nil
}

// ParseLevel 配置中的级别名, 空串为info
func ParseLevel(name string) (logrus.Level, error) {
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

// Logger 输出到 dir 下按天轮转的文件, dir 为空时使用 ./logs
func Logger(level logrus.Level, dir string) (interfaces.Logger, error) {
	writer, err := NewSafeRotateLogs(dir)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// InitLogger 替换 pitaya 全局 logger.Log
func InitLogger(level logrus.Level, dir string) error {
	l, err := Logger(level, dir)
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

// SafeRotateLogs 文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func NewSafeRotateLogs(dir string) (*SafeRotateLogs, error) {
	if dir == "" {
		dir = DefaultLogDir
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	programName := filepath.Base(os.Args[0])
	s := &SafeRotateLogs{
		logPattern: filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName)),
		maxAge:     logMaxAge,
		rotation:   logRotation,
	}
	if err := s.reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SafeRotateLogs) reopen() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(s.maxAge),
		rotatelogs.WithRotationTime(s.rotation),
	)
	if err != nil {
		return fmt.Errorf("create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			if err := s.reopen(); err != nil {
				return 0, err
			}
		}
	}
	return s.RotateLogs.Write(p)
}
