package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hand 123m",
	}
	f := &Formatter{}
	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 12:30:00 [warning] hand 123m\n", string(out))

	entry.Caller = &runtime.Frame{File: "/src/mahjong/hairi.go", Line: 42, Function: "github.com/x/mahjong.(*Analyzer).Hairi"}
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 12:30:00 [warning] hairi.go:42 Hairi hand 123m\n", string(out))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := Logger(logrus.InfoLevel, dir)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")

	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[info]")
	assert.Contains(t, string(data), "shown")
	assert.NotContains(t, string(data), "hidden")
}

func TestSafeRotateLogsRecreatesFile(t *testing.T) {
	dir := t.TempDir()
	w, err := NewSafeRotateLogs(dir)
	require.NoError(t, err)

	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)
	name := w.CurrentFileName()
	require.NoError(t, os.Remove(name))

	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)
	data, err := os.ReadFile(w.CurrentFileName())
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestToJSON(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"now": 0, "wait": []any{"1s", "4s"}})
	require.NoError(t, err)
	data, err := ToJSON(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"now": 0, "wait": ["1s", "4s"]}`, string(data))
	assert.Contains(t, string(data), "\n")
}
