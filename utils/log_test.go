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
)

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hello",
	}
	f := &Formatter{}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 12:30:00 [warning] hello\n", string(out))

	entry.Caller = &runtime.Frame{File: "/src/hand/find_waits.go", Line: 42, Function: "github.com/x/hand.FindWaits"}
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 12:30:00 [warning] find_waits.go:42 FindWaits hello\n", string(out))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("loud"))
}

func TestLoggerToDir(t *testing.T) {
	dir := t.TempDir()
	l, err := Logger(logrus.InfoLevel, dir)
	require.NoError(t, err)
	l.Infof("written %d", 1)

	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "written 1")
}

func TestLoggerStderr(t *testing.T) {
	l, err := Logger(logrus.DebugLevel, "")
	require.NoError(t, err)
	assert.NotNil(t, l)
}
