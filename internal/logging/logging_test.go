package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandlerWritesDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var echo bytes.Buffer
	h, err := New(dir, slog.LevelInfo, &echo)
	require.NoError(t, err)
	defer h.Close()

	l := slog.New(h)
	l.Info("App started")
	l.Debug("hidden")
	l.Warn("calculation failed", slog.String("expression", "5÷0"), slog.String("err", "2: division by zero"))

	today := time.Now().Format("2006-01-02")
	b, err := os.ReadFile(filepath.Join(dir, today+".log"))
	require.NoError(t, err)
	require.Equal(t, echo.String(), string(b))

	lines := regexp.MustCompile(`(?m)^\[\d{4}-\d\d-\d\d \d\d:\d\d:\d\d\]\[(\w+)\] (.*)$`).FindAllStringSubmatch(string(b), -1)
	require.Len(t, lines, 2)
	require.Equal(t, "INFO", lines[0][1])
	require.Equal(t, "App started", lines[0][2])
	require.Equal(t, "WARN", lines[1][1])
	require.Equal(t, `calculation failed expression=5÷0 err="2: division by zero"`, lines[1][2])
}

func TestHandlerRotates(t *testing.T) {
	dir := t.TempDir()
	h, err := New(dir, slog.LevelDebug, nil)
	require.NoError(t, err)
	defer h.Close()

	for _, day := range []string{"2024-05-01", "2024-05-02"} {
		ts, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		r := slog.NewRecord(ts.Add(13*time.Hour), slog.LevelInfo, "tick", 0)
		require.NoError(t, h.Handle(context.Background(), r))
	}
	for _, day := range []string{"2024-05-01", "2024-05-02"} {
		b, err := os.ReadFile(filepath.Join(dir, day+".log"))
		require.NoError(t, err)
		require.Equal(t, "["+day+" 13:00:00][INFO] tick\n", string(b))
	}
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	var echo bytes.Buffer
	h, err := New(t.TempDir(), nil, &echo)
	require.NoError(t, err)
	defer h.Close()

	l := slog.New(h).With("os", "Linux").WithGroup("ui")
	l.Info("theme", "name", "dark", slog.Group("size", "w", 80))
	require.Regexp(t, `\] theme os=Linux ui\.name=dark ui\.size\.w=80\n$`, echo.String())

	echo.Reset()
	l.Debug("below default level")
	require.Empty(t, echo.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("terminal gone") }

func TestHandlerReportsEchoError(t *testing.T) {
	dir := t.TempDir()
	h, err := New(dir, nil, failWriter{})
	require.NoError(t, err)
	defer h.Close()

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "tick", 0)
	err = h.Handle(context.Background(), r)
	require.ErrorContains(t, err, "terminal gone")

	// The file still gets the line.
	b, err := os.ReadFile(filepath.Join(dir, r.Time.Format("2006-01-02")+".log"))
	require.NoError(t, err)
	require.Contains(t, string(b), "] tick\n")
}
