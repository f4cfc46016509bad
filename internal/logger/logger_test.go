package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
}

func TestLogWritesFileAndMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	var mirror bytes.Buffer
	l := New(path, &mirror)
	l.now = fixedClock

	l.Log("hello")
	l.Logf("step %d", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fileLines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, fileLines, 2)
	assert.Contains(t, fileLines[0], `time="2026-10-17 09:30:00"`)
	assert.Contains(t, fileLines[0], "level=info")
	assert.Contains(t, fileLines[0], "msg=hello")
	assert.Contains(t, fileLines[1], `msg="step 3"`)
	assert.Equal(t, string(data), mirror.String())

	assert.Equal(t, []string{"[2026-10-17 09:30:00] hello", "[2026-10-17 09:30:00] step 3"}, l.Lines())
}

func TestLinesBounded(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "out.txt"), nil)
	defer l.Close()
	for i := 0; i < maxLines+25; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 25"))
}

func TestUnwritablePathKeepsHistory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var mirror bytes.Buffer
	l := New(filepath.Join(blocker, "out.txt"), &mirror)
	l.Log("still here")

	assert.Contains(t, mirror.String(), "file output disabled")
	lines := l.Lines()
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "still here"))
	assert.NoError(t, l.Close())
}
