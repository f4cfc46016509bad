package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/stairwalk.txt"

// maxLines bounds the in-memory history shown by the debug console.
const maxLines = 500

const timestampFormat = "2006-01-02 15:04:05"

// history keeps the most recent entries as "[timestamp] message" for the console.
type history struct {
	mu    sync.Mutex
	lines []string
}

func (h *history) Levels() []logrus.Level { return logrus.AllLevels }

func (h *history) Fire(e *logrus.Entry) error {
	line := "[" + e.Time.Format(timestampFormat) + "] " + e.Message
	h.mu.Lock()
	h.lines = append(h.lines, line)
	if len(h.lines) > maxLines {
		h.lines = h.lines[len(h.lines)-maxLines:]
	}
	h.mu.Unlock()
	return nil
}

// Logger writes every line to a file and an optional mirror through logrus, and keeps
// recent lines in memory for the console.
type Logger struct {
	log  *logrus.Logger
	hist *history
	file *os.File
	now  func() time.Time
}

// New returns a Logger appending to path (its directory is created) and echoing to
// mirror. A nil mirror disables echoing. If path cannot be opened, only the mirror
// and the history receive lines.
func New(path string, mirror io.Writer) *Logger {
	l := &Logger{
		log:  logrus.New(),
		hist: &history{},
		now:  time.Now,
	}
	l.log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	l.log.AddHook(l.hist)

	var outs []io.Writer
	var openErr error
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		openErr = err
	} else if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		openErr = err
	} else {
		l.file = f
		outs = append(outs, f)
	}
	if mirror != nil {
		outs = append(outs, mirror)
	}
	if len(outs) == 0 {
		l.log.SetOutput(io.Discard)
	} else {
		l.log.SetOutput(io.MultiWriter(outs...))
	}
	if openErr != nil {
		l.log.WithError(openErr).Warn("logger: file output disabled")
	}
	return l
}

// Log records one line at info level.
func (l *Logger) Log(line string) {
	l.log.WithTime(l.now()).Info(line)
}

// Logf formats and logs one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.hist.mu.Lock()
	defer l.hist.mu.Unlock()
	out := make([]string, len(l.hist.lines))
	copy(out, l.hist.lines)
	return out
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.log.SetOutput(io.Discard)
	return err
}
