package renderer

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// captureLogger records every formatted line
type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

var _ core.Logger = (*captureLogger)(nil)

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *captureLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func TestProgress_OneLinePerPercent(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		expectedLines int
	}{
		{"more units than percents", 1000, 100},
		{"exactly one unit per percent", 100, 100},
		{"fewer units than percents", 40, 40},
		{"single unit", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &captureLogger{}
			progress := NewProgress(tt.total, logger)
			for i := 1; i <= tt.total; i++ {
				progress.Update(i)
			}

			lines := logger.Lines()
			if len(lines) != tt.expectedLines {
				t.Fatalf("Expected %d lines, got %d", tt.expectedLines, len(lines))
			}
			if !strings.HasPrefix(lines[len(lines)-1], "100% done, ") {
				t.Errorf("Expected final line to report 100%%, got %q", lines[len(lines)-1])
			}
			if !strings.HasSuffix(lines[0], " s elapsed\n") {
				t.Errorf("Unexpected line format %q", lines[0])
			}
		})
	}
}

func TestProgress_NoLineBeforeFirstPercent(t *testing.T) {
	logger := &captureLogger{}
	progress := NewProgress(1000, logger)
	for i := 1; i < 10; i++ {
		progress.Update(i)
	}
	if len(logger.Lines()) != 0 {
		t.Errorf("Expected no progress below 1%%, got %v", logger.Lines())
	}

	progress.Update(10)
	if lines := logger.Lines(); len(lines) != 1 || !strings.HasPrefix(lines[0], "1% done") {
		t.Errorf("Expected a single 1%% line, got %v", lines)
	}
}
