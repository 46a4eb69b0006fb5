package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Уровни логирования
const (
	INFO     = "INFO"
	WARNING  = "WARNING"
	ERROR    = "ERROR"
	DRY_RUN  = "DRY_RUN"
	INTERNAL = "INTERNAL"
)

// Logger пишет сообщения в формате [MM-DD-YYYY HH:MM:SS] [LEVEL] message.
// INFO выводится только при verbose (или internal), INTERNAL только при
// internal; WARNING, ERROR и DRY_RUN выводятся всегда.
type Logger struct {
	verbose  bool
	internal bool
	file     *os.File
	mu       sync.Mutex
}

func NewLogger(verbose, internal bool, logFile string) (*Logger, error) {
	l := &Logger{
		verbose:  verbose,
		internal: internal,
	}

	// Автоматическое создание директории для логов
	if logFile != "" {
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			// Если не можем создать директорию, используем stdout
			fmt.Printf("[WARNING] Failed to create log directory %s: %v\n", logDir, err)
			return l, nil
		}

		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Printf("[WARNING] Failed to open log file %s: %v\n", logFile, err)
			return l, nil
		}
		l.file = f
	}

	return l, nil
}

func (l *Logger) Log(level, message string) {
	if !l.shouldLog(level) {
		return
	}

	timestamp := time.Now().Format("01-02-2006 15:04:05")
	entry := fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Println(entry)

	if l.file != nil {
		l.file.WriteString(entry + "\n")
	}
}

// Logf форматирует сообщение перед записью
func (l *Logger) Logf(level, format string, args ...interface{}) {
	l.Log(level, fmt.Sprintf(format, args...))
}

func (l *Logger) shouldLog(level string) bool {
	switch level {
	case INFO:
		return l.verbose || l.internal
	case INTERNAL:
		return l.internal
	default:
		return true
	}
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
