package shred

import (
	"os"
	"time"
)

// throttledFile ограничивает скорость записи в файл. При maxSpeedMBps = 0
// записи идут без задержек.
type throttledFile struct {
	file         *os.File
	maxSpeedMBps float64
	lastWrite    time.Time
}

func newThrottledFile(file *os.File, maxSpeedMBps float64) *throttledFile {
	return &throttledFile{
		file:         file,
		maxSpeedMBps: maxSpeedMBps,
		lastWrite:    time.Now(),
	}
}

// WriteAt пишет по абсолютному смещению с учётом лимита скорости
func (tf *throttledFile) WriteAt(data []byte, off int64) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	if tf.maxSpeedMBps > 0 {
		bytesPerSec := tf.maxSpeedMBps * 1024 * 1024
		expected := time.Duration(float64(len(data)) / bytesPerSec * float64(time.Second))
		actual := time.Since(tf.lastWrite)
		if actual < expected {
			time.Sleep(expected - actual)
		}
	}

	n, err := tf.file.WriteAt(data, off)
	tf.lastWrite = time.Now()
	return n, err
}

func (tf *throttledFile) ReadAt(data []byte, off int64) (int, error) {
	return tf.file.ReadAt(data, off)
}

func (tf *throttledFile) Sync() error {
	return tf.file.Sync()
}

func (tf *throttledFile) Close() error {
	return tf.file.Close()
}
