package shred

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledFileWriteAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tf")
	require.NoError(t, os.WriteFile(path, make([]byte, 16), 0644))

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)

	tf := newThrottledFile(f, 0)
	n, err := tf.WriteAt([]byte{1, 2, 3}, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, tf.Sync())
	require.NoError(t, tf.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data[4:7])
}

func TestThrottledFileLimitsSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slow")
	require.NoError(t, os.WriteFile(path, make([]byte, 2*1024*1024), 0644))

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	// 1 MB при лимите 10 MB/s занимает не меньше ~100 мс
	tf := newThrottledFile(f, 10)
	chunk := make([]byte, 1024*1024)

	start := time.Now()
	_, err = tf.WriteAt(chunk, 0)
	require.NoError(t, err)
	_, err = tf.WriteAt(chunk, 1024*1024)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
