package shred

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileshred/internal/config"
	"fileshred/internal/logging"
	"fileshred/internal/report"
)

func newTestEngine(t *testing.T, opts config.Options) (*Engine, *report.Run) {
	t.Helper()
	log, err := logging.NewLogger(false, false, "")
	require.NoError(t, err)
	run := report.NewRun("test", opts.DryRun)
	return NewEngine(opts, log, run), run
}

func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestShredDeletesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.bin", bytes.Repeat([]byte{0x41}, 10))

	engine, run := newTestEngine(t, config.Options{Passes: 1, Verify: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	assert.NoFileExists(t, path)
	assert.False(t, run.Fatal())
	assert.Equal(t, 1, run.Summary.Shredded)
}

func TestShredKeepOverwritesWithoutDeletion(t *testing.T) {
	dir := t.TempDir()
	original := bytes.Repeat([]byte{0x42}, 4096)
	path := writeTestFile(t, dir, "b.txt", original)

	engine, run := newTestEngine(t, config.Options{Passes: 2, Keep: true, Verify: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	assert.False(t, run.Fatal())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, after, len(original), "size must not change")
	assert.NotEqual(t, original, after, "contents must be overwritten")
	assert.Equal(t, 1, run.Summary.Kept)
}

func TestShredSecureMode(t *testing.T) {
	dir := t.TempDir()
	original := bytes.Repeat([]byte{0x43}, 513)
	path := writeTestFile(t, dir, "s.bin", original)

	engine, run := newTestEngine(t, config.Options{Passes: 1, Secure: true, Verify: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	assert.NoFileExists(t, path)
	assert.False(t, run.Fatal())
}

func TestShredEmptyFileDeleted(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "empty", nil)

	engine, run := newTestEngine(t, config.Options{Passes: 3, Verify: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	assert.NoFileExists(t, path)
	assert.False(t, run.Fatal())
}

func TestShredEmptyFileKept(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "empty", nil)

	engine, run := newTestEngine(t, config.Options{Passes: 3, Keep: true, Verify: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	assert.FileExists(t, path)
	assert.Equal(t, 1, run.Summary.Skipped)
}

func TestShredDryRunLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	original := []byte("do not touch")
	path := writeTestFile(t, dir, "c", original)

	engine, run := newTestEngine(t, config.Options{Passes: 3, DryRun: true, Verify: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after)
	assert.False(t, run.Fatal())
}

func TestShredSymlinkNotFollowed(t *testing.T) {
	dir := t.TempDir()
	original := []byte("target data")
	target := writeTestFile(t, dir, "target", original)
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	engine, run := newTestEngine(t, config.Options{Passes: 1, Verify: true})
	ok := engine.Shred(link)

	assert.True(t, ok)
	after, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, original, after, "symlink target must never be opened for writing")
	assert.False(t, run.Fatal())
}

func TestShredDanglingSymlinkFollowed(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), link))

	engine, run := newTestEngine(t, config.Options{Passes: 1, FollowSymlinks: true, Verify: true})
	ok := engine.Shred(link)

	assert.True(t, ok)
	assert.Equal(t, 1, run.Summary.Skipped)
	assert.False(t, run.Fatal())
}

func TestShredFollowsSymlinkTarget(t *testing.T) {
	dir := t.TempDir()
	target := writeTestFile(t, dir, "target", []byte("payload"))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	engine, run := newTestEngine(t, config.Options{Passes: 1, FollowSymlinks: true, Verify: true})
	ok := engine.Shred(link)

	assert.True(t, ok)
	assert.NoFileExists(t, target)
	assert.False(t, run.Fatal())
}

func TestShredDeniedWithoutForce(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	dir := t.TempDir()
	original := []byte("read only")
	path := writeTestFile(t, dir, "c.ro", original)
	require.NoError(t, os.Chmod(path, 0400))

	engine, run := newTestEngine(t, config.Options{Passes: 1, Verify: true})
	ok := engine.Shred(path)

	assert.False(t, ok)
	assert.True(t, run.Fatal())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after, "denied file must stay unchanged")
}

func TestShredDeniedWithForce(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	dir := t.TempDir()
	path := writeTestFile(t, dir, "c.ro", []byte("read only"))
	require.NoError(t, os.Chmod(path, 0400))

	engine, run := newTestEngine(t, config.Options{Passes: 1, Verify: true, Force: true})
	ok := engine.Shred(path)

	assert.True(t, ok)
	assert.NoFileExists(t, path)
	assert.False(t, run.Fatal())
}

func TestShredMissingFileSetsFatal(t *testing.T) {
	engine, run := newTestEngine(t, config.Options{Passes: 1, Verify: true})
	ok := engine.Shred(filepath.Join(t.TempDir(), "missing"))

	assert.False(t, ok)
	assert.True(t, run.Fatal())
}

func TestShredTwiceInKeepModeIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "twice", bytes.Repeat([]byte{0x44}, 257))

	engine, run := newTestEngine(t, config.Options{Passes: 1, Keep: true, Verify: true})
	require.True(t, engine.Shred(path))
	require.True(t, engine.Shred(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(257), info.Size())
	assert.False(t, run.Fatal())
}
