package perms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileshred/internal/logging"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(false, false, "")
	require.NoError(t, err)
	return log
}

func ownedFile(t *testing.T, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func TestCheckOwnerTriple(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	cases := []struct {
		mode  os.FileMode
		read  bool
		write bool
	}{
		{0600, true, true},
		{0400, true, false},
		{0200, false, true},
		{0000, false, false},
	}

	for _, tc := range cases {
		p := Check(ownedFile(t, tc.mode))
		assert.False(t, p.RetrievalFailed)
		assert.Equal(t, tc.read, p.Read, "mode %o read", tc.mode)
		assert.Equal(t, tc.write, p.Write, "mode %o write", tc.mode)
	}
}

func TestCheckRootBypass(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("not running as root")
	}

	p := Check(ownedFile(t, 0000))
	assert.True(t, p.Read)
	assert.True(t, p.Write)
}

func TestCheckMissingFile(t *testing.T) {
	p := Check(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, p.RetrievalFailed)
}

func TestElevateWidensPermissions(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, elevation is never needed")
	}

	path := ownedFile(t, 0400)
	p, err := Elevate(path, testLogger(t))
	require.NoError(t, err)
	assert.True(t, p.Read)
	assert.True(t, p.Write)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0666), info.Mode().Perm())
}

func TestElevateKeepsExecutableBit(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, elevation is never needed")
	}

	path := ownedFile(t, 0500)
	_, err := Elevate(path, testLogger(t))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0777), info.Mode().Perm())
}

func TestElevateMissingFile(t *testing.T) {
	p, err := Elevate(filepath.Join(t.TempDir(), "missing"), testLogger(t))
	assert.Error(t, err)
	assert.True(t, p.RetrievalFailed)
}

func TestClearXattrsOnPlainFile(t *testing.T) {
	// Файл без расширенных атрибутов: зачистка проходит без побочных эффектов
	path := ownedFile(t, 0644)
	ClearXattrs(path, testLogger(t))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}
