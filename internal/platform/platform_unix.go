//go:build linux || darwin

package platform

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Fsync сбрасывает буферы ОС для файла. До трёх попыток открытия.
func Fsync(path string) error {
	var lastErr error
	for attempt := 0; attempt < fsyncAttempts; attempt++ {
		f, err := os.Open(path)
		if err != nil {
			lastErr = err
			time.Sleep(10 * time.Millisecond)
			continue
		}
		err = f.Sync()
		f.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("fsync failed after %d attempts: %w", fsyncAttempts, lastErr)
}

// ListXattrs возвращает имена расширенных атрибутов файла
func ListXattrs(path string) ([]string, error) {
	// Первый вызов — узнать размер списка
	size, err := unix.Listxattr(path, nil)
	if err != nil {
		return nil, fmt.Errorf("listxattr %s: %w", path, err)
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	n, err := unix.Listxattr(path, buf)
	if err != nil {
		return nil, fmt.Errorf("listxattr %s: %w", path, err)
	}

	var names []string
	start := 0
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			if i > start {
				names = append(names, string(buf[start:i]))
			}
			start = i + 1
		}
	}
	return names, nil
}

// RemoveXattr удаляет один расширенный атрибут
func RemoveXattr(path, name string) error {
	if err := unix.Removexattr(path, name); err != nil {
		return fmt.Errorf("removexattr %s %s: %w", path, name, err)
	}
	return nil
}

// CheckAccess проверяет права чтения/записи для эффективного пользователя
func CheckAccess(path string, read, write bool) bool {
	var mode uint32
	if read {
		mode |= unix.R_OK
	}
	if write {
		mode |= unix.W_OK
	}
	if mode == 0 {
		return true
	}
	return unix.Faccessat(unix.AT_FDCWD, path, mode, unix.AT_EACCESS) == nil
}

// OwnerOf возвращает uid владельца файла
func OwnerOf(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return -1, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return -1, fmt.Errorf("no stat info for %s", path)
	}
	return int(st.Uid), nil
}

// GroupOf возвращает gid группы файла
func GroupOf(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return -1, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return -1, fmt.Errorf("no stat info for %s", path)
	}
	return int(st.Gid), nil
}
