//go:build linux

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// Флаги атрибутов файла из linux/fs.h, отсутствующие в golang.org/x/sys/unix.
const (
	FS_IMMUTABLE_FL = 0x00000010
	FS_APPEND_FL    = 0x00000020
)

// BlockSize возвращает оптимальный размер блока файловой системы
// текущей рабочей директории (f_frsize)
func BlockSize() int {
	var st unix.Statfs_t
	if err := unix.Statfs(".", &st); err != nil {
		return DefaultBlockSize
	}
	if st.Frsize <= 0 {
		return DefaultBlockSize
	}
	return int(st.Frsize)
}

// ClearBlockingAttrs снимает блокирующие флаги файла (immutable,
// append-only), которые мешают chmod и перезаписи
func ClearBlockingAttrs(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	flags, err := unix.IoctlGetInt(int(f.Fd()), unix.FS_IOC_GETFLAGS)
	if err != nil {
		// Не все файловые системы поддерживают файловые флаги
		return nil
	}

	cleared := flags &^ (FS_IMMUTABLE_FL | FS_APPEND_FL)
	if cleared == flags {
		return nil
	}
	return unix.IoctlSetPointerInt(int(f.Fd()), unix.FS_IOC_SETFLAGS, cleared)
}
