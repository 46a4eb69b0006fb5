//go:build darwin

package platform

import (
	"golang.org/x/sys/unix"
)

// BlockSize возвращает оптимальный размер блока файловой системы
// текущей рабочей директории
func BlockSize() int {
	var st unix.Statfs_t
	if err := unix.Statfs(".", &st); err != nil {
		return DefaultBlockSize
	}
	if st.Iosize <= 0 {
		return DefaultBlockSize
	}
	return int(st.Iosize)
}

// ClearBlockingAttrs снимает пользовательские флаги файла (uchg и
// подобные), которые мешают chmod и перезаписи
func ClearBlockingAttrs(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return err
	}
	if st.Flags == 0 {
		return nil
	}
	return unix.Chflags(path, 0)
}
