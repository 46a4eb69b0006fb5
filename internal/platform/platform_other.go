//go:build !linux && !darwin

package platform

import (
	"os"
)

func BlockSize() int {
	return DefaultBlockSize
}

func Fsync(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

func ListXattrs(path string) ([]string, error) {
	return nil, ErrUnsupported
}

func RemoveXattr(path, name string) error {
	return ErrUnsupported
}

func ClearBlockingAttrs(path string) error {
	return ErrUnsupported
}

// CheckAccess без faccessat: пробное открытие файла
func CheckAccess(path string, read, write bool) bool {
	flag := os.O_RDONLY
	if write && read {
		flag = os.O_RDWR
	} else if write {
		flag = os.O_WRONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func OwnerOf(path string) (int, error) {
	return -1, ErrUnsupported
}

func GroupOf(path string) (int, error) {
	return -1, ErrUnsupported
}
