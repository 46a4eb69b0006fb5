// Package perms определяет права эффективного пользователя на файл и,
// при включённом force, расширяет их до перезаписываемого состояния.
package perms

import (
	"fmt"
	"os"
	"os/exec"

	"fileshred/internal/logging"
	"fileshred/internal/platform"
)

// Perms — результат опроса прав для одного файла
type Perms struct {
	Read            bool
	Write           bool
	RetrievalFailed bool
}

// Check вычисляет права чтения и записи по триаде владелец/группа/прочие.
// Для uid 0 проверка пропускается: root читает и пишет всё.
func Check(path string) Perms {
	info, err := os.Stat(path)
	if err != nil {
		return Perms{RetrievalFailed: true}
	}

	if platform.EffectiveUser() == 0 {
		return Perms{Read: true, Write: true}
	}

	owner, err := platform.OwnerOf(path)
	if err != nil {
		return Perms{RetrievalFailed: true}
	}
	group, err := platform.GroupOf(path)
	if err != nil {
		return Perms{RetrievalFailed: true}
	}

	mode := info.Mode().Perm()
	var p Perms
	switch {
	case platform.EffectiveUser() == owner:
		p.Read = mode&0400 != 0
		p.Write = mode&0200 != 0
	case platform.EffectiveGroup() == group:
		p.Read = mode&0040 != 0
		p.Write = mode&0020 != 0
	default:
		p.Read = mode&0004 != 0
		p.Write = mode&0002 != 0
	}
	return p
}

// Elevate пытается расширить права до rw-rw-rw- (или rwxrwxrwx, если у
// файла был бит исполнения): снимает блокирующие флаги, применяет chmod,
// чистит расширенные атрибуты и перепроверяет доступ.
//
// Права никогда не поднимаются до чужого принципала, и файлы root
// не трогаются, если вызывающий сам не root.
func Elevate(path string, log *logging.Logger) (Perms, error) {
	owner, err := platform.OwnerOf(path)
	if err != nil {
		return Perms{RetrievalFailed: true}, fmt.Errorf("cannot determine owner of %s: %w", path, err)
	}
	if owner == 0 && platform.EffectiveUser() != 0 {
		return Perms{}, fmt.Errorf("file '%s' is owned by root; refusing to elevate", path)
	}

	if err := platform.ClearBlockingAttrs(path); err != nil && err != platform.ErrUnsupported {
		log.Logf(logging.WARNING, "Failed to clear blocking attributes on '%s': %v", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Perms{RetrievalFailed: true}, fmt.Errorf("stat %s: %w", path, err)
	}

	mode := os.FileMode(0666)
	if info.Mode().Perm()&0111 != 0 {
		mode = 0777
	}
	if err := os.Chmod(path, mode); err != nil {
		return Perms{}, fmt.Errorf("chmod %s: %w", path, err)
	}

	ClearXattrs(path, log)

	// Перепроверка эффективного доступа после расширения
	p := Perms{
		Read:  platform.CheckAccess(path, true, false),
		Write: platform.CheckAccess(path, false, true),
	}
	if !p.Read || !p.Write {
		return p, fmt.Errorf("access to '%s' still denied after elevation", path)
	}
	return p, nil
}

// ClearXattrs удаляет расширенные атрибуты файла. Сначала нативный API;
// при его отказе — внешние утилиты xattr/attr, если они установлены
// (их stderr отбрасывается).
func ClearXattrs(path string, log *logging.Logger) {
	names, err := platform.ListXattrs(path)
	if err == nil {
		failed := false
		for _, name := range names {
			if rmErr := platform.RemoveXattr(path, name); rmErr != nil {
				failed = true
			}
		}
		if !failed {
			return
		}
	}

	if bin, lookErr := exec.LookPath("xattr"); lookErr == nil {
		cmd := exec.Command(bin, "-c", path)
		cmd.Stderr = nil
		if runErr := cmd.Run(); runErr == nil {
			return
		}
	}
	if bin, lookErr := exec.LookPath("attr"); lookErr == nil {
		for _, name := range names {
			cmd := exec.Command(bin, "-r", name, path)
			cmd.Stderr = nil
			cmd.Run()
		}
		return
	}

	if err != nil && err != platform.ErrUnsupported {
		log.Logf(logging.WARNING, "Failed to clear extended attributes on '%s': %v", path, err)
	}
}
