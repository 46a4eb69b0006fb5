// Package shred реализует посекторную перезапись и удаление файла:
// опрос прав, многопроходную перезапись с верификацией, зачистку
// метаданных и переименование с удалением.
package shred

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fileshred/internal/config"
	"fileshred/internal/logging"
	"fileshred/internal/perms"
	"fileshred/internal/platform"
	"fileshred/internal/random"
	"fileshred/internal/report"
)

const (
	openAttempts  = 10
	openRetryWait = 500 * time.Millisecond

	// Пауза на применение метаданных после rename и перед unlink
	metadataSettle = 50 * time.Millisecond

	obfuscatedNameLen = 32
)

// renameMu исключает гонку двух затираний за одно случайное имя
// во временной директории
var renameMu sync.Mutex

// Engine — машина состояний затирания одного файла. Движок работает
// строго в вызывающей горутине: многопоточность была убрана из-за
// конфликтов файловых дескрипторов.
type Engine struct {
	opts config.Options
	log  *logging.Logger
	run  *report.Run
}

func NewEngine(opts config.Options, log *logging.Logger, run *report.Run) *Engine {
	return &Engine{
		opts: opts,
		log:  log,
		run:  run,
	}
}

// Shred последовательно проводит файл через все состояния: симлинки,
// dry-run, права, размер, открытие, проходы перезаписи, fsync и
// удаление. Возвращает false при фатальной для файла ошибке.
func (e *Engine) Shred(path string) (ok bool) {
	defer func() {
		// Граница движка: неожиданная паника фиксируется как ошибка
		// файла и не валит обход
		if r := recover(); r != nil {
			e.log.Logf(logging.ERROR, "An unknown error has occured while shredding '%s': %v", path, r)
			e.run.SetFatal()
			ok = false
		}
	}()

	info, err := os.Lstat(path)
	if err != nil {
		e.log.Logf(logging.ERROR, "Cannot stat file '%s': %v", path, err)
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: err.Error()})
		return false
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if !e.opts.FollowSymlinks {
			if e.opts.DryRun {
				e.log.Logf(logging.DRY_RUN, "Symlink file '%s' would not be shredded.", path)
			} else {
				e.log.Logf(logging.WARNING, "Skipping symlink '%s'", path)
			}
			e.run.Record(report.FileOutcome{Path: path, Status: "SKIPPED"})
			return true
		}

		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			e.log.Logf(logging.WARNING, "Dangling symlink (not followed): '%s'", path)
			e.run.Record(report.FileOutcome{Path: path, Status: "SKIPPED"})
			return true
		}
		path = target
	}

	if e.opts.DryRun {
		e.log.Logf(logging.DRY_RUN, "Simulating shredding file '%s'.", path)
		e.run.Record(report.FileOutcome{Path: path, Status: "DRY_RUN"})
		return true
	}

	if !e.gatePermissions(path) {
		return false
	}

	// Размер запрашивается один раз до начала перезаписи
	info, err = os.Stat(path)
	if err != nil {
		e.log.Logf(logging.ERROR, "Cannot stat file '%s': %v", path, err)
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: err.Error()})
		return false
	}
	size := info.Size()

	if size == 0 {
		return e.handleEmpty(path)
	}

	file, err := e.openWithRetry(path)
	if err != nil {
		e.log.Logf(logging.ERROR, "Failed to open file '%s' after %d attempts. Skipping.", path, openAttempts)
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: err.Error()})
		return false
	}

	tf := newThrottledFile(file, e.opts.MaxSpeedMBps)
	blockSize := platform.BlockSize()

	var lastWritten []byte
	if e.opts.Verify {
		// Буфер последних записанных данных живёт ровно до закрытия файла
		lastWritten = make([]byte, size)
	}

	verificationFailed := false
	for pass := 0; pass < e.opts.Passes; pass++ {
		if err := e.overwritePass(tf, size, blockSize, pass, lastWritten); err != nil {
			e.log.Logf(logging.ERROR, "Overwrite failed for '%s': %v", path, err)
			e.run.SetFatal()
			verificationFailed = true
			break
		}

		if e.opts.Verify {
			if e.verifyPass(path, tf, size, blockSize, lastWritten) {
				verificationFailed = true
			}
		}

		e.log.Logf(logging.INFO, "Completed overwrite pass %d for file '%s'.", pass+1, path)
		fmt.Printf("Progress: %.1f%%\r", float64(pass+1)/float64(e.opts.Passes)*100)
	}

	tf.Close()

	if err := platform.Fsync(path); err != nil {
		e.log.Logf(logging.WARNING, "File '%s' failed to flush.", path)
	}

	if verificationFailed {
		e.log.Logf(logging.WARNING, "Overwrite verification failed for '%s'. Skipping deletion.", path)
	}

	if e.opts.Keep || verificationFailed {
		status := "KEPT"
		if verificationFailed {
			status = "FAILED"
		}
		if e.opts.Keep && !verificationFailed {
			e.log.Logf(logging.INFO, "File '%s' overwritten without deletion.", path)
		}
		e.run.Record(report.FileOutcome{
			Path:               path,
			Status:             status,
			Passes:             e.opts.Passes,
			BytesWritten:       size * int64(e.opts.Passes),
			VerificationFailed: verificationFailed,
		})
		return !verificationFailed
	}

	if !e.scrubAndUnlink(path) {
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Passes: e.opts.Passes, BytesWritten: size * int64(e.opts.Passes)})
		return false
	}

	if e.opts.Verify {
		e.log.Logf(logging.INFO, "File '%s' shredded, verified, and deleted.", path)
	} else {
		e.log.Logf(logging.INFO, "File '%s' shredded and deleted without verification.", path)
	}
	e.run.Record(report.FileOutcome{
		Path:         path,
		Status:       "SHREDDED",
		Passes:       e.opts.Passes,
		BytesWritten: size * int64(e.opts.Passes),
	})
	return true
}

// gatePermissions опрашивает права и при необходимости расширяет их
func (e *Engine) gatePermissions(path string) bool {
	p := perms.Check(path)
	if p.RetrievalFailed {
		e.log.Logf(logging.ERROR, "Failed to retrieve permissions for '%s'.", path)
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: "permission retrieval failed"})
		return false
	}

	if p.Write && (p.Read || !e.opts.Verify) {
		return true
	}

	if !e.opts.Force {
		reason := "no write permissions"
		if !p.Write {
			e.log.Logf(logging.ERROR, "No write permissions for file '%s'.", path)
		} else {
			reason = "no read permissions"
			e.log.Logf(logging.ERROR, "No read permissions for file '%s'.", path)
		}
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: reason})
		return false
	}

	elevated, err := perms.Elevate(path, e.log)
	if err != nil || !elevated.Write {
		e.log.Logf(logging.ERROR, "Failed to elevate permissions for '%s': %v", path, err)
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: "permission elevation failed"})
		return false
	}
	return true
}

// handleEmpty обрабатывает файл нулевого размера: такой файл никогда
// не перезаписывается
func (e *Engine) handleEmpty(path string) bool {
	if e.opts.Keep {
		e.log.Logf(logging.WARNING, "File '%s' is empty and will not be overwritten.", path)
		e.run.Record(report.FileOutcome{Path: path, Status: "SKIPPED"})
		return true
	}

	e.log.Logf(logging.INFO, "File '%s' is empty and will be deleted without overwriting.", path)
	if err := os.Remove(path); err != nil {
		e.log.Logf(logging.ERROR, "Failed to delete empty file '%s'.", path)
		e.run.SetFatal()
		e.run.Record(report.FileOutcome{Path: path, Status: "FAILED", Error: err.Error()})
		return false
	}
	e.log.Logf(logging.INFO, "Empty file '%s' successfully deleted.", path)
	e.run.Record(report.FileOutcome{Path: path, Status: "SHREDDED"})
	return true
}

// openWithRetry открывает файл на чтение-запись с повторами
func (e *Engine) openWithRetry(path string) (*os.File, error) {
	var lastErr error
	for attempt := 0; attempt < openAttempts; attempt++ {
		file, err := os.OpenFile(path, os.O_RDWR, 0)
		if err == nil {
			return file, nil
		}
		lastErr = err
		e.log.Logf(logging.WARNING, "Failed to open file '%s' for overwriting.", path)
		time.Sleep(openRetryWait)
	}
	return nil, lastErr
}

// scrubAndUnlink снимает права, переименовывает файл во временную
// директорию под случайным именем, зачищает расширенные атрибуты и
// удаляет его. Если удаление не удалось, файл возвращается на исходный
// путь. Вся последовательность идёт под renameMu, чтобы два
// движка не столкнулись на одном временном имени.
func (e *Engine) scrubAndUnlink(path string) bool {
	renameMu.Lock()
	defer renameMu.Unlock()

	if err := os.Chmod(path, 0); err != nil {
		e.log.Logf(logging.WARNING, "Failed to revoke permissions on '%s': %v", path, err)
	}

	target := path
	obfuscated := filepath.Join(os.TempDir(), random.Name(obfuscatedNameLen))
	if err := os.Rename(path, obfuscated); err != nil {
		// Переименование не удалось: файл остался на месте, удаляем его там
		e.log.Logf(logging.WARNING, "Failed to obfuscate name of '%s': %v", path, err)
	} else {
		target = obfuscated
	}

	time.Sleep(metadataSettle)
	perms.ClearXattrs(target, e.log)
	time.Sleep(metadataSettle)

	if err := os.Remove(target); err != nil {
		e.log.Logf(logging.ERROR, "Failed to delete file '%s'.", path)
		if target != path {
			// Удаление не удалось: возвращаем файл на исходное место,
			// чтобы во временной директории не осталось сироты
			if rbErr := os.Rename(target, path); rbErr != nil {
				e.log.Logf(logging.ERROR, "Failed to move '%s' back to '%s': %v", target, path, rbErr)
			}
		}
		e.run.SetFatal()
		return false
	}
	return true
}
