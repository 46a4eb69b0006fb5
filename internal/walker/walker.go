// Package walker обходит пути из командной строки и передаёт каждый
// обычный файл движку затирания; после рекурсивного обхода удаляет
// опустевшие директории.
package walker

import (
	"os"
	"path/filepath"

	"fileshred/internal/config"
	"fileshred/internal/logging"
	"fileshred/internal/report"
	"fileshred/internal/shred"
)

type Walker struct {
	opts   config.Options
	log    *logging.Logger
	run    *report.Run
	engine *shred.Engine
}

func New(opts config.Options, log *logging.Logger, run *report.Run) *Walker {
	return &Walker{
		opts:   opts,
		log:    log,
		run:    run,
		engine: shred.NewEngine(opts, log, run),
	}
}

// Process обрабатывает один путь. Ошибка на одном пути не прерывает
// обход остальных.
func (w *Walker) Process(path string) {
	info, err := os.Lstat(path)
	if err != nil {
		w.log.Logf(logging.ERROR, "'%s' is not a valid file or directory.", path)
		w.run.SetFatal()
		return
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if !w.opts.FollowSymlinks {
			w.log.Logf(logging.WARNING, "Skipping symlink '%s'", path)
			return
		}
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			w.log.Logf(logging.WARNING, "Dangling symlink (not followed): '%s'", path)
			return
		}
		path = resolved
		info, err = os.Lstat(path)
		if err != nil {
			w.log.Logf(logging.ERROR, "'%s' is not a valid file or directory.", path)
			w.run.SetFatal()
			return
		}
	}

	switch {
	case info.IsDir():
		w.processDir(path)
	case info.Mode().IsRegular():
		w.engine.Shred(path)
	default:
		w.log.Logf(logging.ERROR, "'%s' is not a valid file or directory.", path)
		w.run.SetFatal()
	}
}

func (w *Walker) processDir(path string) {
	if !w.opts.Recursive {
		w.log.Logf(logging.WARNING, "'%s' is a directory. Use -r for recursive shredding.", path)
		return
	}

	w.log.Logf(logging.INFO, "Entering directory '%s'...", path)
	w.walkDir(path)

	if !w.opts.Keep && !w.opts.DryRun && w.isEmpty(path) {
		if err := os.Remove(path); err != nil {
			w.log.Logf(logging.ERROR, "Failed to delete directory '%s'.", path)
			w.run.SetFatal()
		} else {
			w.log.Logf(logging.INFO, "Directory '%s' successfully deleted.", path)
		}
		return
	}

	// Директория не удалена: keep, dry-run или остались файлы
	switch {
	case w.opts.Keep:
		w.log.Logf(logging.WARNING, "Directory '%s' was not deleted (keep_files flag).", path)
	case w.opts.DryRun:
		w.log.Logf(logging.DRY_RUN, "Directory '%s' would be shredded.", path)
	case !w.isEmpty(path):
		w.log.Logf(logging.WARNING, "Directory '%s' is not empty. Skipping deletion.", path)
	}
}

// walkDir рекурсивно спускается по директории, затирая обычные файлы
// и удаляя опустевшие поддиректории
func (w *Walker) walkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.Logf(logging.ERROR, "Failed to read directory '%s': %v", dir, err)
		w.run.SetFatal()
		return
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		t := entry.Type()

		if t&os.ModeSymlink != 0 {
			if !w.opts.FollowSymlinks {
				if w.opts.DryRun {
					w.log.Logf(logging.DRY_RUN, "Symlink file '%s' would not be shredded.", p)
				} else {
					w.log.Logf(logging.WARNING, "Skipping symlink '%s'", p)
				}
				continue
			}

			resolved, err := filepath.EvalSymlinks(p)
			if err != nil {
				w.log.Logf(logging.WARNING, "Dangling symlink (not followed): '%s'", p)
				continue
			}
			ti, err := os.Stat(resolved)
			if err != nil {
				w.log.Logf(logging.WARNING, "Dangling symlink (not followed): '%s'", p)
				continue
			}
			if ti.IsDir() {
				w.walkDir(resolved)
			} else if ti.Mode().IsRegular() {
				w.engine.Shred(resolved)
			}
			continue
		}

		if entry.IsDir() {
			w.walkDir(p)
			if !w.opts.Keep && !w.opts.DryRun && w.isEmpty(p) {
				if err := os.Remove(p); err != nil {
					w.log.Logf(logging.ERROR, "Failed to delete directory '%s'.", p)
					w.run.SetFatal()
				} else {
					w.log.Logf(logging.INFO, "Directory '%s' successfully deleted.", p)
				}
			}
			continue
		}

		if t.IsRegular() {
			w.engine.Shred(p)
		}
		// Специальные файлы (устройства, сокеты, FIFO) не затираются
	}
}

func (w *Walker) isEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	return len(entries) == 0
}
