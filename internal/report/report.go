// Package report накапливает итоги запуска: счётчики по файлам,
// флаг фатальной ошибки (определяет код выхода процесса) и
// необязательный JSON-отчёт.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"fileshred/internal/config"
)

// FileOutcome — итог обработки одного файла
type FileOutcome struct {
	Path               string    `json:"path"`
	Status             string    `json:"status"` // SHREDDED, KEPT, SKIPPED, FAILED, DRY_RUN
	Passes             int       `json:"passes"`
	BytesWritten       int64     `json:"bytes_written"`
	VerificationFailed bool      `json:"verification_failed,omitempty"`
	Error              string    `json:"error,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// Run агрегирует состояние запуска. Любой компонент может пометить
// запуск фатальной ошибкой; читает флаг только main при выходе.
type Run struct {
	ID        string        `json:"run_id"`
	Version   string        `json:"version"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	DryRun    bool          `json:"dry_run"`
	Outcomes  []FileOutcome `json:"files"`
	Summary   Summary       `json:"summary"`

	mu    sync.Mutex
	fatal bool
}

// Summary — сводная информация по запуску
type Summary struct {
	Total      int   `json:"total"`
	Shredded   int   `json:"shredded"`
	Kept       int   `json:"kept"`
	Skipped    int   `json:"skipped"`
	Failed     int   `json:"failed"`
	TotalBytes int64 `json:"total_bytes"`
}

// NewRun создаёт отчёт о запуске
func NewRun(version string, dryRun bool) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Version:   version,
		StartTime: time.Now(),
		DryRun:    dryRun,
	}
}

// SetFatal помечает запуск фатальной ошибкой
func (r *Run) SetFatal() {
	r.mu.Lock()
	r.fatal = true
	r.mu.Unlock()
}

// Fatal сообщает, была ли зафиксирована фатальная ошибка
func (r *Run) Fatal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fatal
}

// Record добавляет итог обработки файла
func (r *Run) Record(o FileOutcome) {
	o.Timestamp = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Outcomes = append(r.Outcomes, o)
	r.Summary.Total++
	r.Summary.TotalBytes += o.BytesWritten
	switch o.Status {
	case "SHREDDED":
		r.Summary.Shredded++
	case "KEPT":
		r.Summary.Kept++
	case "SKIPPED", "DRY_RUN":
		r.Summary.Skipped++
	case "FAILED":
		r.Summary.Failed++
	}
}

// Finish фиксирует время завершения
func (r *Run) Finish() {
	r.mu.Lock()
	r.EndTime = time.Now()
	r.mu.Unlock()
}

// Save сохраняет отчёт в JSON файл, если отчёты включены
func Save(r *Run, cfg *config.Config) error {
	if !cfg.Reporting.Enabled {
		return nil
	}

	if err := os.MkdirAll(cfg.Reporting.LocalPath, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	filename := fmt.Sprintf("fileshred_report_%s.json", r.StartTime.Format("20060102_150405"))
	path := filepath.Join(cfg.Reporting.LocalPath, filename)

	r.mu.Lock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
