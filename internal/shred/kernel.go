package shred

import (
	"bytes"
	"fmt"
	"os"

	"fileshred/internal/logging"
	"fileshred/internal/random"
)

// blockFile — минимальный контракт файла для ядра перезаписи
type blockFile interface {
	WriteAt(p []byte, off int64) (int, error)
	ReadAt(p []byte, off int64) (int, error)
	Sync() error
}

// overwritePass выполняет один верхнеуровневый проход перезаписи файла.
// В обычном режиме каждый блок заполняется свежими случайными данными.
// В secure-режиме по каждому блоку идут восемь под-проходов по расписанию
// шаблонов (со случайной вставкой после каждого нечётного) и затем три
// DoD-прохода; именно финальные случайные данные попадают в lastWritten.
func (e *Engine) overwritePass(f blockFile, size int64, blockSize int, pass int, lastWritten []byte) error {
	buf := GetBuffer(blockSize)
	defer PutBuffer(buf)

	for offset := int64(0); offset < size; offset += int64(blockSize) {
		writeSize := int64(blockSize)
		if size-offset < writeSize {
			writeSize = size - offset
		}
		chunk := buf[:writeSize]

		if !e.opts.Secure {
			random.Fill(chunk)
			if lastWritten != nil {
				copy(lastWritten[offset:offset+writeSize], chunk)
			}
			if _, err := f.WriteAt(chunk, offset); err != nil {
				return fmt.Errorf("write at offset %d: %w", offset, err)
			}
			continue
		}

		// Восемь под-проходов по расписанию; sub — индекс под-прохода,
		// отдельный от номера верхнеуровневого прохода
		for sub := 0; sub < len(patternSchedule); sub++ {
			fillPattern(chunk, patternSchedule[sub])
			if _, err := f.WriteAt(chunk, offset); err != nil {
				return fmt.Errorf("pattern write at offset %d: %w", offset, err)
			}

			if sub%2 == 1 {
				random.FillSeeded(chunk, pass, offset)
				if _, err := f.WriteAt(chunk, offset); err != nil {
					return fmt.Errorf("random write at offset %d: %w", offset, err)
				}
			}
		}

		// DoD 5220.22-M: нули, единицы, случайные данные
		fillPattern(chunk, dodPassZero)
		if _, err := f.WriteAt(chunk, offset); err != nil {
			return fmt.Errorf("zero write at offset %d: %w", offset, err)
		}

		fillPattern(chunk, dodPassOnes)
		if _, err := f.WriteAt(chunk, offset); err != nil {
			return fmt.Errorf("ones write at offset %d: %w", offset, err)
		}

		random.Fill(chunk)
		if lastWritten != nil {
			copy(lastWritten[offset:offset+writeSize], chunk)
		}
		if _, err := f.WriteAt(chunk, offset); err != nil {
			return fmt.Errorf("final write at offset %d: %w", offset, err)
		}

		e.log.Log(logging.INTERNAL, "Successfully wrote all DoD passes to block")
	}

	e.log.Logf(logging.INTERNAL, "Blocksize: %d", blockSize)
	return nil
}

// verifyPass сравнивает содержимое файла на диске с последними записанными
// данными. Возвращает true при расхождении. Сначала сравнение по SHA-256;
// если хешер недоступен или файл не открылся для хеширования — поблочное
// побайтовое сравнение.
func (e *Engine) verifyPass(path string, f blockFile, size int64, blockSize int, lastWritten []byte) bool {
	if err := f.Sync(); err != nil {
		e.log.Logf(logging.WARNING, "File '%s' failed to flush before verification: %v", path, err)
	}

	if hashAvailable {
		switch hashCompare(path, lastWritten) {
		case hashMatch:
			e.log.Logf(logging.INFO, "Successfully verified file hash for '%s'", path)
			return false
		case hashMismatch:
			e.log.Logf(logging.WARNING, "Hash mismatch for '%s'", path)
			return true
		}
		// hashUnavailable: решает поблочное сравнение
	}

	buf := GetBuffer(blockSize)
	defer PutBuffer(buf)

	for offset := int64(0); offset < size; offset += int64(blockSize) {
		readSize := int64(blockSize)
		if size-offset < readSize {
			readSize = size - offset
		}
		chunk := buf[:readSize]

		if _, err := f.ReadAt(chunk, offset); err != nil {
			e.log.Logf(logging.ERROR, "Verification read failed at offset %d for '%s': %v", offset, path, err)
			return true
		}

		if !bytes.Equal(chunk, lastWritten[offset:offset+readSize]) {
			if e.opts.Verbose {
				fmt.Fprintf(os.Stderr, "Verification failed at offset: %d\n", offset)
			}
			return true
		}
	}
	return false
}
