//go:build !noverifyhash

package shred

import (
	"crypto/sha256"
	"io"
	"os"
)

// Хеш-верификатор собран по умолчанию; сборка с тегом noverifyhash
// оставляет только поблочное сравнение.
const hashAvailable = true

// Результаты сравнения хешей
const (
	hashMatch = iota
	hashUnavailable // файл не открылся, решает поблочное сравнение
	hashMismatch
)

// hashCompare сравнивает SHA-256 содержимого файла на диске с дайджестом
// последних записанных данных
func hashCompare(path string, lastWritten []byte) int {
	f, err := os.Open(path)
	if err != nil {
		return hashUnavailable
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return hashUnavailable
	}

	diskDigest := h.Sum(nil)
	wantDigest := sha256.Sum256(lastWritten)

	for i := range diskDigest {
		if diskDigest[i] != wantDigest[i] {
			return hashMismatch
		}
	}
	return hashMatch
}
