// Package random поставляет данные для перезаписи: криптографически
// стойкие байты с откатом на сеяный PRNG, если системный источник
// энтропии недоступен.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"time"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	fallbackMu   sync.Mutex
	fallback     *mrand.Rand
	fallbackSeed int64
)

func init() {
	// Сеем запасной генератор один раз на процесс. Сид берём из
	// системного источника, при неудаче — из часов.
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		fallbackSeed = int64(binary.LittleEndian.Uint64(b[:]))
	} else {
		fallbackSeed = time.Now().UnixNano()
	}
	fallback = mrand.New(mrand.NewSource(fallbackSeed))
}

// Fill заполняет буфер случайными байтами. Основной источник —
// crypto/rand; при его отказе используется запасной PRNG.
func Fill(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if _, err := crand.Read(buf); err != nil {
		fallbackMu.Lock()
		fallback.Read(buf)
		fallbackMu.Unlock()
	}
}

// FillSeeded заполняет буфер как Fill, но при отказе основного
// источника пересеивает запасной генератор значением
// seed ^ pass ^ offset, чтобы данные отличались между блоками и
// проходами даже без системной энтропии. Вызовы с одинаковыми pass и
// offset после пересева дают одинаковые данные.
func FillSeeded(buf []byte, pass int, offset int64) {
	if len(buf) == 0 {
		return
	}
	if _, err := crand.Read(buf); err != nil {
		fallbackMu.Lock()
		fallback.Seed(fallbackSeed ^ int64(pass) ^ offset)
		fallback.Read(buf)
		fallbackMu.Unlock()
	}
}

// Name возвращает случайное имя из 62-символьного алфавита
func Name(length int) string {
	idx := make([]byte, length)
	Fill(idx)

	name := make([]byte, length)
	for i, b := range idx {
		name[i] = nameAlphabet[int(b)%len(nameAlphabet)]
	}
	return string(name)
}
