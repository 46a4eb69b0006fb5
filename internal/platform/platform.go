// Package platform предоставляет единый доступ к специфичным для ОС
// операциям: размер блока файловой системы, синхронизация файлов,
// расширенные атрибуты, блокирующие флаги файлов и проверка доступа.
// Все функции возвращают ошибку вместо паники.
package platform

import (
	"errors"
	"os"
)

// DefaultBlockSize используется когда запрос к файловой системе не удался
const DefaultBlockSize = 4096

// fsyncAttempts — число попыток синхронизации перед отказом
const fsyncAttempts = 3

// ErrUnsupported возвращается на платформах без реализации операции
var ErrUnsupported = errors.New("operation not supported on this platform")

// EffectiveUser возвращает эффективный uid процесса
func EffectiveUser() int {
	return os.Geteuid()
}

// EffectiveGroup возвращает эффективный gid процесса
func EffectiveGroup() int {
	return os.Getegid()
}
