package shred

// patternSchedule — фиксированное расписание заполнителей secure-режима.
// Порядок постоянен и никогда не укорачивается во время работы; после
// восьми под-проходов по каждому блоку выполняются три DoD 5220.22-M
// прохода (нули, единицы, случайные данные).
var patternSchedule = [8]byte{
	0x00, // 00000000
	0xFF, // 11111111
	0xAA, // 10101010
	0x55, // 01010101
	0x3D, // 00111101
	0xC2, // 11000010
	0x8E, // 10001110
	0x4E, // 01001110
}

const (
	dodPassZero = 0x00
	dodPassOnes = 0xFF
)
