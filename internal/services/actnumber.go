package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Номера актов выдаются по схеме "ACT-{ГОД}-{NNNN}" со сквозным счётчиком
// в пределах календарного года.
const actNumberPrefix = "ACT"

// ActPeriod возвращает ключ периода и его границы для момента now.
func ActPeriod(now time.Time) (key string, from, to time.Time) {
	year := now.Year()
	key = fmt.Sprintf("%s-%d", actNumberPrefix, year)
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	to = from.AddDate(1, 0, 0)
	return key, from, to
}

// NextActNumber вычисляет следующий номер акта для периода periodKey по
// множеству уже существующих номеров: 1 + максимальный разобранный
// счётчик. Номера чужого формата (не три токена, нечисловой суффикс)
// пропускаются и на счётчик не влияют.
func NextActNumber(periodKey string, existing []string) string {
	maxSeq := 0
	for _, number := range existing {
		parts := strings.Split(number, "-")
		if len(parts) != 3 {
			continue
		}
		if parts[0]+"-"+parts[1] != periodKey {
			continue
		}
		seq, err := strconv.Atoi(parts[2])
		if err != nil || seq < 0 {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s-%04d", periodKey, maxSeq+1)
}
