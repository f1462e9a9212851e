package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActPeriod(t *testing.T) {
	now := time.Date(2025, time.July, 15, 13, 45, 0, 0, time.Local)
	key, from, to := ActPeriod(now)

	assert.Equal(t, "ACT-2025", key)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), to)
}

func TestNextActNumber(t *testing.T) {
	testCases := []struct {
		name      string
		periodKey string
		existing  []string
		expected  string
	}{
		{
			name:      "первый акт в пустом периоде",
			periodKey: "ACT-2025",
			existing:  nil,
			expected:  "ACT-2025-0001",
		},
		{
			name:      "продолжение счётчика",
			periodKey: "ACT-2025",
			existing:  []string{"ACT-2025-0001", "ACT-2025-0007", "ACT-2025-0003"},
			expected:  "ACT-2025-0008",
		},
		{
			name:      "номера чужого периода не влияют",
			periodKey: "ACT-2025",
			existing:  []string{"ACT-2024-0099"},
			expected:  "ACT-2025-0001",
		},
		{
			name:      "кривые номера пропускаются",
			periodKey: "ACT-2025",
			existing:  []string{"ACT-2025-0002", "мусор", "ACT-2025-abc", "ACT-2025", "ACT-2025-3-5"},
			expected:  "ACT-2025-0003",
		},
		{
			name:      "счётчик шире четырёх цифр",
			periodKey: "ACT-2025",
			existing:  []string{"ACT-2025-10000"},
			expected:  "ACT-2025-10001",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NextActNumber(tc.periodKey, tc.existing))
		})
	}
}
