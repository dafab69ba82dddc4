package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	at := time.Date(2026, 1, 15, 17, 42, 11, 500, loc)

	start := StartOfDay(at)

	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, loc, start.Location())
}

func TestEndOfDay(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	at := time.Date(2026, 1, 15, 3, 0, 0, 0, loc)

	end := EndOfDay(at)

	assert.Equal(t, time.Date(2026, 1, 15, 23, 59, 59, 999000000, loc), end)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-01-15", FormatDate(time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2026-01-15 09:30:05", FormatTime(time.Date(2026, 1, 15, 9, 30, 5, 0, time.UTC)))
	assert.Equal(t, "", FormatTime(time.Time{}))
}
