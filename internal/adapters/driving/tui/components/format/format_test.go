package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	assert.Equal(t, "0", Count(0))
	assert.Equal(t, "1,234,567", Count(1234567))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{1500, "1,500"},
		{-42, "-42"},
		{12.5, "12.5"},
		{1234.567, "1,234.57"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Number(tt.in))
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$1,234.50", Money(1234.5))
	assert.Equal(t, "$3.00", Money(2.999))
	assert.Equal(t, "-$1.25", Money(-1.25))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "0:45", Duration(45))
	assert.Equal(t, "12:03", Duration(723))
	assert.Equal(t, "1:01:01", Duration(3661))
	assert.Equal(t, "0:00", Duration(-5))
}

func TestAgo(t *testing.T) {
	assert.Equal(t, "-", Ago(time.Time{}))
	assert.Contains(t, Ago(time.Now().Add(-3*time.Hour)), "hours ago")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
