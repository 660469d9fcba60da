// Package format renders analytics values for display.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Count renders an integer count with thousands separators.
func Count(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.Comma(math.MaxInt64)
	}
	return humanize.Comma(int64(n))
}

// Number renders a metric value. Whole numbers have no decimals.
func Number(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "-"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return humanize.Comma(int64(f))
	}
	return humanize.CommafWithDigits(f, 2)
}

// Money renders a USD amount with two decimals.
func Money(usd float64) string {
	sign := ""
	if usd < 0 {
		sign = "-"
		usd = -usd
	}
	whole := math.Floor(usd)
	cents := math.Round((usd - whole) * 100)
	if cents >= 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(int64(whole)), int(cents))
}

// Duration renders seconds as m:ss or h:mm:ss.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Ago renders t relative to now, e.g. "3 hours ago".
func Ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
