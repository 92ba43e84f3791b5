package common

import (
	"math"
	"strconv"
)

// Round rounds number to the given number of decimal digits, halves towards +Inf.
func Round(number float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Floor(number*factor+0.5) / factor
}

// Format renders number rounded to digits decimals without trailing zeros.
func Format(number float64, digits int) string {
	return strconv.FormatFloat(Round(number, digits), 'f', -1, 64)
}

// TimeFormat renders a simulated duration in seconds as "42s", "3min5s" or "1h2min3s".
func TimeFormat(seconds float64) string {
	total := int(seconds)
	if seconds < 60 {
		return strconv.Itoa(total) + "s"
	}
	m := total / 60
	s := total % 60
	if m < 60 {
		return strconv.Itoa(m) + "min" + strconv.Itoa(s) + "s"
	}
	h := m / 60
	m = m % 60
	return strconv.Itoa(h) + "h" + strconv.Itoa(m) + "min" + strconv.Itoa(s) + "s"
}
