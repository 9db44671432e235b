package gwp

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across environments.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Abbreviation thresholds for large emission figures.
const (
	millionThreshold = 1_000_000
	billionThreshold = 1_000_000_000
)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(6192563) returns "6,192,563".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatQuantity formats an emission quantity for display. Whole values drop
// the fraction entirely; fractional values keep up to one decimal so figures
// like 6,282,888.5 survive a round trip through the report.
func FormatQuantity(v float64) string {
	rounded := math.Round(v)
	if v == rounded {
		return FormatNumber(int64(rounded))
	}
	s := fmt.Sprintf("%.1f", v)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot+1:]
	var n int64
	if _, err := fmt.Sscanf(intPart, "%d", &n); err != nil {
		return s
	}
	return FormatNumber(n) + "." + frac
}

// FormatIntensity formats an intensity ratio with six decimal places, the
// precision the dashboard uses for carbon-intensity KPIs.
func FormatIntensity(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// FormatLarge abbreviates large figures for constrained displays.
// Values at or above one million use "~X.X million"; one billion and up use
// "~X.X billion"; smaller values use comma-separated integers.
func FormatLarge(v float64) string {
	if v >= billionThreshold {
		return fmt.Sprintf("~%.1f billion", v/billionThreshold)
	}
	if v >= millionThreshold {
		return fmt.Sprintf("~%.1f million", v/millionThreshold)
	}
	return FormatNumber(int64(math.Round(v)))
}
