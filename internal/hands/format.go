package hands

import "fmt"

// FormatSpeed renders km/h, switching to scientific notation from 1000 up.
func FormatSpeed(kmh float64) string {
	if kmh >= 1000 {
		return fmt.Sprintf("%.2e km/h", kmh)
	}
	return fmt.Sprintf("%.2f km/h", kmh)
}

// FormatLightRatio renders a fraction of c as a percentage.
func FormatLightRatio(ratio float64) string {
	pct := ratio * 100
	if pct >= 0.001 {
		return fmt.Sprintf("%.4f %%", pct)
	}
	return fmt.Sprintf("%.2e %%", pct)
}

// FormatPeriod renders a period in seconds with six decimals.
func FormatPeriod(seconds float64) string {
	return fmt.Sprintf("%.6f s", seconds)
}
