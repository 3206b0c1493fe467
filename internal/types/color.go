package types

import (
	"math"
	"regexp"
	"strconv"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidHexColor reports whether color is a 6-digit hex color string like
// "#2c3e50". Shorthand forms are rejected; the renderer only trusts this shape.
func IsValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// Luminance returns the WCAG relative luminance (0-1) of a hex color.
// Invalid colors yield 0.
func Luminance(hex string) float64 {
	if !IsValidHexColor(hex) {
		return 0
	}

	channel := func(s string) float64 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0
		}
		c := float64(v) / 255
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}

	r := channel(hex[1:3])
	g := channel(hex[3:5])
	b := channel(hex[5:7])

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsLowContrastForDarkMode reports whether a color may be hard to read on the
// dark backgrounds some email clients impose. Callers use this to warn, never
// to reject.
func IsLowContrastForDarkMode(hex string) bool {
	return Luminance(hex) < 0.25
}
