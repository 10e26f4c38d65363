package layout

import (
	"math"
	"unicode/utf8"
)

// FitFontSize picks the body size for a file so that its longest line fits
// in availableWidth without wrapping. The longest line is chosen by character
// count and measured at baseSize; if it does not fit, baseSize is scaled down
// proportionally and clamped to [MinFontSize, baseSize].
func FitFontSize(lines []string, m Metrics, family Font, baseSize int, availableWidth float64) int {
	if len(lines) == 0 {
		return baseSize
	}

	longest := lines[0]
	longestLen := utf8.RuneCountInString(longest)
	for _, l := range lines[1:] {
		if n := utf8.RuneCountInString(l); n > longestLen {
			longest, longestLen = l, n
		}
	}

	family.Size = float64(baseSize)
	width := m.StringWidth(longest, family)
	if width <= availableWidth {
		return baseSize
	}

	scale := availableWidth / math.Max(width, 1)
	scaled := int(math.Floor(float64(baseSize) * scale))
	return max(MinFontSize, min(baseSize, scaled))
}

// Leading is the line advance for body text at size.
func Leading(size int) float64 {
	return float64(max(size+1, MinLeading))
}
