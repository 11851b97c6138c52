package dashboard

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	barWidth   = 30
	gaugeWidth = 40
)

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func green(format string, a ...interface{}) string {
	return color.New(color.Bold, color.FgGreen).Sprintf(format, a...)
}

func red(format string, a ...interface{}) string {
	return color.New(color.Bold, color.FgRed).Sprintf(format, a...)
}

func yellow(format string, a ...interface{}) string {
	return color.New(color.Bold, color.FgYellow).Sprintf(format, a...)
}

// progressBar renders fraction (0..1) as a fixed-width bar.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(fraction*float64(width) + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// hbar renders value as a horizontal bar scaled against max.
func hbar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	if value > max {
		value = max
	}
	n := int(value/max*float64(width) + 0.5)
	return strings.Repeat("█", n)
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// gauge renders a single-value indicator on a fixed [lo, hi] axis with
// three shaded threshold bands at 30% and 70% of the axis, and a pointer
// clamped to the axis.
func gauge(value, lo, hi float64, width int) string {
	span := hi - lo
	frac := 0.0
	if span > 0 {
		frac = (value - lo) / span
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	cells := make([]rune, width)
	for i := range cells {
		f := float64(i) / float64(width-1)
		switch {
		case f < 0.3:
			cells[i] = '░'
		case f < 0.7:
			cells[i] = '▒'
		default:
			cells[i] = '▓'
		}
	}

	pos := int(frac*float64(width-1) + 0.5)
	pointer := strings.Repeat(" ", pos+1) + "▼"

	axis := fmt.Sprintf("%-*v%v", width, lo, hi)

	return pointer + "\n[" + string(cells) + "]\n " + axis
}
