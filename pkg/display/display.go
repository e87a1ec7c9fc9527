// Package display renders battery readings as one-line status reports.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/charlie0129/batline/pkg/powerinfo"
)

const (
	// TimestampLayout formats the local time with minute precision.
	TimestampLayout = "2006-01-02 15:04"

	// BatteryGlyph prefixes every status token.
	BatteryGlyph = "🔋"
	// FullGlyph is printed when the battery is full, without a level.
	FullGlyph = BatteryGlyph + "✓"
)

// Glyph returns the status token for a reading, e.g. "🔋42+".
func Glyph(status powerinfo.BatteryStatus, level powerinfo.Level) string {
	switch status {
	case powerinfo.Full:
		return FullGlyph
	case powerinfo.Charging:
		return fmt.Sprintf("%s%d+", BatteryGlyph, level)
	case powerinfo.Discharging:
		return fmt.Sprintf("%s%d-", BatteryGlyph, level)
	default:
		return BatteryGlyph + "?!"
	}
}

// Render returns the status line "YYYY-MM-DD HH:MM - <glyph>" in local time.
func Render(now time.Time, status powerinfo.BatteryStatus, level powerinfo.Level) string {
	return now.Local().Format(TimestampLayout) + " - " + Glyph(status, level)
}

// Printer writes one status line per call.
type Printer struct {
	w        io.Writer
	colorize bool
}

// NewPrinter returns a Printer writing to w. ANSI colors are only added
// when colorize is set; callers enable it for terminals.
func NewPrinter(w io.Writer, colorize bool) *Printer {
	return &Printer{
		w:        w,
		colorize: colorize,
	}
}

// Print writes the status line for a reading taken at now.
func (p *Printer) Print(now time.Time, r powerinfo.Reading) error {
	line := Render(now, r.Status, r.Level)
	if p.colorize {
		line = now.Local().Format(TimestampLayout) + " - " + statusColor(r.Status).Sprint(Glyph(r.Status, r.Level))
	}

	_, err := fmt.Fprintln(p.w, line)
	return err
}

func statusColor(status powerinfo.BatteryStatus) *color.Color {
	var c *color.Color
	switch status {
	case powerinfo.Full, powerinfo.Charging:
		c = color.New(color.Bold, color.FgGreen)
	case powerinfo.Discharging:
		c = color.New(color.Bold, color.FgRed)
	default:
		c = color.New(color.Bold, color.FgYellow)
	}
	c.EnableColor()
	return c
}
