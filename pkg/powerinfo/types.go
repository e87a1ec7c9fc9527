package powerinfo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BatteryStatus represents the charging state reported by the kernel.
type BatteryStatus int

const (
	// Charging indicates the battery is charging.
	Charging BatteryStatus = iota
	// Discharging indicates the battery is discharging.
	Discharging
	// Full indicates the battery is full.
	Full
	// Unknown indicates the kernel literally reported "Unknown".
	Unknown
)

var (
	// ErrInvalidStatus is returned when the status text is not one of the known words.
	ErrInvalidStatus = errors.New("invalid battery status")

	// ErrInvalidLevel is returned when the capacity text is not an unsigned integer.
	ErrInvalidLevel = errors.New("invalid battery capacity")
)

var statusNames = map[BatteryStatus]string{
	Charging:    "Charging",
	Discharging: "Discharging",
	Full:        "Full",
	Unknown:     "Unknown",
}

func (s BatteryStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BatteryStatus(%d)", int(s))
}

// ParseStatus parses the content of a power supply status file.
// Surrounding whitespace is ignored, matching is case-sensitive.
func ParseStatus(text string) (BatteryStatus, error) {
	switch strings.TrimSpace(text) {
	case "Charging":
		return Charging, nil
	case "Discharging":
		return Discharging, nil
	case "Full":
		return Full, nil
	case "Unknown":
		return Unknown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, text)
}

// Level is the remaining charge in percent. The kernel reports 0-100.
type Level uint8

// FullLevel is assumed when the battery reports Full, regardless of capacity.
const FullLevel Level = 100

// ParseLevel parses the content of a power supply capacity file.
func ParseLevel(text string) (Level, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number in range 0..100", ErrInvalidLevel, text)
	}
	return Level(v), nil
}
