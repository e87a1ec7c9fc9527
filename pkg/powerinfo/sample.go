package powerinfo

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Source provides the raw content of a battery's status and capacity files.
type Source interface {
	ReadStatus() (string, error)
	ReadCapacity() (string, error)
}

// Reading is the classified state of a battery at one point in time.
type Reading struct {
	Status BatteryStatus
	Level  Level
}

// Sample reads and classifies the battery state from src.
//
// Capacity is not read when the battery is Full: some firmware reports a
// stale or missing capacity in that state, so the level is taken as 100.
func Sample(src Source) (Reading, error) {
	statusText, err := src.ReadStatus()
	if err != nil {
		return Reading{}, fmt.Errorf("failed to get battery status: %w", err)
	}

	status, err := ParseStatus(statusText)
	if err != nil {
		return Reading{}, fmt.Errorf("unable to parse battery status: %w", err)
	}

	if status == Full {
		return Reading{Status: Full, Level: FullLevel}, nil
	}

	levelText, err := src.ReadCapacity()
	if err != nil {
		return Reading{}, fmt.Errorf("failed to get battery capacity: %w", err)
	}

	level, err := ParseLevel(levelText)
	if err != nil {
		return Reading{}, fmt.Errorf("unable to parse battery capacity: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"status": status,
		"level":  level,
	}).Trace("battery sampled")

	return Reading{Status: status, Level: level}, nil
}
