package sysfs

import (
	"fmt"

	"github.com/distatus/battery"
	"github.com/sirupsen/logrus"
)

// getAllBatteries is swapped in tests.
var getAllBatteries = battery.GetAll

// Probe describes every battery the host exposes, one entry each.
// It is used for diagnostics only, when the expected battery is missing.
func Probe() []string {
	batteries, err := getAllBatteries()
	if err != nil {
		// Partial errors still come with usable batteries.
		logrus.WithError(err).Debug("battery probe reported errors")
	}

	var found []string
	for i, bat := range batteries {
		if bat == nil {
			continue
		}
		desc := fmt.Sprintf("battery #%d: %v", i, bat.State)
		if bat.Full > 0 {
			desc += fmt.Sprintf(", %.0f%%", bat.Current/bat.Full*100)
		}
		found = append(found, desc)
	}

	return found
}
