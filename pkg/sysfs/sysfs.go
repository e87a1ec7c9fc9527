package sysfs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDir is the power supply directory of the first battery.
	DefaultDir = "/sys/class/power_supply/BAT0"

	statusFile   = "status"
	capacityFile = "capacity"
)

// ErrNotPresent is returned when a power supply file cannot be opened,
// which usually means the battery does not exist on this host.
var ErrNotPresent = errors.New("battery not present")

// PowerSupply reads the raw attribute files of a single power supply.
type PowerSupply struct {
	dir string
}

// New returns a PowerSupply rooted at dir.
func New(dir string) *PowerSupply {
	return &PowerSupply{dir: dir}
}

// Dir returns the directory the power supply is read from.
func (p *PowerSupply) Dir() string {
	return p.dir
}

// ReadStatus returns the raw content of the status file.
func (p *PowerSupply) ReadStatus() (string, error) {
	return p.read(statusFile)
}

// ReadCapacity returns the raw content of the capacity file.
func (p *PowerSupply) ReadCapacity() (string, error) {
	return p.read(capacityFile)
}

func (p *PowerSupply) read(name string) (string, error) {
	path := filepath.Join(p.dir, name)

	logrus.WithFields(logrus.Fields{
		"path": path,
	}).Trace("Trying to read power supply attribute")

	fp, err := os.Open(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Debug("power supply attribute unavailable")
		return "", pkgerrors.Wrapf(ErrNotPresent, "cannot open %s", path)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", path)
		}
	}(fp)

	// Opened but unreadable is not absence.
	b, err := io.ReadAll(fp)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to read %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"val":  string(b),
	}).Trace("Read power supply attribute succeed")

	return string(b), nil
}
