package poller

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/batline/pkg/powerinfo"
)

// DefaultPollInterval is used when continuous mode is requested without an interval.
const DefaultPollInterval = 1 * time.Second

// missedTickThreshold is how late a tick may fire before it is reported.
// Ticks usually arrive late because the host was suspended.
const missedTickThreshold = time.Second

// fixedDelay fires a fixed delay after the time it is given. Unlike
// cron.Every it does not align to whole seconds, so no pause is shorter
// than the interval.
type fixedDelay time.Duration

var _ cron.Schedule = fixedDelay(0)

// Next returns t plus the delay.
func (d fixedDelay) Next(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}

// State is the phase of the poll loop.
type State int

const (
	// Idle is the state before the first tick.
	Idle State = iota
	// Polling means the battery is being read and printed.
	Polling
	// Sleeping means the loop is waiting for the next tick.
	Sleeping
	// Terminated means the loop has returned.
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Polling:
		return "polling"
	case Sleeping:
		return "sleeping"
	case Terminated:
		return "terminated"
	}
	return "invalid"
}

// Printer emits one status line for a reading.
type Printer interface {
	Print(now time.Time, r powerinfo.Reading) error
}

// Poller reads the battery and prints its state, once or on an interval.
type Poller struct {
	source   powerinfo.Source
	printer  Printer
	interval time.Duration
	now      func() time.Time

	state State
}

// New returns a Poller. An interval of zero polls back to back.
func New(source powerinfo.Source, printer Printer, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		printer:  printer,
		interval: interval,
		now:      time.Now,
		state:    Idle,
	}
}

// State returns the current phase of the loop.
func (p *Poller) State() State {
	return p.state
}

func (p *Poller) setState(s State) {
	if p.state == s {
		return
	}
	logrus.WithFields(logrus.Fields{
		"from": p.state,
		"to":   s,
	}).Trace("poller state changed")
	p.state = s
}

// Once samples the battery and prints a single line.
func (p *Poller) Once() error {
	r, err := powerinfo.Sample(p.source)
	if err != nil {
		return err
	}
	return p.printer.Print(p.now(), r)
}

// Run prints a line every interval until ctx is done or a poll fails.
// Every tick prints, whether or not the reading changed.
func (p *Poller) Run(ctx context.Context) error {
	defer p.setState(Terminated)

	var schedule cron.Schedule
	if p.interval > 0 {
		schedule = fixedDelay(p.interval)
	}

	logrus.WithFields(logrus.Fields{
		"interval": p.interval,
	}).Debug("poll loop starts")

	for {
		p.setState(Polling)
		if err := p.Once(); err != nil {
			return err
		}

		p.setState(Sleeping)
		if schedule == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		// Round to strip the monotonic clock reading, so lateness reflects
		// wall time spent in suspend.
		next := schedule.Next(time.Now().Round(0))
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if late := time.Now().Round(0).Sub(next); late > missedTickThreshold {
			logrus.WithFields(logrus.Fields{
				"scheduledAt": next.Format(time.DateTime),
				"late":        late.String(),
			}).Debug("Possibly missed poll ticks")
		}
	}
}
