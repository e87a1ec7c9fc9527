package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var _ pflag.Value = &intervalValue{}

// intervalValue is a pflag.Value holding a poll interval in whole seconds.
type intervalValue struct {
	d *time.Duration
}

func newIntervalValue(val time.Duration, p *time.Duration) *intervalValue {
	*p = val
	return &intervalValue{d: p}
}

// maxIntervalSeconds is the largest interval a time.Duration can hold.
const maxIntervalSeconds = uint64(math.MaxInt64 / int64(time.Second))

func (v *intervalValue) Set(s string) error {
	seconds, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("unable to parse poll interval %q as whole seconds", s)
	}
	if seconds > maxIntervalSeconds {
		return fmt.Errorf("poll interval %d is too large, max %d seconds", seconds, maxIntervalSeconds)
	}
	*v.d = time.Duration(seconds) * time.Second
	return nil
}

func (v *intervalValue) String() string {
	return strconv.FormatInt(int64(*v.d/time.Second), 10)
}

func (v *intervalValue) Type() string {
	return "seconds"
}

// normalizeArgs rewrites the optional interval of -c/--continuous into the
// attached "=" form pflag understands, so "-c 5", "-c5" and
// "--continuous 5" all mean "-c=5". A following argument that starts with
// "-" is not taken as the interval. Nothing after "--" is touched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "-c" || arg == "--continuous":
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, arg+"="+args[i+1])
				i++
				continue
			}
		case strings.HasPrefix(arg, "-c") && len(arg) > 2 && arg[2] != '=':
			out = append(out, "-c="+arg[2:])
			continue
		}
		out = append(out, arg)
	}
	return out
}

// colorEnabled reports whether ANSI colors should be written to w.
// Colors are opt-in and only used on terminals.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && useColor && term.IsTerminal(int(f.Fd()))
}

// errColor returns c, forced on or off according to stderr.
func errColor(c *color.Color) *color.Color {
	if colorEnabled(os.Stderr) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
