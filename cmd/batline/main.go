package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/batline/pkg/display"
	"github.com/charlie0129/batline/pkg/poller"
	"github.com/charlie0129/batline/pkg/powerinfo"
	"github.com/charlie0129/batline/pkg/sysfs"
	"github.com/charlie0129/batline/pkg/version"
)

var (
	// warn keeps stderr quiet unless something goes wrong.
	logLevel       = "warn"
	useColor       = false
	powerSupplyDir = sysfs.DefaultDir
)

// newSource is swapped in tests.
var newSource = func(dir string) powerinfo.Source {
	return sysfs.New(dir)
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(w io.Writer, err error) {
	if errors.Is(err, sysfs.ErrNotPresent) {
		fmt.Fprintln(w, errColor(color.New(color.Bold, color.FgRed)).Sprintf("\nError: no battery found at %s", powerSupplyDir))
		batteries := sysfs.Probe()
		if len(batteries) == 0 {
			fmt.Fprintln(w, "This host does not seem to expose any battery.")
			return
		}
		fmt.Fprintln(w, "Other batteries on this host:")
		for _, b := range batteries {
			fmt.Fprintf(w, "  - %s\n", b)
		}
	}
}

func main() {
	cmd := NewCommand()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		handleCmdError(os.Stderr, err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "batline",
		Short: "batline prints a one-line laptop battery status",
		Long: `batline prints a one-line laptop battery status, like

  2024-03-09 07:05 - 🔋83-

The number is the charge in percent, followed by + when charging and - when
discharging. A full battery is shown as 🔋✓ and an unknown state as 🔋?!.`,
		Version:      version.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := poller.New(newSource(powerSupplyDir), display.NewPrinter(out, colorEnabled(out)), interval)

			if !cmd.Flags().Changed("continuous") {
				return p.Once()
			}

			return p.Run(cmd.Context())
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("{{.Version}} %s\n", version.GitCommit))

	f := cmd.Flags()
	// The help text predates the current behavior: every tick prints.
	f.VarP(newIntervalValue(0, &interval), "continuous", "c",
		"run forever, printing a new line when things change. If a value is given, it is the poll interval in seconds")
	f.Lookup("continuous").NoOptDefVal = strconv.Itoa(int(poller.DefaultPollInterval / time.Second))

	f.BoolVar(&useColor, "color", false, "colorize the battery glyph when writing to a terminal")

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "log level (trace, debug, info, warn, error, fatal, panic)")

	return cmd
}
