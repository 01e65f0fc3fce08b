// Package logging configures the process-wide structured logger. Log lines
// go to stderr so they never interleave with the terminal session contract
// on stdout.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	Log.SetLevel(logrus.WarnLevel)
}

// Setup adjusts verbosity. Verbose mode surfaces per-operation debug lines.
func Setup(verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.WarnLevel)
	}
}

// Discard silences the logger entirely; used by tests.
func Discard() {
	Log.SetOutput(io.Discard)
}
