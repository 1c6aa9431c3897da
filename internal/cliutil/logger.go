// Package cliutil holds the small pieces of ambient infrastructure the
// gratesheet CLI needs that aren't part of the cell engine itself:
// logger construction and the sheet script file format.
package cliutil

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the CLI's logger. Output always goes to stderr so
// stdout stays reserved for sheet rendering (print/get); verbose raises
// the level to Debug, matching the --verbose flag.
func NewLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.Level = logrus.InfoLevel
	if verbose {
		log.Level = logrus.DebugLevel
	}
	return log
}
