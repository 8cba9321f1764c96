// Package logging configures the logrus logger used by the command line.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup returns a logger writing to w. An unknown level falls back to info,
// and any format other than "json" is plain text.
func Setup(level, format string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return log
}
