package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func newFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
}

// SetupLogging returns the request logger and switches the standard logrus
// logger to the same JSON format.
func SetupLogging() *logrus.Logger {
	logrus.SetFormatter(newFormatter())
	logrus.SetOutput(os.Stdout)

	logger := logrus.New()
	logger.Formatter = newFormatter()
	logger.Out = os.Stdout
	logger.Level = logrus.InfoLevel

	return logger
}
