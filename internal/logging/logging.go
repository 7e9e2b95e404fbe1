package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the JSON logger handed to every component. The logrus
// standard logger gets the same format so package level calls match.
func SetupLogging() *logrus.Logger {
	logger := logrus.New()
	configure(logger)
	configure(logrus.StandardLogger())
	return logger
}

// SetLevel applies level to logger and to the standard logger.
func SetLevel(logger *logrus.Logger, level logrus.Level) {
	logger.SetLevel(level)
	logrus.SetLevel(level)
}

func configure(logger *logrus.Logger) {
	logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
}
