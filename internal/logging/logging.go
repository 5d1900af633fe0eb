package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// serviceName is attached to every entry emitted through LogData so log
// aggregation can tell this service's lines apart.
const serviceName = "fintrack-server"

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyMsg:   "message",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	return &logger
}
