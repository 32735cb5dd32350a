package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

func CreateLogger(serviceName string) logrus.FieldLogger {
	l := logrus.StandardLogger()
	l.SetFormatter(&ecslogrus.Formatter{})
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return l.WithField("service.name", serviceName)
}
