package initializers

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func SetupLogger() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetOutput(os.Stdout)
}
