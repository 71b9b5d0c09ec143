package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sakha-ai/sakha-tui/internal/config"
)

// New returns the application logger. The TUI owns stdout, so log output
// goes to the file next to the config; when the file cannot be opened the
// logger is silenced rather than corrupting the screen.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if os.Getenv("SAKHA_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	path, err := config.LogPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(file)

	return log
}
