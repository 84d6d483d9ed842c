package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup configures the process logger. A TUI owns the terminal, so
// logs go to a file under the state directory; failures to open it
// fall back to discarding (never to stderr, which would corrupt the
// display).
func Setup(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	path, err := logPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}

// logPath resolves the log file location:
// 1. PSCPREP_LOG environment variable
// 2. $XDG_STATE_HOME/pscprep/pscprep.log
// 3. ~/.local/state/pscprep/pscprep.log
func logPath() (string, error) {
	if p := os.Getenv("PSCPREP_LOG"); p != "" {
		return p, os.MkdirAll(filepath.Dir(p), 0o755)
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "pscprep", "pscprep.log")
	return p, os.MkdirAll(filepath.Dir(p), 0o755)
}
