package core

// Logger is the leveled logging interface the renderer reports progress
// through. *logging.Logger from github.com/op/go-logging satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}
