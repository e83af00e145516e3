package log

import (
	"io"
	logger "log"
)

var debug bool

// SetDebug enables Debugf output. Diagnostic messages are informational
// only and never change behavior.
func SetDebug(enabled bool) {
	debug = enabled
}

func Debugf(format string, v ...interface{}) {
	if debug {
		logger.Printf(format, v...)
	}
}

func Fatal(v ...interface{}) {
	logger.Fatal(v...)
}

func Println(v ...interface{}) {
	logger.Println(v...)
}

func Printf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func init() {
	logger.SetFlags(logger.LstdFlags | logger.Lmicroseconds)
}
