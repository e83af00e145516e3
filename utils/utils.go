package utils

import (
	"os"

	"github.com/pkg/errors"
)

func CreateProductWorkDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create product work dir %s", dir)
	}
	return nil
}

func OpenOrCreateProductLogFile(filename string) (*os.File, error) {
	logFile, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open product log file %s", filename)
	}
	return logFile, nil
}

func QuoteString(s string) string {
	return `"` + s + `"`
}
