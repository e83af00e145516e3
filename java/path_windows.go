package java

import (
	"os"
	"path/filepath"

	"github.com/rocketsoftware/find-java/utils"
)

// checkPath reports whether dir contains a runnable launcher, returning the
// launcher's full path on success. The existence test and the probe run with
// WOW64 filesystem redirection suppressed so the true filesystem layout is
// observed even from a 32-bit process.
func (f *Finder) checkPath(dir string) (string, bool) {
	javaPath := filepath.Join(dir, f.Launcher)
	redirection := utils.DisableFsRedirection()
	defer redirection.Revert()
	if !fileExists(javaPath) {
		return "", false
	}
	if !f.probe(javaPath) {
		return "", false
	}
	return javaPath, true
}

// checkBinPath is checkPath for installation roots whose launcher lives
// under <root>\bin.
func (f *Finder) checkBinPath(dir string) (string, bool) {
	return f.checkPath(filepath.Join(dir, "bin"))
}

func fileExists(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && !fileInfo.IsDir()
}

func dirExists(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && fileInfo.IsDir()
}
