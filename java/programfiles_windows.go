package java

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rocketsoftware/find-java/utils"
	"github.com/rocketsoftware/find-java/utils/log"
)

// FindInProgramFiles scans <Program Files>\Java for installation directories.
// For a 32-bit process on a 64-bit host that scan is redirected to
// "Program Files (x86)", so if it finds nothing the scan is repeated with
// filesystem redirection suppressed to cover the true Program Files.
func (f *Finder) FindInProgramFiles() (*Installation, bool) {
	if inst, ok := f.scanProgramFiles(); ok {
		return inst, true
	}
	if f.arch == ArchAMD64 {
		redirection := utils.DisableFsRedirection()
		defer redirection.Revert()
		return f.scanProgramFiles()
	}
	return nil, false
}

func (f *Finder) scanProgramFiles() (*Installation, bool) {
	programFiles, err := f.programFiles()
	if err != nil {
		log.Debugf("unable to resolve the Program Files folder: %v", err)
		return nil, false
	}
	javaDir := filepath.Join(programFiles, "Java")
	if !dirExists(javaDir) {
		return nil, false
	}
	entries, err := os.ReadDir(javaDir)
	if err != nil {
		log.Debugf("unable to enumerate %s: %v", javaDir, err)
		return nil, false
	}
	// Directory names start with "j" for both jdk* and jre* conventions.
	// Every entry is scanned and the last validated one wins, so the result
	// follows filesystem enumeration order, not version order.
	var found string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(strings.ToLower(entry.Name()), "j") {
			continue
		}
		if javaPath, ok := f.checkBinPath(filepath.Join(javaDir, entry.Name())); ok {
			found = javaPath
		}
	}
	if found == "" {
		return nil, false
	}
	log.Debugf("java found via Program Files: %s", found)
	return &Installation{Path: found, Source: "Program Files directory - " + javaDir}, true
}
