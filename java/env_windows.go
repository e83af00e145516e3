package java

import (
	"os"
	"path/filepath"

	"github.com/rocketsoftware/find-java/utils/log"
)

// FindInEnvironment checks JAVA_HOME for an installation root, then each
// entry of PATH for the launcher itself. JAVA_HOME always wins over PATH,
// and within PATH the first validated entry wins.
func (f *Finder) FindInEnvironment() (*Installation, bool) {
	if home := os.Getenv(f.homeVar); home != "" {
		if javaPath, ok := f.checkBinPath(home); ok {
			log.Debugf("java found via %s: %s", f.homeVar, javaPath)
			return &Installation{Path: javaPath, Source: f.homeVar + " environment variable"}, true
		}
	}
	for _, dir := range filepath.SplitList(os.Getenv(f.pathVar)) {
		if dir == "" {
			continue
		}
		if javaPath, ok := f.checkPath(dir); ok {
			log.Debugf("java found via %s: %s", f.pathVar, javaPath)
			return &Installation{Path: javaPath, Source: f.pathVar + " environment variable"}, true
		}
	}
	return nil, false
}
