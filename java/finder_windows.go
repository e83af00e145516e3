// Package java locates a usable Java installation on the host.
//
// Three discovery strategies are tried in a fixed order: the environment
// (JAVA_HOME, then PATH), the Windows registry (JavaSoft keys across
// registry views), and the Program Files directory. A candidate is accepted
// only if its launcher actually runs and exits with status 0.
package java

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/rocketsoftware/find-java/utils"
	"github.com/rocketsoftware/find-java/utils/log"
)

// ErrNotFound is returned by Find when no strategy yields a working Java
// installation. It is an expected outcome, not a failure of the finder.
var ErrNotFound = errors.New("no valid Java installation found")

// Arch is the native processor architecture of the host, which may differ
// from the architecture this process was built for.
type Arch int

const (
	ArchX86 Arch = iota
	ArchAMD64
)

// Installation is a validated Java installation.
type Installation struct {
	Path   string // full path to the launcher executable
	Source string // where the installation was found
}

// Finder probes the host for a Java installation. The zero value is not
// usable; call NewFinder.
type Finder struct {
	// Launcher is the executable name probed for, "java.exe" by default.
	Launcher string

	arch    Arch
	homeVar string
	pathVar string

	// Overridable for tests.
	probe        func(javaPath string) bool
	regString    func(path, name string, access uint32) (string, error)
	programFiles func() (string, error)
}

func NewFinder() *Finder {
	return &Finder{
		Launcher:  "java.exe",
		arch:      nativeArch(),
		homeVar:   "JAVA_HOME",
		pathVar:   "PATH",
		probe:     queryVersion,
		regString: readRegistryStringValue,
		programFiles: func() (string, error) {
			return windows.KnownFolderPath(windows.FOLDERID_ProgramFiles, 0)
		},
	}
}

// Find tries each discovery strategy in priority order and returns the first
// validated installation. Repeated calls with an unchanged host state return
// the same result.
func (f *Finder) Find() (*Installation, error) {
	if inst, ok := f.FindInEnvironment(); ok {
		return inst, nil
	}
	if inst, ok := f.FindInRegistry(); ok {
		return inst, nil
	}
	if inst, ok := f.FindInProgramFiles(); ok {
		return inst, nil
	}
	return nil, ErrNotFound
}

// FindInDir validates a user-supplied Java directory, expecting the launcher
// under dir\bin. Unlike the discovery strategies, an invalid directory is
// reported as an error so the caller can tell the user why it was rejected.
func (f *Finder) FindInDir(dir string) (*Installation, error) {
	fileInfo, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, errors.Errorf("java directory '%s' doesn't exist", dir)
	}
	if err == nil && !fileInfo.IsDir() {
		return nil, errors.Errorf("java directory '%s' is not a directory", dir)
	}
	javaPath, ok := f.checkBinPath(dir)
	if !ok {
		return nil, errors.Errorf("'%s' doesn't contain a working %s", dir, f.Launcher)
	}
	log.Debugf("java found via explicit directory: %s", javaPath)
	return &Installation{Path: javaPath, Source: "explicit directory " + dir}, nil
}

func nativeArch() Arch {
	if utils.NativeProcessorArchitecture() == utils.ProcessorArchitectureAMD64 {
		return ArchAMD64
	}
	return ArchX86
}
