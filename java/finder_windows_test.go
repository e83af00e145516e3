package java

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows/registry"
)

// newTestFinder returns a Finder whose probes are faked out: a candidate
// launcher is considered runnable iff its full path is in valid. The
// registry and Program Files strategies find nothing unless a test wires
// them up explicitly.
func newTestFinder(valid map[string]bool) *Finder {
	f := NewFinder()
	f.arch = ArchX86
	f.probe = func(javaPath string) bool { return valid[javaPath] }
	f.regString = func(path, name string, access uint32) (string, error) {
		return "", registry.ErrNotExist
	}
	f.programFiles = func() (string, error) {
		return "", errors.New("program files folder unavailable")
	}
	return f
}

// installFakeJava creates <root>\bin\java.exe (or <root>\java.exe when
// bin is false) and returns the launcher path.
func installFakeJava(t *testing.T, root string, bin bool) string {
	t.Helper()
	dir := root
	if bin {
		dir = filepath.Join(root, "bin")
	}
	require.NoError(t, os.MkdirAll(dir, 0755))
	javaPath := filepath.Join(dir, "java.exe")
	require.NoError(t, os.WriteFile(javaPath, []byte("MZ"), 0755))
	return javaPath
}

func TestFindPrefersEnvironmentOverRegistry(t *testing.T) {
	envHome := t.TempDir()
	regHome := t.TempDir()
	envJava := installFakeJava(t, envHome, true)
	regJava := installFakeJava(t, regHome, true)

	f := newTestFinder(map[string]bool{envJava: true, regJava: true})
	f.regString = fakeRegistry(map[uint32]map[string]string{
		0: {
			`SOFTWARE\JavaSoft\Java Runtime Environment|CurrentVersion`: "1.7",
			`SOFTWARE\JavaSoft\Java Runtime Environment\1.7|JavaHome`:   regHome,
		},
	}, nil)
	t.Setenv("JAVA_HOME", envHome)
	t.Setenv("PATH", "")

	installation, err := f.Find()
	require.NoError(t, err)
	require.Equal(t, envJava, installation.Path)
	require.Equal(t, "JAVA_HOME environment variable", installation.Source)
}

func TestFindFallsThroughToRegistry(t *testing.T) {
	regHome := t.TempDir()
	regJava := installFakeJava(t, regHome, true)

	f := newTestFinder(map[string]bool{regJava: true})
	f.regString = fakeRegistry(map[uint32]map[string]string{
		0: {
			`SOFTWARE\JavaSoft\Java Runtime Environment|CurrentVersion`: "1.7",
			`SOFTWARE\JavaSoft\Java Runtime Environment\1.7|JavaHome`:   regHome,
		},
	}, nil)
	t.Setenv("JAVA_HOME", "")
	t.Setenv("PATH", "")

	installation, err := f.Find()
	require.NoError(t, err)
	require.Equal(t, regJava, installation.Path)
}

func TestFindReportsNotFound(t *testing.T) {
	f := newTestFinder(nil)
	t.Setenv("JAVA_HOME", "")
	t.Setenv("PATH", "")

	installation, err := f.Find()
	require.Nil(t, installation)
	require.Equal(t, ErrNotFound, err)
}

func TestFindIsIdempotent(t *testing.T) {
	home := t.TempDir()
	javaPath := installFakeJava(t, home, true)
	f := newTestFinder(map[string]bool{javaPath: true})
	t.Setenv("JAVA_HOME", home)
	t.Setenv("PATH", "")

	first, err := f.Find()
	require.NoError(t, err)
	second, err := f.Find()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFindInDir(t *testing.T) {
	home := t.TempDir()
	javaPath := installFakeJava(t, home, true)
	f := newTestFinder(map[string]bool{javaPath: true})

	installation, err := f.FindInDir(home)
	require.NoError(t, err)
	require.Equal(t, javaPath, installation.Path)
}

func TestFindInDirMissingDirectory(t *testing.T) {
	f := newTestFinder(nil)
	_, err := f.FindInDir(filepath.Join(t.TempDir(), "no-such-dir"))
	require.Error(t, err)
}

func TestFindInDirWithoutLauncher(t *testing.T) {
	f := newTestFinder(nil)
	_, err := f.FindInDir(t.TempDir())
	require.Error(t, err)
}
