package java

import (
	"syscall"

	"golang.org/x/sys/windows/registry"

	"github.com/rocketsoftware/find-java/utils/log"
)

const javaSoftKey = `SOFTWARE\JavaSoft`

// Products registered under the JavaSoft key, most common install first.
var registryProducts = []string{"Java Runtime Environment", "Java Development Kit"}

// FindInRegistry walks HKLM\SOFTWARE\JavaSoft for an installed JRE or JDK.
// The walk is done with the process's default registry view first. A 32-bit
// process on a 64-bit host only sees the 32-bit view by default, and Java may
// be registered under either view, so on a 64-bit host the walk is repeated
// forcing the 32-bit view and then the 64-bit view. The first candidate that
// validates wins and stops all further attempts.
func (f *Finder) FindInRegistry() (*Installation, bool) {
	if inst, ok := f.findInRegistryView(0); ok {
		return inst, true
	}
	if f.arch == ArchAMD64 {
		if inst, ok := f.findInRegistryView(registry.WOW64_32KEY); ok {
			return inst, true
		}
		if inst, ok := f.findInRegistryView(registry.WOW64_64KEY); ok {
			return inst, true
		}
	}
	return nil, false
}

func (f *Finder) findInRegistryView(access uint32) (*Installation, bool) {
	for _, product := range registryProducts {
		productKey := javaSoftKey + `\` + product
		version, err := f.regString(productKey, "CurrentVersion", access)
		if err != nil {
			continue
		}
		javaHome, err := f.regString(productKey+`\`+version, "JavaHome", access)
		if err != nil {
			continue
		}
		if javaPath, ok := f.checkBinPath(javaHome); ok {
			log.Debugf("java found via registry: %s", javaPath)
			return &Installation{Path: javaPath, Source: `Windows Registry - LOCAL_MACHINE\` + productKey}, true
		}
	}
	return nil, false
}

// Registry value reads start with a 4 KB buffer (MAX_PATH is 260, so that
// covers any sane value) and double it on ERROR_MORE_DATA up to 64 KB.
// A value that still doesn't fit is treated as not found.
const (
	initialValueBufferSize = 4096
	maxValueBufferSize     = 64 * 1024
)

func readRegistryStringValue(path, name string, access uint32) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE|access)
	if err != nil {
		return "", err
	}
	defer key.Close()
	return readStringValue(key.GetValue, name)
}

// readStringValue reads a string value through getValue, growing the buffer
// until the value fits or the bound is reached.
func readStringValue(getValue func(name string, buf []byte) (int, uint32, error), name string) (string, error) {
	for size := initialValueBufferSize; size <= maxValueBufferSize; size *= 2 {
		buf := make([]byte, size)
		n, valType, err := getValue(name, buf)
		if err == registry.ErrShortBuffer {
			continue
		}
		if err != nil {
			return "", err
		}
		if valType != registry.SZ && valType != registry.EXPAND_SZ {
			return "", registry.ErrUnexpectedType
		}
		return utf16BytesToString(buf[:n]), nil
	}
	return "", registry.ErrNotExist
}

func utf16BytesToString(buf []byte) string {
	u := make([]uint16, len(buf)/2)
	for i := range u {
		u[i] = uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
	}
	return syscall.UTF16ToString(u)
}
