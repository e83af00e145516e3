package utils

import (
	"os/exec"
	"runtime"
	"syscall"
	"unsafe"
)

// HideWindow makes cmd start without a console window.
func HideWindow(cmd *exec.Cmd) {
	var sysProcAttr *syscall.SysProcAttr
	if cmd.SysProcAttr != nil {
		sysProcAttr = cmd.SysProcAttr
	} else {
		sysProcAttr = &syscall.SysProcAttr{}
		cmd.SysProcAttr = sysProcAttr
	}
	sysProcAttr.HideWindow = true
}

var (
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	pGetNativeSystemInfo            = kernel32.NewProc("GetNativeSystemInfo")
	pWow64DisableWow64FsRedirection = kernel32.NewProc("Wow64DisableWow64FsRedirection")
	pWow64RevertWow64FsRedirection  = kernel32.NewProc("Wow64RevertWow64FsRedirection")
)

const (
	ProcessorArchitectureIntel = 0
	ProcessorArchitectureAMD64 = 9
)

type systemInfo struct {
	processorArchitecture     uint16
	reserved                  uint16
	pageSize                  uint32
	minimumApplicationAddress uintptr
	maximumApplicationAddress uintptr
	activeProcessorMask       uintptr
	numberOfProcessors        uint32
	processorType             uint32
	allocationGranularity     uint32
	processorLevel            uint16
	processorRevision         uint16
}

// NativeProcessorArchitecture returns the architecture of the OS itself,
// not the emulated one a WOW64 process normally observes.
func NativeProcessorArchitecture() uint16 {
	var info systemInfo
	pGetNativeSystemInfo.Call(uintptr(unsafe.Pointer(&info)))
	return info.processorArchitecture
}

// FsRedirection holds the token needed to restore WOW64 filesystem
// redirection after it has been suppressed.
type FsRedirection struct {
	oldValue uintptr
	active   bool
	reverted bool
}

// DisableFsRedirection suppresses WOW64 filesystem redirection for the
// current thread so a 32-bit process observes the true filesystem layout.
// The calling goroutine is locked to its OS thread until Revert is called
// because the underlying Win32 state is per-thread. On hosts where
// redirection doesn't apply the guard is inert, but Revert must still be
// called to release the thread.
func DisableFsRedirection() *FsRedirection {
	runtime.LockOSThread()
	var oldValue uintptr
	ret, _, _ := pWow64DisableWow64FsRedirection.Call(uintptr(unsafe.Pointer(&oldValue)))
	return &FsRedirection{oldValue: oldValue, active: ret != 0}
}

// Revert restores the redirection state saved by DisableFsRedirection and
// unlocks the OS thread. Safe to call more than once.
func (r *FsRedirection) Revert() {
	if r == nil || r.reverted {
		return
	}
	if r.active {
		pWow64RevertWow64FsRedirection.Call(r.oldValue)
	}
	r.reverted = true
	runtime.UnlockOSThread()
}
