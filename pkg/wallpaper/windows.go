//go:build windows
// +build windows

package wallpaper

import (
	"syscall"
	"unsafe"

	"github.com/paperdesk/paperdesk/pkg/sysinfo"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// windowsOS implements the OS interface for Windows.
type windowsOS struct{}

// Windows API constants (defined manually)
const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

// getOS returns a new instance of the windowsOS struct.
func getOS() OS {
	return &windowsOS{}
}

// GetMonitors returns one target per attached display.
func (w *windowsOS) GetMonitors() ([]Target, error) {
	displays, err := sysinfo.GetDisplays()
	if err != nil {
		return nil, err
	}
	return displaysToTargets(displays), nil
}

// SetWallpaper sets the wallpaper to the given image file path. The
// SystemParametersInfo API addresses the whole desktop, so the monitor
// ordinal is ignored here.
func (w *windowsOS) SetWallpaper(imagePath string, monitorID int) error {
	imagePathUTF16, err := syscall.UTF16PtrFromString(imagePath)
	if err != nil {
		return err
	}

	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(imagePathUTF16)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return callErr
	}

	return nil
}
