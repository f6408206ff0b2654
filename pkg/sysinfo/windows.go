//go:build windows
// +build windows

package sysinfo

import (
	"fmt"
	"syscall"
)

var (
	user32           = syscall.NewLazyDLL("user32.dll")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// Windows API constants (defined manually)
const (
	smCXScreen  = 0
	smCYScreen  = 1
	smCMonitors = 80
)

// GetDisplays returns the attached displays. Windows reports the primary
// display's geometry; secondary displays are assumed to share it until
// per-monitor enumeration lands.
func GetDisplays() ([]Display, error) {
	width, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("GetSystemMetrics returned zero dimensions")
	}

	count, _, _ := getSystemMetrics.Call(uintptr(smCMonitors))
	if count < 1 {
		count = 1
	}

	displays := make([]Display, count)
	for i := range displays {
		displays[i] = Display{Width: int(width), Height: int(height)}
	}
	return displays, nil
}
