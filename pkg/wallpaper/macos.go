//go:build darwin
// +build darwin

package wallpaper

import (
	"fmt"
	"os/exec"

	"github.com/paperdesk/paperdesk/pkg/sysinfo"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// getOS returns a new instance of the macOSOS struct.
func getOS() OS {
	return &macOSOS{}
}

// GetMonitors returns one target per attached display.
func (m *macOSOS) GetMonitors() ([]Target, error) {
	displays, err := sysinfo.GetDisplays()
	if err != nil {
		return nil, err
	}
	return displaysToTargets(displays), nil
}

// SetWallpaper sets the desktop wallpaper on macOS for the given desktop
// ordinal via AppleScript.
func (m *macOSOS) SetWallpaper(imagePath string, monitorID int) error {
	// System Events desktops are 1-based.
	script := fmt.Sprintf(`
                tell application "System Events"
                        set picture of desktop %d to POSIX file "%s"
                end tell
        `, monitorID+1, imagePath)

	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}

	return nil
}
