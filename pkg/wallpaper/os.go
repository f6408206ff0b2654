package wallpaper

import "github.com/paperdesk/paperdesk/pkg/sysinfo"

// DetectOS returns the OS implementation for the current platform.
func DetectOS() OS {
	return getOS()
}

// displaysToTargets assigns ordinals to detected displays.
func displaysToTargets(displays []sysinfo.Display) []Target {
	targets := make([]Target, len(displays))
	for i, d := range displays {
		targets[i] = Target{ID: i, Width: d.Width, Height: d.Height}
	}
	return targets
}
