//go:build linux
// +build linux

package sysinfo

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// xrandr mode lines look like "HDMI-1 connected primary 1920x1080+0+0 ...".
var xrandrModeRegex = regexp.MustCompile(`^(\d+)x(\d+)\+\d+\+\d+$`)

// GetDisplays returns the geometry of every connected display, in xrandr
// output order (the primary display comes first on most setups).
func GetDisplays() ([]Display, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		// Headless X or Wayland without XWayland; fall back to the root
		// window dimensions.
		w, h, ferr := getRootDimensions()
		if ferr != nil {
			return nil, fmt.Errorf("failed to enumerate displays: %w", err)
		}
		return []Display{{Width: w, Height: h}}, nil
	}

	var displays []Display
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if m := xrandrModeRegex.FindStringSubmatch(field); m != nil {
				width, _ := strconv.Atoi(m[1])
				height, _ := strconv.Atoi(m[2])
				displays = append(displays, Display{Width: width, Height: height})
				break
			}
		}
	}

	if len(displays) == 0 {
		return nil, fmt.Errorf("no connected displays found in xrandr output")
	}
	return displays, nil
}

// getRootDimensions parses `xdpyinfo` for the root window size, e.g.
// "dimensions:    1920x1080 pixels (508x285 millimeters)".
func getRootDimensions() (int, int, error) {
	out, err := exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}

	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			dimensions := strings.Split(parts[1], "x")
			if len(dimensions) == 2 {
				width, _ := strconv.Atoi(dimensions[0])
				height, _ := strconv.Atoi(dimensions[1])
				return width, height, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("failed to parse screen resolution")
}
