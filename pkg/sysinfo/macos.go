//go:build darwin
// +build darwin

package sysinfo

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetDisplays parses `system_profiler` for one "Resolution:" line per
// attached display.
func GetDisplays() ([]Display, error) {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resolution: %w", err)
	}

	var displays []Display
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "Resolution:") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		fields := strings.Fields(parts[1])
		// "Resolution: 2560 x 1440 (QHD ...)"
		if len(fields) >= 3 && fields[1] == "x" {
			width, _ := strconv.Atoi(fields[0])
			height, _ := strconv.Atoi(fields[2])
			if width > 0 && height > 0 {
				displays = append(displays, Display{Width: width, Height: height})
			}
		}
	}

	if len(displays) == 0 {
		return nil, fmt.Errorf("failed to parse screen resolution")
	}
	return displays, nil
}
