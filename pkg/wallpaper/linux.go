//go:build linux
// +build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/paperdesk/paperdesk/pkg/sysinfo"
)

// linuxOS implements the OS interface for Linux.
type linuxOS struct{}

// getOS returns a new instance of the linuxOS struct.
func getOS() OS {
	return &linuxOS{}
}

// GetMonitors returns one target per connected display.
func (l *linuxOS) GetMonitors() ([]Target, error) {
	displays, err := sysinfo.GetDisplays()
	if err != nil {
		return nil, err
	}
	return displaysToTargets(displays), nil
}

// SetWallpaper sets the desktop wallpaper on Linux, supporting X11 and some
// Wayland compositors. Only XFCE and sway address individual monitors; the
// other environments apply the image to all of them.
func (l *linuxOS) SetWallpaper(imagePath string, monitorID int) error {
	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = os.Getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		// Wayland
		if strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "mutter") {
			return l.setWallpaperGNOME(imagePath)
		} else if strings.Contains(desktopEnv, "sway") {
			return l.setWallpaperSway(imagePath, monitorID)
		}
		return fmt.Errorf("unsupported Wayland compositor: %s", desktopEnv)
	}

	// X11
	switch {
	case strings.Contains(desktopEnv, "gnome") || strings.Contains(desktopEnv, "unity") || strings.Contains(desktopEnv, "cinnamon"):
		return l.setWallpaperGNOME(imagePath)
	case strings.Contains(desktopEnv, "kde"):
		return l.setWallpaperKDE(imagePath)
	case strings.Contains(desktopEnv, "xfce"):
		return l.setWallpaperXFCE(imagePath, monitorID)
	default:
		return fmt.Errorf("unsupported X11 desktop environment: %s", desktopEnv)
	}
}

// setWallpaperGNOME sets the wallpaper for GNOME-based desktop environments.
func (l *linuxOS) setWallpaperGNOME(imagePath string) error {
	cmd := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", fmt.Sprintf("file://%s", imagePath))
	return cmd.Run()
}

// setWallpaperKDE sets the wallpaper for KDE via the plasmashell scripting
// interface.
func (l *linuxOS) setWallpaperKDE(imagePath string) error {
	script := fmt.Sprintf(`
        var allDesktops = desktops();
        for (i=0;i<allDesktops.length;i++) {
            d = allDesktops[i];
            d.wallpaperPlugin = "org.kde.image";
            d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
            d.writeConfig("Image", "file://%s");
        }`, imagePath)

	cmd := exec.Command("qdbus", "org.kde.plasmashell", "/PlasmaShell",
		"org.kde.PlasmaShell.evaluateScript", script)
	return cmd.Run()
}

// setWallpaperXFCE sets the wallpaper for XFCE on the given monitor.
func (l *linuxOS) setWallpaperXFCE(imagePath string, monitorID int) error {
	property := fmt.Sprintf("/backdrop/screen0/monitor%d/workspace0/last-image", monitorID)
	cmd := exec.Command("xfconf-query",
		"--channel", "xfce4-desktop",
		"--property", property,
		"--set", imagePath)
	return cmd.Run()
}

// setWallpaperSway sets the wallpaper for sway on the given output.
func (l *linuxOS) setWallpaperSway(imagePath string, monitorID int) error {
	// swaymsg output ordinals are 1-based.
	cmd := exec.Command("swaymsg", fmt.Sprintf("output %d bg %q fill", monitorID+1, imagePath))
	return cmd.Run()
}
