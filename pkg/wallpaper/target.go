package wallpaper

// Target is one physical display surface requiring a wallpaper. Targets are
// detected once at startup and immutable afterwards.
type Target struct {
	ID     int // ordinal assigned at detection time
	Width  int
	Height int
}

// Aspect returns the width/height ratio of the target.
func (t Target) Aspect() float64 {
	return float64(t.Width) / float64(t.Height)
}

// Pixels returns the total pixel count of the target.
func (t Target) Pixels() float64 {
	return float64(t.Width) * float64(t.Height)
}

// OS interface defines the operating system specific operations.
type OS interface {
	// GetMonitors returns one Target per attached display.
	GetMonitors() ([]Target, error)
	// SetWallpaper applies the image at path as the background of the
	// display with the given ordinal.
	SetWallpaper(path string, monitorID int) error
}
