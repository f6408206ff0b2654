package sysinfo

// Display describes the pixel geometry of one attached display.
type Display struct {
	Width  int
	Height int
}
