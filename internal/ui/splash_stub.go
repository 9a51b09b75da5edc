//go:build !ebiten

package ui

// Splash is a no-op placeholder for headless builds.
type Splash struct{}

// NewSplash returns nil in the headless build.
func NewSplash(any, string) *Splash { return nil }

// Update reports the splash as dismissed.
func (s *Splash) Update() bool { return true }

// Draw is a no-op in the headless build.
func (s *Splash) Draw(any) {}
