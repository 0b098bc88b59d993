package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/workout-viewer/internal/config"
	"github.com/ytget/workout-viewer/internal/platform"
)

const (
	AppIcon = "workout-viewer.png"
)

// LoadLogoResource loads the application icon shipped next to the workout library
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(filepath.Join(platform.ExecutableDir(), config.AssetsDirName, AppIcon))
}
