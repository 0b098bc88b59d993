package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/workout-viewer/internal/config"
	"github.com/ytget/workout-viewer/internal/launcher"
	"github.com/ytget/workout-viewer/internal/platform"
	"github.com/ytget/workout-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.workout-viewer"
	AppName = "Workout Viewer"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("Workout Viewer v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	env, err := config.LoadEnvironment()
	if err != nil {
		log.Printf("ignoring environment overrides: %v", err)
	} else {
		settings.ApplyEnvironment(env)
	}

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	launcherSvc := launcher.NewService(launcher.WithDebug(settings.Debug()))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, settings, launcherSvc)
	myWindow.SetOnClosed(rootUI.Shutdown)

	// Show and run
	myWindow.ShowAndRun()
}
