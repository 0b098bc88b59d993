package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/config"
	"github.com/ytget/workout-viewer/internal/launcher"
	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/platform"
	"github.com/ytget/workout-viewer/internal/storage"
	"github.com/ytget/workout-viewer/internal/workout"
)

// StoreTimeout bounds a single training database call from the UI
const StoreTimeout = 10 * time.Second

// View identifies the page shown in the main window
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewCreator
	ViewTrainings
)

// String returns a name for logs
func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewCreator:
		return "creator"
	case ViewTrainings:
		return "trainings"
	default:
		return "unknown"
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	launcher     launcher.Launcher

	catalog   *workout.Catalog
	custom    []model.Workout
	store     *storage.Store
	storePath string

	// Navigation
	content     *fyne.Container
	currentView View
	list        *WorkoutListView
	detail      *WorkoutDetailView
	creator     *CreatorView
	trainings   *TrainingListView

	// Toolbar
	workoutsBtn  *widget.Button
	createBtn    *widget.Button
	trainingsBtn *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, launch launcher.Launcher) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		launcher:     launch,
		catalog:      workout.NewCatalog(nil),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.launcher.SetEventCallback(ui.onLauncherEvent)
	ui.registerOverlay()

	ui.setupUI()
	ui.reloadCatalog()
	ui.openStore()
	ui.showList()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.workoutsBtn = widget.NewButton(ui.localization.GetText(KeyWorkouts), ui.showList)
	ui.createBtn = widget.NewButton(IconAdd+" "+ui.localization.GetText(KeyCreateWorkout), ui.showCreator)
	ui.trainingsBtn = widget.NewButton(ui.localization.GetText(KeyTrainingSessions), ui.showTrainings)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(ui.workoutsBtn, ui.createBtn, ui.trainingsBtn),
		settingsBtn,
	)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.content = container.NewStack()

	ui.window.SetContent(container.NewBorder(
		container.NewVBox(toolbar, ui.notificationContainer, widget.NewSeparator()),
		nil,
		nil,
		nil,
		ui.content,
	))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.languageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.workoutsBtn.SetText(ui.localization.GetText(KeyWorkouts))
	ui.createBtn.SetText(IconAdd + " " + ui.localization.GetText(KeyCreateWorkout))
	ui.trainingsBtn.SetText(ui.localization.GetText(KeyTrainingSessions))

	// The detail view keeps its texts until it is reopened so the status log survives
	switch ui.currentView {
	case ViewList:
		ui.showList()
	case ViewCreator:
		ui.showCreator()
	case ViewTrainings:
		ui.showTrainings()
	}
}

// setView swaps the page. Leaving the detail page stops a running overlay.
func (ui *RootUI) setView(view View, obj fyne.CanvasObject) {
	if ui.currentView == ViewDetail && view != ViewDetail {
		ui.stopOverlay()
		ui.detail = nil
	}
	ui.currentView = view
	ui.content.Objects = []fyne.CanvasObject{obj}
	ui.content.Refresh()
}

// showList shows the workout library
func (ui *RootUI) showList() {
	ui.list = NewWorkoutListView(ui)
	ui.setView(ViewList, ui.list.Container())
}

// showDetail opens a workout
func (ui *RootUI) showDetail(w model.Workout) {
	if ui.currentView == ViewDetail {
		ui.stopOverlay()
	}
	ui.detail = NewWorkoutDetailView(ui, w)
	ui.setView(ViewDetail, ui.detail.Container())
}

// showCreator opens the workout creator
func (ui *RootUI) showCreator() {
	ui.creator = NewCreatorView(ui)
	ui.setView(ViewCreator, ui.creator.Container())
}

// showTrainings opens the recorded training list
func (ui *RootUI) showTrainings() {
	ui.trainings = NewTrainingListView(ui)
	ui.setView(ViewTrainings, ui.trainings.Container())
	ui.trainings.Reload()
}

// stopOverlay stops the overlay if it is running
func (ui *RootUI) stopOverlay() {
	if run, ok := ui.launcher.Current(); ok && run.Status.IsActive() {
		if err := ui.launcher.Stop(run.AppName); err != nil && !errors.Is(err, launcher.ErrNotRunning) {
			log.Printf("failed to stop %s: %v", run.AppName, err)
		}
	}
}

// registerOverlay (re)binds the overlay app to the configured binary directory
func (ui *RootUI) registerOverlay() {
	env := []string{}
	if dbPath := ui.settings.GetDatabasePath(); dbPath != "" {
		env = append(env, "WORKOUT_VIEWER_DB_PATH="+dbPath)
	}
	ui.launcher.Register(launcher.AppOverlay, launcher.OverlayApp(ui.settings.GetBinDir(), env...))
}

// reloadCatalog loads the workout library and the user's own workouts
func (ui *RootUI) reloadCatalog() {
	path := ui.settings.GetWorkoutsFile()
	catalog, err := workout.LoadCatalog(path)
	if err != nil {
		log.Printf("failed to load workouts from %s: %v", path, err)
		ui.showNotification(ui.localization.GetText(KeyErrorLoadingWorkouts) + ": " + err.Error())
		catalog = workout.NewCatalog(nil)
	}

	custom, err := workout.LoadWorkouts(ui.settings.GetCustomWorkoutsFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load custom workouts: %v", err)
	}
	ui.custom = ui.custom[:0]
	for _, w := range custom {
		added, err := catalog.Add(w)
		if err != nil {
			log.Printf("skipping custom workout %q: %v", w.Name, err)
			continue
		}
		ui.custom = append(ui.custom, added)
	}

	ui.catalog = catalog
}

// openStore (re)opens the training database when its path changed
func (ui *RootUI) openStore() {
	path := ui.settings.GetDatabasePath()
	if ui.store != nil && path == ui.storePath {
		return
	}
	if ui.store != nil {
		ui.store.Close()
		ui.store = nil
	}

	store, err := storage.Open(path)
	if err != nil {
		log.Printf("failed to open training db %s: %v", path, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningDatabase) + ": " + err.Error())
		return
	}
	ui.store = store
	ui.storePath = path
}

// addCustomWorkout adds a created workout to the catalog and persists the user's workouts
func (ui *RootUI) addCustomWorkout(w model.Workout) (model.Workout, error) {
	added, err := ui.catalog.Add(w)
	if err != nil {
		return model.Workout{}, err
	}
	ui.custom = append(ui.custom, added)

	if err := workout.SaveWorkouts(ui.settings.GetCustomWorkoutsFile(), ui.custom); err != nil {
		log.Printf("failed to save custom workouts: %v", err)
		ui.showNotification(err.Error())
	}
	return added, nil
}

// storeContext returns a context for one training database call
func (ui *RootUI) storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), StoreTimeout)
}

// onLauncherEvent receives launcher events from any goroutine
func (ui *RootUI) onLauncherEvent(event launcher.Event) {
	fyne.Do(func() {
		if ui.detail != nil {
			ui.detail.HandleEvent(event)
		}
		if event.Kind == launcher.EventExited {
			// The overlay writes its recording on exit
			if ui.currentView == ViewTrainings && ui.trainings != nil {
				ui.trainings.Reload()
			}
			if event.Run != nil && event.Run.LastError == "" {
				ui.app.SendNotification(&fyne.Notification{
					Title:   ui.localization.GetText(KeyOverlayExited),
					Content: event.Run.Describe(),
				})
			}
		}
	})
}

// showNotification displays a message in the notification panel under the toolbar.
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings
func (ui *RootUI) onSettingsSaved() {
	ui.hideNotification()
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.registerOverlay()
	ui.reloadCatalog()
	ui.openStore()
	ui.createMenu()
	ui.refreshUITexts()
	if ui.currentView == ViewDetail {
		ui.showList()
	}
}

// onRevealFile reveals an exported file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile opens an exported file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// showToastNotification shows an in-app toast for an exported file with reveal/open actions
func (ui *RootUI) showToastNotification(title, filePath string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(filePath)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(IconFolder, func() { ui.onRevealFile(filePath) })
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(IconPlay, func() { ui.onOpenFile(filePath) })

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toastPopup.Hide)
	}()
}

// Shutdown stops the overlay and closes the training database. Called when the window closes.
func (ui *RootUI) Shutdown() {
	ui.launcher.Shutdown()
	if ui.store != nil {
		if err := ui.store.Close(); err != nil {
			log.Printf("failed to close training db: %v", err)
		}
		ui.store = nil
	}
}
