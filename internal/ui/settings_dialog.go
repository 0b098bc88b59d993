package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	ftpEntry          *widget.Entry
	workoutsFileEntry *widget.Entry
	binDirEntry       *widget.Entry
	databaseEntry     *widget.Entry
	downloadDirEntry  *widget.Entry
	languageSelect    *widget.Select
	languageCodes     map[string]string // label -> code
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after the settings were stored
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.ftpEntry = widget.NewEntry()
	sd.ftpEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinFTP, config.MaxFTP))

	sd.workoutsFileEntry = widget.NewEntry()
	sd.workoutsFileEntry.SetPlaceHolder(config.DefaultWorkoutsFile())
	sd.binDirEntry = widget.NewEntry()
	sd.binDirEntry.SetPlaceHolder(config.DefaultBinDir())
	sd.databaseEntry = widget.NewEntry()
	sd.databaseEntry.SetPlaceHolder(config.DefaultDatabasePath())
	sd.downloadDirEntry = widget.NewEntry()

	// Language selection shows labels, stores codes
	sd.languageCodes = make(map[string]string)
	labels := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyFTP), sd.ftpEntry),
		widget.NewFormItem(l.GetText(KeyWorkoutsFile), sd.withBrowse(sd.workoutsFileEntry, false)),
		widget.NewFormItem(l.GetText(KeyOverlayBinDir), sd.withBrowse(sd.binDirEntry, true)),
		widget.NewFormItem(l.GetText(KeyDatabasePath), sd.withBrowse(sd.databaseEntry, false)),
		widget.NewFormItem(l.GetText(KeyDownloadDirectory), sd.withBrowse(sd.downloadDirEntry, true)),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// withBrowse adds a browse button next to a path entry
func (sd *SettingsDialog) withBrowse(entry *widget.Entry, folder bool) fyne.CanvasObject {
	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		if folder {
			sd.onBrowseDirectory(entry)
		} else {
			sd.onBrowseFile(entry)
		}
	})
	return container.NewBorder(nil, nil, nil, browseBtn, entry)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.ftpEntry.SetText(strconv.Itoa(sd.settings.GetFTP()))
	sd.workoutsFileEntry.SetText(sd.settings.GetWorkoutsFile())
	sd.binDirEntry.SetText(sd.settings.GetBinDir())
	sd.databaseEntry.SetText(sd.settings.GetDatabasePath())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseFile handles file browsing
func (sd *SettingsDialog) onBrowseFile(entry *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		entry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	ftp, err := parseFTP(sd.ftpEntry.Text)
	if err != nil {
		dialog.ShowError(err, sd.window)
		return
	}
	if ftp != sd.settings.GetFTP() {
		sd.settings.SetFTP(ftp)
	}

	// Unchanged paths are not stored so defaults and environment overrides stay in effect.
	// Empty paths restore the defaults.
	setIfChanged(sd.settings.GetWorkoutsFile(), sd.workoutsFileEntry.Text, sd.settings.SetWorkoutsFile)
	setIfChanged(sd.settings.GetBinDir(), sd.binDirEntry.Text, sd.settings.SetBinDir)
	setIfChanged(sd.settings.GetDatabasePath(), sd.databaseEntry.Text, sd.settings.SetDatabasePath)

	if downloadDir := strings.TrimSpace(sd.downloadDirEntry.Text); downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
		sd.localization.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// parseFTP reads an FTP entry, clamped to the accepted range
func parseFTP(text string) (int, error) {
	ftp, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || ftp <= 0 {
		return 0, fmt.Errorf("FTP: invalid value %q", text)
	}
	return config.ClampFTP(ftp), nil
}

// setIfChanged stores a path entry only when it differs from the resolved value
func setIfChanged(current, text string, set func(string)) {
	value := strings.TrimSpace(text)
	if value == current {
		return
	}
	set(value)
}
