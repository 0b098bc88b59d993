package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFTP          = "ftp"
	KeyWorkoutsFile = "workouts_file"
	KeyBinDir       = "overlay_bin_dir"
	KeyDatabasePath = "database_path"
	KeyDownloadDir  = "download_directory"
	KeyLanguage     = "app_language"
	KeySortOrder    = "sort_order"
	KeyCustomFile   = "custom_workouts_file"
)

// Default values
const (
	DefaultFTP       = 250
	MinFTP           = 50
	MaxFTP           = 2000
	DefaultLanguage  = "system"
	DefaultSortOrder = model.SortDefault
)

// Default locations, relative to the executable
const (
	AssetsDirName    = "assets"
	WorkoutsFileName = "data.json"
	BinDirName       = "bin"
	DatabaseFileName = "db"
	CustomFileName   = "custom_workouts.yaml"
)

// DefaultWorkoutsFile returns the bundled workout library path
func DefaultWorkoutsFile() string {
	return filepath.Join(platform.ExecutableDir(), AssetsDirName, WorkoutsFileName)
}

// DefaultBinDir returns the directory holding the overlay binaries
func DefaultBinDir() string {
	return filepath.Join(platform.ExecutableDir(), BinDirName)
}

// DefaultDatabasePath returns the training database path shared with the overlay
func DefaultDatabasePath() string {
	return filepath.Join(DefaultBinDir(), DatabaseFileName)
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env *Environment
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// ApplyEnvironment makes environment values take precedence over stored preferences.
// Overrides are not written back to preferences.
func (s *Settings) ApplyEnvironment(env *Environment) {
	s.env = env
}

// Debug reports whether verbose logging was requested
func (s *Settings) Debug() bool {
	return s.env != nil && s.env.Debug
}

// GetFTP returns the functional threshold power in watts
func (s *Settings) GetFTP() int {
	if s.env != nil && s.env.FTP > 0 {
		return ClampFTP(s.env.FTP)
	}
	value := s.app.Preferences().Int(KeyFTP)
	if value <= 0 {
		s.SetFTP(DefaultFTP)
		return DefaultFTP
	}
	return ClampFTP(value)
}

// SetFTP stores the FTP, clamped to a plausible range
func (s *Settings) SetFTP(ftp int) {
	s.app.Preferences().SetInt(KeyFTP, ClampFTP(ftp))
}

// ClampFTP limits an FTP value to [MinFTP, MaxFTP]
func ClampFTP(ftp int) int {
	return min(max(ftp, MinFTP), MaxFTP)
}

// GetWorkoutsFile returns the workout library path
func (s *Settings) GetWorkoutsFile() string {
	return s.pathSetting(KeyWorkoutsFile, s.envValue(func(e *Environment) string { return e.WorkoutsFile }), DefaultWorkoutsFile)
}

// SetWorkoutsFile sets the workout library path; empty restores the default
func (s *Settings) SetWorkoutsFile(path string) {
	s.app.Preferences().SetString(KeyWorkoutsFile, path)
}

// GetBinDir returns the overlay binary directory
func (s *Settings) GetBinDir() string {
	return s.pathSetting(KeyBinDir, s.envValue(func(e *Environment) string { return e.BinDir }), DefaultBinDir)
}

// SetBinDir sets the overlay binary directory; empty restores the default
func (s *Settings) SetBinDir(dir string) {
	s.app.Preferences().SetString(KeyBinDir, dir)
}

// GetDatabasePath returns the training database path
func (s *Settings) GetDatabasePath() string {
	return s.pathSetting(KeyDatabasePath, s.envValue(func(e *Environment) string { return e.DBPath }), DefaultDatabasePath)
}

// SetDatabasePath sets the training database path; empty restores the default
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

func (s *Settings) envValue(get func(*Environment) string) string {
	if s.env == nil {
		return ""
	}
	return get(s.env)
}

// pathSetting resolves a path from the environment, then preferences, then the default
func (s *Settings) pathSetting(key, override string, fallback func() string) string {
	if override != "" {
		return override
	}
	if value := s.app.Preferences().String(key); value != "" {
		return value
	}
	return fallback()
}

// GetCustomWorkoutsFile returns where workouts created in the app are kept.
// Defaults to the application storage directory.
func (s *Settings) GetCustomWorkoutsFile() string {
	return s.pathSetting(KeyCustomFile, "", func() string {
		return filepath.Join(s.app.Storage().RootURI().Path(), CustomFileName)
	})
}

// SetCustomWorkoutsFile sets the custom workouts path; empty restores the default
func (s *Settings) SetCustomWorkoutsFile(path string) {
	s.app.Preferences().SetString(KeyCustomFile, path)
}

// GetDownloadDirectory returns the directory training files are exported to
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(platform.ExecutableDir(), "downloads")
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

// GetSortOrder returns the last used workout list order
func (s *Settings) GetSortOrder() model.SortOrder {
	order := model.SortOrder(s.app.Preferences().String(KeySortOrder))
	if !order.IsValid() {
		s.SetSortOrder(DefaultSortOrder)
		return DefaultSortOrder
	}
	return order
}

// SetSortOrder stores the workout list order
func (s *Settings) SetSortOrder(order model.SortOrder) {
	if !order.IsValid() {
		order = DefaultSortOrder
	}
	s.app.Preferences().SetString(KeySortOrder, string(order))
}
