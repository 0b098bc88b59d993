package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyWorkouts             = "workouts"
	KeyCreateWorkout        = "create_workout"
	KeyTrainingSessions     = "training_sessions"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyBrowse               = "browse"
	KeyBack                 = "back"
	KeySortBy               = "sort_by"
	KeySortDefault          = "sort_default"
	KeySortNameAsc          = "sort_name_asc"
	KeySortNameDesc         = "sort_name_desc"
	KeySortDurationAsc      = "sort_duration_asc"
	KeySortDurationDesc     = "sort_duration_desc"
	KeyMinDuration          = "min_duration"
	KeyMaxDuration          = "max_duration"
	KeyNoWorkouts           = "no_workouts"
	KeySteps                = "steps"
	KeyOriginalDuration     = "original_duration"
	KeyCurrentDuration      = "current_duration"
	KeyOfOriginal           = "of_original"
	KeyAdjustDuration       = "adjust_duration"
	KeyMinutes              = "minutes"
	KeyReset                = "reset"
	KeyScaleHint            = "scale_hint"
	KeyStartOverlay         = "start_overlay"
	KeyStopOverlay          = "stop_overlay"
	KeyStatus               = "status"
	KeyWorkoutName          = "workout_name"
	KeyDurationSeconds      = "duration_seconds"
	KeyStartPower           = "start_power"
	KeyEndPower             = "end_power"
	KeyAddStep              = "add_step"
	KeySaveWorkout          = "save_workout"
	KeyWorkoutSaved         = "workout_saved"
	KeyFTP                  = "ftp"
	KeyRefresh              = "refresh"
	KeyDownload             = "download"
	KeyDelete               = "delete"
	KeyDeleteConfirm        = "delete_confirm"
	KeyNoTrainings          = "no_trainings"
	KeySelectTraining       = "select_training"
	KeyExported             = "exported"
	KeyWorkoutsFile         = "workouts_file"
	KeyOverlayBinDir        = "overlay_bin_dir"
	KeyDatabasePath         = "database_path"
	KeyDownloadDirectory    = "download_directory"
	KeySettingsSaved        = "settings_saved"
	KeyErrorLoadingWorkouts = "error_loading_workouts"
	KeyErrorOpeningDatabase = "error_opening_database"
	KeyErrorOpeningFile     = "error_opening_file"
	KeyInvalidNumber        = "invalid_number"
	KeyOverlayExited        = "overlay_exited"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns available languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// languageCodes returns the available language codes in a stable order
func (l *Localization) languageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Workout Viewer",
		KeyWorkouts:             "Workouts",
		KeyCreateWorkout:        "Create Workout",
		KeyTrainingSessions:     "Training Sessions",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyBrowse:               "Browse",
		KeyBack:                 "Back",
		KeySortBy:               "Sort by",
		KeySortDefault:          "Default",
		KeySortNameAsc:          "Name (A-Z)",
		KeySortNameDesc:         "Name (Z-A)",
		KeySortDurationAsc:      "Duration (shortest)",
		KeySortDurationDesc:     "Duration (longest)",
		KeyMinDuration:          "Min duration",
		KeyMaxDuration:          "Max duration",
		KeyNoWorkouts:           "No workouts match the filter",
		KeySteps:                "Steps",
		KeyOriginalDuration:     "Original",
		KeyCurrentDuration:      "Current",
		KeyOfOriginal:           "%d%% of original",
		KeyAdjustDuration:       "Adjust duration",
		KeyMinutes:              "Minutes",
		KeyReset:                "Reset",
		KeyScaleHint:            "Steps are scaled linearly so the workout profile stays intact.",
		KeyStartOverlay:         "Start overlay",
		KeyStopOverlay:          "Stop overlay",
		KeyStatus:               "Status",
		KeyWorkoutName:          "Workout name",
		KeyDurationSeconds:      "Duration (s)",
		KeyStartPower:           "Start %",
		KeyEndPower:             "End %",
		KeyAddStep:              "Add step",
		KeySaveWorkout:          "Save workout",
		KeyWorkoutSaved:         "Workout saved",
		KeyFTP:                  "FTP (W)",
		KeyRefresh:              "Refresh",
		KeyDownload:             "Download",
		KeyDelete:               "Delete",
		KeyDeleteConfirm:        "Delete this training session?",
		KeyNoTrainings:          "No recorded training sessions yet",
		KeySelectTraining:       "Select a training session first",
		KeyExported:             "Saved to",
		KeyWorkoutsFile:         "Workouts file",
		KeyOverlayBinDir:        "Overlay directory",
		KeyDatabasePath:         "Training database",
		KeyDownloadDirectory:    "Download directory",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyErrorLoadingWorkouts: "Failed to load workouts",
		KeyErrorOpeningDatabase: "Failed to open training database",
		KeyErrorOpeningFile:     "Error opening file",
		KeyInvalidNumber:        "Please enter a valid number",
		KeyOverlayExited:        "Overlay closed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Просмотр тренировок",
		KeyWorkouts:             "Тренировки",
		KeyCreateWorkout:        "Создать тренировку",
		KeyTrainingSessions:     "Записанные заезды",
		KeySettings:             "Настройки",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeyBrowse:               "Обзор",
		KeyBack:                 "Назад",
		KeySortBy:               "Сортировка",
		KeySortDefault:          "По умолчанию",
		KeySortNameAsc:          "Название (А-Я)",
		KeySortNameDesc:         "Название (Я-А)",
		KeySortDurationAsc:      "Сначала короткие",
		KeySortDurationDesc:     "Сначала длинные",
		KeyMinDuration:          "Мин. длительность",
		KeyMaxDuration:          "Макс. длительность",
		KeyNoWorkouts:           "Нет тренировок под фильтр",
		KeySteps:                "Шаги",
		KeyOriginalDuration:     "Исходная",
		KeyCurrentDuration:      "Текущая",
		KeyOfOriginal:           "%d%% от исходной",
		KeyAdjustDuration:       "Изменить длительность",
		KeyMinutes:              "Минуты",
		KeyReset:                "Сбросить",
		KeyScaleHint:            "Шаги масштабируются линейно, профиль тренировки сохраняется.",
		KeyStartOverlay:         "Запустить оверлей",
		KeyStopOverlay:          "Остановить оверлей",
		KeyStatus:               "Статус",
		KeyWorkoutName:          "Название тренировки",
		KeyDurationSeconds:      "Длительность (с)",
		KeyStartPower:           "Начало %",
		KeyEndPower:             "Конец %",
		KeyAddStep:              "Добавить шаг",
		KeySaveWorkout:          "Сохранить тренировку",
		KeyWorkoutSaved:         "Тренировка сохранена",
		KeyFTP:                  "FTP (Вт)",
		KeyRefresh:              "Обновить",
		KeyDownload:             "Скачать",
		KeyDelete:               "Удалить",
		KeyDeleteConfirm:        "Удалить эту запись?",
		KeyNoTrainings:          "Записанных заездов пока нет",
		KeySelectTraining:       "Сначала выберите запись",
		KeyExported:             "Сохранено в",
		KeyWorkoutsFile:         "Файл тренировок",
		KeyOverlayBinDir:        "Папка оверлея",
		KeyDatabasePath:         "База заездов",
		KeyDownloadDirectory:    "Папка загрузок",
		KeySettingsSaved:        "Настройки сохранены!",
		KeyErrorLoadingWorkouts: "Не удалось загрузить тренировки",
		KeyErrorOpeningDatabase: "Не удалось открыть базу заездов",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
		KeyInvalidNumber:        "Введите корректное число",
		KeyOverlayExited:        "Оверлей закрыт",
	}
}
