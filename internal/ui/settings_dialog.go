package ui

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lineup-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataURLEntry   *widget.Entry
	yearSelect     *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// SetOnSaved sets the callback run after settings are stored
func (sd *SettingsDialog) SetOnSaved(fn func()) {
	sd.onSaved = fn
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.dataURLEntry = widget.NewEntry()
	sd.dataURLEntry.SetPlaceHolder("https://.../artists.json")
	sd.dataURLEntry.Validator = validateDataURL

	sd.yearSelect = widget.NewSelect(sd.settings.GetLineupYearOptions(), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	hint := widget.NewLabel(t(KeyDataURLHint))
	hint.Wrapping = fyne.TextWrapWord
	hint.Importance = widget.LowImportance

	form := container.NewVBox(
		widget.NewLabel(t(KeyDataURL)+":"),
		sd.dataURLEntry,
		hint,

		widget.NewLabel(t(KeyYear)+":"),
		sd.yearSelect,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataURLEntry.SetText(sd.settings.GetDataURLOverride())
	sd.yearSelect.SetSelected(sd.settings.GetLineupYear())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := validateDataURL(sd.dataURLEntry.Text); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}
	sd.settings.SetDataURLOverride(sd.dataURLEntry.Text)

	if sd.yearSelect.Selected != "" {
		sd.settings.SetLineupYear(sd.yearSelect.Selected)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// validateDataURL accepts an empty value or an absolute http(s) URL
func validateDataURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}
