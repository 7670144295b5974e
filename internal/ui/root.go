package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lineup-browser/internal/config"
	"github.com/ytget/lineup-browser/internal/lineup"
	"github.com/ytget/lineup-browser/internal/model"
	"github.com/ytget/lineup-browser/internal/playback"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	loader       lineup.Loader
	coordinator  *playback.Coordinator

	// Controls
	weekendSelect *widget.Select
	yearSelect    *widget.Select
	weekendLabel  *widget.Label
	yearLabel     *widget.Label
	countLabel    *widget.Label
	emptyLabel    *widget.Label
	cardList      *fyne.Container
	scroll        *container.Scroll

	// Lineup state, owned by the UI goroutine
	artists  []*model.Artist
	cards    []*ArtistCard
	filter   model.WeekendFilter
	expanded *ArtistCard

	// Load bookkeeping
	loadMu     sync.Mutex
	loadSeq    int
	cancelLoad context.CancelFunc

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationTimer     *time.Timer
}

// NewRootUI creates and initializes the main UI. The lineup is not fetched
// until Reload is called.
func NewRootUI(window fyne.Window, settings *config.Settings, loader lineup.Loader, coordinator *playback.Coordinator) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		loader:       loader,
		coordinator:  coordinator,
		filter:       model.FilterAll,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for loader status updates
	ui.loader.SetUpdateCallback(ui.onLoadStatus)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Weekend filter
	ui.weekendLabel = widget.NewLabel(ui.localization.GetText(KeyWeekend))
	ui.weekendSelect = widget.NewSelect(ui.filterOptions(), nil)
	ui.weekendSelect.SetSelected(ui.localization.FilterLabel(ui.filter))
	ui.weekendSelect.OnChanged = ui.onWeekendSelected

	// Festival year
	ui.yearLabel = widget.NewLabel(ui.localization.GetText(KeyYear))
	ui.yearSelect = widget.NewSelect(ui.settings.GetLineupYearOptions(), nil)
	ui.yearSelect.SetSelected(ui.settings.GetLineupYear())
	ui.yearSelect.OnChanged = ui.onYearChanged

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	reloadBtn := widget.NewButton(IconReload, ui.Reload)
	reloadBtn.Importance = widget.LowImportance

	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignTrailing

	// Create logo
	var leftCluster *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leftCluster = container.NewHBox(logoImage, settingsBtn, reloadBtn)
	} else {
		leftCluster = container.NewHBox(settingsBtn, reloadBtn)
	}

	selectors := container.NewHBox(
		ui.weekendLabel, ui.weekendSelect,
		ui.yearLabel, ui.yearSelect,
	)
	topPanel := container.NewBorder(nil, nil, leftCluster, ui.countLabel, selectors)

	// Create notification panel under the selectors (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Card list
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoArtists))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.cardList = container.NewVBox()
	ui.scroll = container.NewVScroll(container.NewVBox(ui.emptyLabel, ui.cardList))

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		ui.scroll,   // center
	)

	ui.window.SetContent(content)
	ui.applyFilter()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.Reload)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, reloadItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// filterOptions returns the localized weekend filter labels in display order
func (ui *RootUI) filterOptions() []string {
	filters := model.AllWeekendFilters()
	options := make([]string, 0, len(filters))
	for _, f := range filters {
		options = append(options, ui.localization.FilterLabel(f))
	}
	return options
}

// onWeekendSelected maps a select label back to its filter
func (ui *RootUI) onWeekendSelected(label string) {
	for _, f := range model.AllWeekendFilters() {
		if ui.localization.FilterLabel(f) == label {
			ui.SetFilter(f)
			return
		}
	}
	log.Printf("Unknown weekend filter label: %q", label)
}

// SetFilter changes the weekend filter and re-applies it to the cards
func (ui *RootUI) SetFilter(filter model.WeekendFilter) {
	if ui.filter == filter {
		return
	}
	ui.filter = filter
	if label := ui.localization.FilterLabel(filter); ui.weekendSelect.Selected != label {
		ui.weekendSelect.SetSelected(label)
	}
	ui.applyFilter()
}

// applyFilter shows the cards matching the current filter. Hidden cards keep
// their controls, so a playing preview survives a filter change.
func (ui *RootUI) applyFilter() {
	visible := 0
	for _, card := range ui.cards {
		if ui.filter.Matches(card.Artist()) {
			card.Show()
			visible++
		} else {
			card.Hide()
		}
	}

	if visible == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.countLabel.SetText(fmt.Sprintf("%d / %d", visible, len(ui.cards)))
	ui.cardList.Refresh()
}

// VisibleArtists returns the artists that pass the current filter, in feed order
func (ui *RootUI) VisibleArtists() []*model.Artist {
	return model.FilterArtists(ui.artists, ui.filter)
}

// Cards returns all artist cards, visible or not
func (ui *RootUI) Cards() []*ArtistCard {
	return ui.cards
}

// onToggleTracks keeps at most one artist's track list open
func (ui *RootUI) onToggleTracks(card *ArtistCard) {
	if card.Expanded() {
		card.SetExpanded(false)
		ui.expanded = nil
		ui.cardList.Refresh()
		return
	}
	if ui.expanded != nil && ui.expanded != card {
		ui.expanded.SetExpanded(false)
	}
	card.SetExpanded(true)
	ui.expanded = card
	ui.cardList.Refresh()
}

// onPlay routes a play/pause press through the coordinator
func (ui *RootUI) onPlay(track model.Track, control *PlayButton) {
	err := ui.coordinator.Toggle(track.PreviewURL, control)
	switch {
	case err == nil:
	case errors.Is(err, playback.ErrBrokenLink):
		dialog.ShowInformation(
			ui.localization.GetText(KeyBrokenLinkTitle),
			ui.localization.GetText(KeyBrokenLink),
			ui.window,
		)
	default:
		log.Printf("Error toggling playback for track %s: %v", track.ID, err)
	}
}

// onYearChanged switches the festival year and reloads
func (ui *RootUI) onYearChanged(year string) {
	if year == "" {
		return
	}
	ui.settings.SetLineupYear(year)
	ui.Reload()
}

// Reload starts a background fetch of the configured lineup. A newer Reload
// supersedes an older one still in flight.
func (ui *RootUI) Reload() {
	url := ui.settings.ResolveDataURL()

	ui.loadMu.Lock()
	if ui.cancelLoad != nil {
		ui.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.cancelLoad = cancel
	ui.loadSeq++
	seq := ui.loadSeq
	ui.loadMu.Unlock()

	ui.loader.SetURL(url)
	go ui.loadLineup(ctx, seq)
}

// loadLineup performs one load and hands the result to the UI goroutine
func (ui *RootUI) loadLineup(ctx context.Context, seq int) {
	artists, err := ui.loader.Load(ctx)

	fyne.Do(func() {
		if !ui.isCurrentLoad(seq) {
			log.Printf("Discarding superseded lineup load #%d", seq)
			return
		}
		if err != nil {
			ui.setArtists(nil)
			ui.showNotification(IconError+" "+ui.localization.GetText(KeyLineupLoadFailed)+": "+err.Error(), false)
			return
		}
		ui.setArtists(artists)
		ui.showNotification(fmt.Sprintf("%s (%d)", ui.localization.GetText(KeyLineupLoaded), len(artists)), false)
		ui.scheduleHideNotification()
	})
}

func (ui *RootUI) isCurrentLoad(seq int) bool {
	ui.loadMu.Lock()
	defer ui.loadMu.Unlock()
	return seq == ui.loadSeq
}

// setArtists replaces the card list. Playback is stopped first because the
// old controls are discarded.
func (ui *RootUI) setArtists(artists []*model.Artist) {
	ui.coordinator.Stop()
	ui.expanded = nil

	ui.artists = artists
	ui.cards = make([]*ArtistCard, 0, len(artists))
	objects := make([]fyne.CanvasObject, 0, len(artists))
	for _, artist := range artists {
		card := NewArtistCard(artist, ui.localization)
		card.SetCallbacks(ui.onToggleTracks, ui.onPlay)
		ui.cards = append(ui.cards, card)
		objects = append(objects, card)
	}
	ui.cardList.Objects = objects

	ui.applyFilter()
	ui.scroll.ScrollToTop()
}

// onLoadStatus reflects loader progress in the notification panel
func (ui *RootUI) onLoadStatus(status model.LoadStatus, err error) {
	switch status {
	case model.LoadStatusLoading:
		ui.showNotification(ui.localization.GetText(KeyLoadingLineup), true)
	case model.LoadStatusError:
		// the failing load reports through loadLineup once it is known to be current
		if !errors.Is(err, context.Canceled) {
			log.Printf("Lineup load failed: %v", err)
		}
	}
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		if ui.notificationTimer != nil {
			ui.notificationTimer.Stop()
			ui.notificationTimer = nil
		}
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// scheduleHideNotification hides the panel after NotificationAutoHide
func (ui *RootUI) scheduleHideNotification() {
	ui.notificationTimer = time.AfterFunc(NotificationAutoHide, ui.hideNotification)
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// NotificationText returns the current notification message
func (ui *RootUI) NotificationText() string {
	return ui.notificationLabel.Text
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, ui.localization)
	sd.SetOnSaved(ui.onSettingsSaved)
	sd.Show()
}

// onSettingsSaved applies language and feed changes
func (ui *RootUI) onSettingsSaved() {
	ui.onLanguageChange(ui.settings.GetLanguage())

	year := ui.settings.GetLineupYear()
	if ui.yearSelect.Selected != year {
		// OnChanged reloads
		ui.yearSelect.SetSelected(year)
		return
	}
	ui.Reload()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.weekendLabel.SetText(ui.localization.GetText(KeyWeekend))
	ui.yearLabel.SetText(ui.localization.GetText(KeyYear))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoArtists))

	// swap options without firing the filter handler
	onChanged := ui.weekendSelect.OnChanged
	ui.weekendSelect.OnChanged = nil
	ui.weekendSelect.Options = ui.filterOptions()
	ui.weekendSelect.SetSelected(ui.localization.FilterLabel(ui.filter))
	ui.weekendSelect.OnChanged = onChanged

	for _, card := range ui.cards {
		card.RefreshTexts()
	}
}
