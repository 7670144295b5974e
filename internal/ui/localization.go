package ui

import (
	"golang.org/x/text/language"

	"github.com/ytget/lineup-browser/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyReload           = "reload"
	KeyLanguage         = "language"
	KeyWeekend          = "weekend"
	KeyYear             = "year"
	KeyDataURL          = "data_url"
	KeyDataURLHint      = "data_url_hint"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyShowTracks       = "show_tracks"
	KeyHideTracks       = "hide_tracks"
	KeyFollowers        = "followers"
	KeyPopularity       = "popularity"
	KeyHeadliner        = "headliner"
	KeyNoPreview        = "no_preview"
	KeyNoTracks         = "no_tracks"
	KeyBrokenLinkTitle  = "broken_link_title"
	KeyBrokenLink       = "broken_link"
	KeyLoadingLineup    = "loading_lineup"
	KeyLineupLoaded     = "lineup_loaded"
	KeyLineupLoadFailed = "lineup_load_failed"
	KeyNoArtists        = "no_artists"
	KeyFilterAll        = "filter_all"
	KeyFilterW1         = "filter_weekend_one"
	KeyFilterW2         = "filter_weekend_two"
	KeyFilterW1Only     = "filter_weekend_one_only"
	KeyFilterW2Only     = "filter_weekend_two_only"
)

// filterKeys maps each weekend filter to its label key
var filterKeys = map[model.WeekendFilter]string{
	model.FilterAll:            KeyFilterAll,
	model.FilterWeekendOne:     KeyFilterW1,
	model.FilterWeekendTwo:     KeyFilterW2,
	model.FilterWeekendOneOnly: KeyFilterW1Only,
	model.FilterWeekendTwoOnly: KeyFilterW2Only,
}

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

// FilterLabel returns the localized label for a weekend filter
func (l *Localization) FilterLabel(filter model.WeekendFilter) string {
	if key, ok := filterKeys[filter]; ok {
		return l.GetText(key)
	}
	return filter.String()
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// Tag returns the BCP 47 tag for the current language, used for number formatting
func (l *Localization) Tag() language.Tag {
	switch l.currentLanguage {
	case "ru":
		return language.Russian
	case "pt":
		return language.Portuguese
	default:
		return language.English
	}
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Lineup Browser",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyReload:           "Reload Lineup",
		KeyLanguage:         "Language",
		KeyWeekend:          "Weekend",
		KeyYear:             "Year",
		KeyDataURL:          "Data URL",
		KeyDataURLHint:      "Leave empty to use the built-in feed for the selected year",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyShowTracks:       "Show Top Tracks",
		KeyHideTracks:       "Hide Top Tracks",
		KeyFollowers:        "followers",
		KeyPopularity:       "Popularity",
		KeyHeadliner:        "Headliner",
		KeyNoPreview:        "No preview available",
		KeyNoTracks:         "No top tracks",
		KeyBrokenLinkTitle:  "Playback",
		KeyBrokenLink:       "broken link",
		KeyLoadingLineup:    "Loading lineup...",
		KeyLineupLoaded:     "Lineup loaded",
		KeyLineupLoadFailed: "Error fetching artists data",
		KeyNoArtists:        "No artists to show",
		KeyFilterAll:        "All",
		KeyFilterW1:         "Weekend One",
		KeyFilterW2:         "Weekend Two",
		KeyFilterW1Only:     "Weekend One ONLY",
		KeyFilterW2Only:     "Weekend Two ONLY",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Лайнап фестиваля",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyReload:           "Обновить лайнап",
		KeyLanguage:         "Язык",
		KeyWeekend:          "Уикенд",
		KeyYear:             "Год",
		KeyDataURL:          "URL данных",
		KeyDataURLHint:      "Оставьте пустым, чтобы использовать встроенный источник для выбранного года",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyShowTracks:       "Показать треки",
		KeyHideTracks:       "Скрыть треки",
		KeyFollowers:        "подписчиков",
		KeyPopularity:       "Популярность",
		KeyHeadliner:        "Хедлайнер",
		KeyNoPreview:        "Превью недоступно",
		KeyNoTracks:         "Нет треков",
		KeyBrokenLinkTitle:  "Воспроизведение",
		KeyBrokenLink:       "битая ссылка",
		KeyLoadingLineup:    "Загрузка лайнапа...",
		KeyLineupLoaded:     "Лайнап загружен",
		KeyLineupLoadFailed: "Ошибка загрузки данных об артистах",
		KeyNoArtists:        "Нет артистов",
		KeyFilterAll:        "Все",
		KeyFilterW1:         "Первый уикенд",
		KeyFilterW2:         "Второй уикенд",
		KeyFilterW1Only:     "Только первый уикенд",
		KeyFilterW2Only:     "Только второй уикенд",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Lineup do Festival",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyReload:           "Recarregar Lineup",
		KeyLanguage:         "Idioma",
		KeyWeekend:          "Fim de semana",
		KeyYear:             "Ano",
		KeyDataURL:          "URL dos dados",
		KeyDataURLHint:      "Deixe vazio para usar a fonte padrão do ano selecionado",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyShowTracks:       "Mostrar faixas",
		KeyHideTracks:       "Ocultar faixas",
		KeyFollowers:        "seguidores",
		KeyPopularity:       "Popularidade",
		KeyHeadliner:        "Atração principal",
		KeyNoPreview:        "Prévia indisponível",
		KeyNoTracks:         "Sem faixas",
		KeyBrokenLinkTitle:  "Reprodução",
		KeyBrokenLink:       "link quebrado",
		KeyLoadingLineup:    "Carregando lineup...",
		KeyLineupLoaded:     "Lineup carregado",
		KeyLineupLoadFailed: "Erro ao buscar dados dos artistas",
		KeyNoArtists:        "Nenhum artista",
		KeyFilterAll:        "Todos",
		KeyFilterW1:         "Primeiro fim de semana",
		KeyFilterW2:         "Segundo fim de semana",
		KeyFilterW1Only:     "SOMENTE primeiro fim de semana",
		KeyFilterW2Only:     "SOMENTE segundo fim de semana",
	}
}
