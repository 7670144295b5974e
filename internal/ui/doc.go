// Package ui contains the Fyne-based desktop user interface for the lineup
// browser. It renders artist cards with their top tracks, wires play buttons
// to the playback coordinator, and keeps the weekend filter and festival
// year selectors in sync with the loaded data. All UI strings are localized
// via Localization.
package ui
