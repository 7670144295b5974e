package ui

import (
	"time"

	"github.com/ytget/lineup-browser/internal/playback"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconPlay      = string(playback.IconPlay)
	IconPause     = string(playback.IconPause)
	IconReload    = "⟳"
	IconHeadliner = "★"
	IconExpand    = "+"
	IconCollapse  = "−"
	IconError     = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	WeekendOneBadge    = "W1"
	WeekendTwoBadge    = "W2"
	PopularityFormat   = "%d"
)

// Layout sizing (cards / track rows)
const (
	CardMinWidth      float32 = 420
	BadgeMinWidth     float32 = 32
	BadgeMinHeight    float32 = 22
	PlayButtonWidth   float32 = 40
	GenreChipMaxCount         = 4
	SettingsDialogW   float32 = 520
	SettingsDialogH   float32 = 320
)

// Delays
const (
	NotificationAutoHide = 4 * time.Second
)
