package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/lineup-browser/internal/model"
)

// Popularity badge colours
var (
	PopularityGreen  = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	PopularityYellow = color.RGBA{R: 234, G: 179, B: 8, A: 255}
	PopularityOrange = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	PopularityRed    = color.RGBA{R: 220, G: 38, B: 38, A: 255}

	PopularityForeground color.Color = color.White
)

// PopularityColor returns the badge colour for a popularity tier
func PopularityColor(tier model.PopularityTier) color.Color {
	switch tier {
	case model.PopularityTierHigh:
		return PopularityGreen
	case model.PopularityTierMedium:
		return PopularityYellow
	case model.PopularityTierLow:
		return PopularityOrange
	default:
		return PopularityRed
	}
}

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return PopularityGreen
	case theme.ColorNameError:
		return PopularityRed
	case theme.ColorNameWarning:
		return PopularityOrange
	case theme.ColorNamePrimary:
		return color.RGBA{R: 30, G: 215, B: 96, A: 255} // Spotify green for play buttons and links
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 248, G: 248, B: 246, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 240, B: 240, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18 // artist names
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10 // genre chips, badges
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
