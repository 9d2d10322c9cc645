package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette used for actions and notifications
var (
	colorPrimary      = color.NRGBA{R: 22, G: 119, B: 255, A: 255}
	colorSuccess      = color.NRGBA{R: 82, G: 196, B: 26, A: 255}
	colorError        = color.NRGBA{R: 255, G: 77, B: 79, A: 255}
	colorHeaderLight  = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	colorHeaderDark   = color.NRGBA{R: 29, G: 29, B: 29, A: 255}
	colorSeparatorRow = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
)

// CompactTheme tightens the default theme so more table rows fit on screen
type CompactTheme struct {
	base fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameHeaderBackground:
		if variant == theme.VariantDark {
			return colorHeaderDark
		}
		return colorHeaderLight
	case theme.ColorNameSeparator:
		if variant != theme.VariantDark {
			return colorSeparatorRow
		}
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
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
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 4
	}
	return t.base.Size(name)
}
