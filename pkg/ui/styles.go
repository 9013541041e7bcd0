package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	DarkGrayHex = "#333333"
)

var (
	Normal     = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}
	DimNormal  = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}
	BrightGray = lipgloss.AdaptiveColor{Light: "#847A85", Dark: "#979797"}
	Gray       = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	DarkGray   = lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"}
	Green      = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	DimGreen   = lipgloss.AdaptiveColor{Light: "#72D2B0", Dark: "#0B5137"}
	Fuchsia    = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	DimFuchsia = lipgloss.AdaptiveColor{Light: "#F1A8FF", Dark: "#99519E"}
	Indigo     = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Red        = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	Yellow     = lipgloss.AdaptiveColor{Light: "#9BA92F", Dark: "#ECFD65"}

	// instagram color palette
	// https://www.color-hex.com/color-palette/44340
	InstaYellow  = lipgloss.Color("#feda75")
	InstaMagenta = lipgloss.Color("#d62976")
	InstaPurple  = lipgloss.Color("#962fbf")
	InstaBlue    = lipgloss.Color("#4f5bd5")

	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	DimStyle     = lipgloss.NewStyle().Foreground(DimNormal)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Gray)
	MatchStyle   = lipgloss.NewStyle().Foreground(Fuchsia).Underline(true)
	HeaderStyle  = lipgloss.NewStyle().Foreground(BrightGray).Bold(true)
	SortedStyle  = lipgloss.NewStyle().Foreground(Fuchsia).Bold(true)
	CursorStyle  = lipgloss.NewStyle().Foreground(Fuchsia).Bold(true)
	FavoriteStar = lipgloss.NewStyle().Foreground(InstaYellow)

	TabStyle         = lipgloss.NewStyle().Foreground(InstaPurple).Padding(0, 1)
	SelectedTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFDF5")).Background(InstaMagenta).Padding(0, 1).Bold(true)

	LogoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ECFD65")).
			Background(Fuchsia).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	InfoStyle    = lipgloss.NewStyle().Foreground(Indigo)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(InstaBlue).
			Padding(0, 1)
)
