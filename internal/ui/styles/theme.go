// Package styles holds the timetable color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // today, focused header
	Secondary lipgloss.Color // gradient end for today's header

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgEvent   lipgloss.Color // default event block background
	BgWeekend lipgloss.Color

	Border  lipgloss.Color // column separators
	NowLine lipgloss.Color // current time marker

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the timetable.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style // popup titles
	Header    lipgloss.Style // day header
	Today     lipgloss.Style // today's header when gradients are off
	Weekend   lipgloss.Style // weekend header
	Event     lipgloss.Style // event block
	EventTime lipgloss.Style // time prefix inside an event block
	Separator lipgloss.Style
	Now       lipgloss.Style // current time marker
	Status    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgEvent:   lipgloss.Color("#2d2a3e"),
	BgWeekend: lipgloss.Color("#202020"),

	Border:  lipgloss.Color("#3a3a3a"),
	NowLine: lipgloss.Color("#ff5555"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// EventStyle returns the event block style, tinted with color when set.
func (t *Theme) EventStyle(color string) lipgloss.Style {
	if color == "" {
		return t.S().Event
	}
	return t.S().Event.Background(lipgloss.Color(color))
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Header:    base.Bold(true),
		Today:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Weekend:   lipgloss.NewStyle().Foreground(t.FgMuted).Background(t.BgWeekend),
		Event:     base.Background(t.BgEvent),
		EventTime: lipgloss.NewStyle().Foreground(t.Primary).Background(t.BgEvent),
		Separator: lipgloss.NewStyle().Foreground(t.Border),
		Now:       lipgloss.NewStyle().Foreground(t.NowLine).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}
