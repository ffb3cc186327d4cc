package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// HelpMap adapts the bindings to the bubbles help component.
type HelpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

var _ help.KeyMap = HelpMap{}

// NewHelpMap builds the short help line from the given actions and the full
// help from every context.
func NewHelpMap(short ...Action) HelpMap {
	var m HelpMap
	for _, a := range short {
		for _, b := range All {
			if b.Action == a {
				m.short = append(m.short, b.KeyBinding())
				break
			}
		}
	}
	for _, ctx := range Contexts {
		var col []key.Binding
		for _, b := range ByContext(ctx) {
			col = append(col, b.KeyBinding())
		}
		m.full = append(m.full, col)
	}
	return m
}

// KeyBinding converts b to a bubbles key binding.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(b.Keys[:min(len(b.Keys), 2)], "/"), strings.ToLower(b.Description)),
	)
}

// ShortHelp implements help.KeyMap.
func (m HelpMap) ShortHelp() []key.Binding { return m.short }

// FullHelp implements help.KeyMap.
func (m HelpMap) FullHelp() [][]key.Binding { return m.full }
