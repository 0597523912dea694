package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ringrush/internal/core"
)

// KeyMap declares the game's key bindings. Bindings carry their own help
// text so the footer stays in sync with the actual keys.
type KeyMap struct {
	Commit key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "reverse / score"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km KeyMap) Map(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Commit):
		return core.ActionCommit, false
	}
	return core.ActionNone, false
}

// HelpEntries returns the help footer entries in display order.
func (km KeyMap) HelpEntries() []key.Binding {
	return []key.Binding{km.Commit, km.Quit}
}
