package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	prevPage key.Binding
	nextPage key.Binding
	copy     key.Binding
	reload   key.Binding
	details  key.Binding
	version  key.Binding
	esc      key.Binding
	quit     key.Binding
}

var keys = keyMap{
	prevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
	nextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy order id")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	details:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpLine renders the bindings as "key: action" pairs.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
