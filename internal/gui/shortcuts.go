package gui

import (
	"fmt"
	"strings"

	. "modernc.org/tk9.0"
)

type shortcutBinding struct {
	sequences   []string
	display     string
	description string
	category    string
	// textSafe bindings are skipped while a text entry has the focus so
	// plain letters keep working there.
	textSafe bool
	handler  func()
}

func (c *Controller) shortcutBindings() []shortcutBinding {
	return []shortcutBinding{
		{
			category:    "Repository",
			display:     "Ctrl+O",
			description: "Browse for a repository",
			sequences:   []string{"<Control-KeyPress-o>"},
			handler:     c.browse,
		},
		{
			category:    "Repository",
			display:     "F5",
			description: "Reload status and branches",
			sequences:   []string{"<KeyPress-F5>"},
			handler:     c.reload,
		},
		{
			category:    "Repository",
			display:     "Ctrl+W",
			description: "Close the repository",
			sequences:   []string{"<Control-KeyPress-w>"},
			handler:     c.closeRepository,
		},
		{
			category:    "Repository",
			display:     "Ctrl+Q",
			description: "Quit",
			sequences:   []string{"<Control-KeyPress-q>"},
			handler:     func() { Destroy(App) },
		},
		{
			category:    "Changes",
			display:     "s",
			description: "Stage the selected change",
			sequences:   []string{"<KeyPress-s>"},
			textSafe:    true,
			handler:     c.stageSelected,
		},
		{
			category:    "Changes",
			display:     "u",
			description: "Unstage the selected change",
			sequences:   []string{"<KeyPress-u>"},
			textSafe:    true,
			handler:     c.unstageSelected,
		},
		{
			category:    "Changes",
			display:     "Double-click",
			description: "Stage or unstage the clicked change",
		},
		{
			category:    "Commit",
			display:     "Ctrl+Return",
			description: "Commit staged changes with the message",
			sequences:   []string{"<Control-KeyPress-Return>"},
			handler:     c.commit,
		},
		{
			category:    "Errors",
			display:     "Escape",
			description: "Dismiss the error banner",
			sequences:   []string{"<KeyPress-Escape>"},
			handler:     c.dismissError,
		},
	}
}

func (c *Controller) bindShortcuts() {
	for _, sc := range c.shortcutBindings() {
		if sc.handler == nil {
			continue
		}
		handler := sc.handler
		if sc.textSafe {
			handler = func() {
				if c.entryHasFocus() {
					return
				}
				sc.handler()
			}
		}
		for _, seq := range sc.sequences {
			Bind(App, seq, Command(handler))
		}
	}
}

func (c *Controller) entryHasFocus() bool {
	focused := Focus()
	for _, entry := range []*TEntryWidget{c.ui.pathEntry, c.ui.commitEntry} {
		if entry != nil && focused == entry.String() {
			return true
		}
	}
	return false
}

func (c *Controller) showShortcutsDialog() {
	if c.state.shortcutsWindow != nil {
		Destroy(c.state.shortcutsWindow.Window)
		c.state.shortcutsWindow = nil
	}
	dialog := App.Toplevel()
	c.state.shortcutsWindow = dialog
	dialog.Window.WmTitle("Keyboard Shortcuts")
	WmTransient(dialog.Window, App)

	frame := dialog.TFrame(Padding("12p"))
	Grid(frame, Row(0), Column(0), Sticky(NEWS))
	GridColumnConfigure(frame.Window, 0, Weight(1))
	GridRowConfigure(frame.Window, 0, Weight(1))

	text := frame.Text(Width(56), Height(16), Wrap(WORD), Exportselection(false))
	text.Insert("1.0", shortcutsHelpText(c.shortcutBindings()))
	text.Configure(State("disabled"))
	Grid(text, Row(0), Column(0), Sticky(NEWS))

	closeBtn := frame.TButton(Txt("Close"), Command(func() { Destroy(dialog.Window) }))
	Grid(closeBtn, Row(1), Column(0), Sticky(E), Pady("8p 0"))

	Bind(dialog.Window, "<KeyPress-Escape>", Command(func() { Destroy(dialog.Window) }))
	Bind(dialog.Window, "<Destroy>", Command(func() {
		if c.state.shortcutsWindow == dialog {
			c.state.shortcutsWindow = nil
		}
	}))
	dialog.Window.Center()
}

func shortcutsHelpText(bindings []shortcutBinding) string {
	var b strings.Builder
	currentCategory := ""
	for _, sc := range bindings {
		if sc.category == "" || sc.display == "" || sc.description == "" {
			continue
		}
		if sc.category != currentCategory {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			currentCategory = sc.category
			b.WriteString(currentCategory)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %-14s %s\n", sc.display, sc.description)
	}
	return strings.TrimRight(b.String(), "\n")
}
