package gui

import (
	"fmt"

	"github.com/thiagokokada/branchy/internal/buildinfo"
	"github.com/thiagokokada/branchy/internal/git"
	. "modernc.org/tk9.0"
)

func (c *Controller) initMenubar() {
	menubar := Menu(Tearoff(false))

	fileMenu := menubar.Menu(Tearoff(false))
	fileMenu.AddCommand(Lbl("Open Repository..."), Command(c.browse))
	fileMenu.AddCommand(Lbl("Reload"), Command(c.reload))
	fileMenu.AddCommand(Lbl("Close Repository"), Command(c.closeRepository))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Quit"), Command(func() { Destroy(App) }))
	menubar.AddCascade(Lbl("File"), Mnu(fileMenu))

	helpMenu := menubar.Menu(Tearoff(false))
	helpMenu.AddCommand(Lbl("Keyboard Shortcuts"), Command(c.showShortcutsDialog))
	helpMenu.AddCommand(Lbl("About branchy"), Command(c.showAboutDialog))
	menubar.AddCascade(Lbl("Help"), Mnu(helpMenu))

	App.Configure(Mnu(menubar))
}

func (c *Controller) showAboutDialog() {
	message := fmt.Sprintf("%s\n\nRequires git %s or newer.", buildinfo.String(), git.MinGitVersion())
	MessageBox(
		Parent(App),
		Title("About branchy"),
		Icon("info"),
		Msg(message),
		Type("ok"),
	)
}
