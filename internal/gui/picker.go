package gui

import (
	"context"
	"os"
	"strings"

	. "modernc.org/tk9.0"
)

// tkFolderPicker shows the native directory chooser. PickFolder may be
// called from any goroutine; the dialog itself runs on the Tk event loop.
type tkFolderPicker struct {
	initialDir func() string
}

func (p *tkFolderPicker) PickFolder(ctx context.Context) (string, bool, error) {
	result := make(chan string, 1)
	initial := p.initial()
	PostEvent(func() {
		dir := ChooseDirectory(
			Parent(App),
			Title("Select Git repository"),
			Initialdir(initial),
			Mustexist(true),
		)
		result <- strings.TrimSpace(dir)
	}, false)
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case dir := <-result:
		return dir, dir != "", nil
	}
}

func (p *tkFolderPicker) initial() string {
	if p.initialDir != nil {
		if dir := p.initialDir(); dir != "" {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
