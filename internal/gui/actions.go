package gui

import (
	"strings"

	"github.com/thiagokokada/branchy/internal/git"
)

func (c *Controller) openTypedPath() {
	path := strings.TrimSpace(c.ui.pathEntry.Textvariable())
	if path == "" {
		c.browse()
		return
	}
	go c.repo.OpenRepository(c.ctx, path)
}

func (c *Controller) browse() {
	go c.repo.Browse(c.ctx)
}

func (c *Controller) closeRepository() {
	go c.repo.CloseRepository()
}

func (c *Controller) reload() {
	if !c.state.snap.HasRepository() {
		return
	}
	go c.repo.Reload(c.ctx)
}

func (c *Controller) toggleAutoReload() {
	enabled := !c.state.snap.AutoReload
	go c.repo.SetAutoReload(enabled)
}

func (c *Controller) dismissError() {
	c.repo.DismissError()
}

func (c *Controller) onChangeSelected() {
	sel := c.ui.changes.Selection("")
	if len(sel) == 0 {
		return
	}
	snap := c.state.snap
	idx, ok := changeIndex(sel[0], len(snap.Changes))
	if !ok {
		return
	}
	change := snap.Changes[idx]
	if sameChange(snap.Selected, &change) {
		return
	}
	c.repo.Select(&change)
}

func (c *Controller) selectedChange() *git.FileChange {
	if c.state.snap.Selected == nil {
		return nil
	}
	change := *c.state.snap.Selected
	return &change
}

func (c *Controller) stageSelected() {
	change := c.selectedChange()
	if change == nil || change.IsStaged {
		return
	}
	go c.repo.Stage(c.ctx, change)
}

func (c *Controller) unstageSelected() {
	change := c.selectedChange()
	if change == nil || !change.IsStaged {
		return
	}
	go c.repo.Unstage(c.ctx, change)
}

func (c *Controller) toggleStaged() {
	change := c.selectedChange()
	if change == nil {
		return
	}
	if change.IsStaged {
		c.unstageSelected()
	} else {
		c.stageSelected()
	}
}

func (c *Controller) checkoutSelected() {
	sel := c.ui.branches.Curselection()
	if len(sel) == 0 {
		return
	}
	branches := c.state.snap.Branches
	idx := sel[0]
	if idx < 0 || idx >= len(branches) {
		return
	}
	branch := branches[idx]
	go c.repo.Checkout(c.ctx, &branch)
}

func (c *Controller) commit() {
	msg := c.ui.commitEntry.Textvariable()
	c.repo.SetCommitMessage(msg)
	if !c.state.snap.HasRepository() || strings.TrimSpace(msg) == "" {
		return
	}
	go c.repo.Commit(c.ctx)
}
