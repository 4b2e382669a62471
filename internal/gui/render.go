package gui

import (
	"fmt"
	"math"

	"github.com/thiagokokada/branchy/internal/gui/tkutil"
	"github.com/thiagokokada/branchy/internal/model"
	. "modernc.org/tk9.0"
)

// render applies a repository change to the widgets. Only the parts named
// by ch.Fields are rebuilt; button states and the status bar always follow
// the latest snapshot.
func (c *Controller) render(ch model.Change) {
	s := ch.State
	f := ch.Fields
	c.state.snap = s

	if f.Has(model.FieldRepository) {
		c.renderRepository(s)
	}
	if f.Has(model.FieldRepository | model.FieldBranch) {
		c.ui.branchLabel.Configure(Txt(branchLabel(s)))
	}
	if f.Has(model.FieldRepository | model.FieldChanges) {
		c.renderChanges(s)
	}
	if f.Has(model.FieldRepository | model.FieldChanges | model.FieldSelection) {
		c.syncChangeSelection(s)
	}
	if f.Has(model.FieldRepository | model.FieldBranches) {
		c.renderBranches(s)
	}
	if f.Has(model.FieldSelection | model.FieldDiff) {
		c.renderDiff(s)
	}
	if f.Has(model.FieldCommitMessage) {
		c.renderCommitMessage(s)
	}
	if f.Has(model.FieldError) {
		c.renderError(s)
	}
	if f.Has(model.FieldAutoReload) {
		c.ui.autoButton.Configure(Txt(autoReloadLabel(s.AutoReload)))
	}
	c.renderActions(s)
}

func (c *Controller) renderRepository(s model.Snapshot) {
	if c.ui.pathEntry.Textvariable() != s.RepositoryPath {
		c.ui.pathEntry.Configure(Textvariable(s.RepositoryPath))
	}
	App.WmTitle(windowTitle(s.RepositoryPath))
}

func (c *Controller) renderChanges(s model.Snapshot) {
	tkutil.EvalOrLog("%s delete [%s children {}]", c.ui.changes, c.ui.changes)
	if label := placeholderLabel(s); label != "" {
		c.ui.changes.Insert("", "end", Id(placeholderRowID), Values([]string{"", "", label}))
		return
	}
	for _, row := range buildChangeRows(s.Changes) {
		vals := []string{row.Status, row.Staged, row.Path}
		c.ui.changes.Insert("", "end", Id(row.ID), Values(vals), Tags(row.Tag))
	}
}

func (c *Controller) syncChangeSelection(s model.Snapshot) {
	id, ok := selectedRowID(s.Changes, s.Selected)
	if !ok {
		tkutil.EvalOrLog("%s selection set {}", c.ui.changes)
		return
	}
	c.ui.changes.Selection("set", id)
	c.ui.changes.Focus(id)
	c.ui.changes.See(id)
}

func (c *Controller) renderBranches(s model.Snapshot) {
	c.ui.branches.Delete(0, END)
	entries := branchEntries(s.Branches)
	if len(entries) == 0 {
		if s.ShowEmptyBranches() {
			c.ui.branches.Insert(END, noBranchesLabel)
		}
		return
	}
	for _, entry := range entries {
		c.ui.branches.Insert(END, entry)
	}
	c.ui.branches.SelectionClear(0, END)
	if idx := currentBranchIndex(s.Branches); idx >= 0 {
		c.ui.branches.Activate(idx)
		c.ui.branches.See(idx)
	}
}

func (c *Controller) renderDiff(s model.Snapshot) {
	text := s.DiffText
	highlight := true
	if placeholder := diffPlaceholder(s); placeholder != "" {
		text = placeholder
		highlight = false
	}
	if text == c.state.diffText && highlight == c.state.diffHighlighted {
		return
	}
	c.state.diffText = text
	c.state.diffHighlighted = highlight
	c.writeDiffText(text, highlight)
}

func (c *Controller) writeDiffText(content string, highlight bool) {
	c.ui.diff.Configure(State(NORMAL))
	c.ui.diff.Delete("1.0", END)
	c.ui.diff.Insert("1.0", content)
	for _, tag := range diffTags {
		c.ui.diff.TagRemove(tag, "1.0", END)
	}
	c.clearSyntaxHighlight()
	if highlight {
		c.highlightDiffLines(content)
		if c.cfg.syntaxHighlight {
			c.applySyntaxHighlight(content)
		}
	}
	c.ui.diff.Configure(State("disabled"))
	c.ui.diff.Yviewmoveto(0)
}

func (c *Controller) highlightDiffLines(content string) {
	for _, lt := range diffLineTags(content) {
		start := fmt.Sprintf("%d.0", lt.Line)
		end := fmt.Sprintf("%d.0", lt.Line+1)
		c.ui.diff.TagAdd(lt.Tag, start, end)
	}
}

func (c *Controller) applySyntaxHighlight(content string) {
	for _, span := range syntaxSpans(content, c.theme.style) {
		tag := c.syntaxTagForColor(span.Color)
		start := fmt.Sprintf("%d.%d", span.Line, span.Start)
		end := fmt.Sprintf("%d.%d", span.Line, span.End)
		c.ui.diff.TagAdd(tag, start, end)
	}
}

func (c *Controller) clearSyntaxHighlight() {
	for _, tag := range c.state.syntaxTags {
		c.ui.diff.TagRemove(tag, "1.0", END)
	}
}

func (c *Controller) syntaxTagForColor(color string) string {
	if c.state.syntaxTags == nil {
		c.state.syntaxTags = make(map[string]string)
	}
	if tag, ok := c.state.syntaxTags[color]; ok {
		return tag
	}
	tag := fmt.Sprintf("syntax_%d", len(c.state.syntaxTags))
	c.ui.diff.TagConfigure(tag, Foreground(color))
	c.state.syntaxTags[color] = tag
	return tag
}

func (c *Controller) renderCommitMessage(s model.Snapshot) {
	if c.ui.commitEntry.Textvariable() != s.CommitMessage {
		c.ui.commitEntry.Configure(Textvariable(s.CommitMessage))
	}
}

func (c *Controller) renderError(s model.Snapshot) {
	if !s.HasError() {
		if c.state.bannerVisible {
			tkutil.EvalOrLog("grid remove %s", c.ui.banner)
			c.state.bannerVisible = false
		}
		return
	}
	c.ui.bannerLabel.Configure(Txt(s.ErrorMessage))
	if c.ui.bannerProgress != "" {
		tkutil.EvalOrLog("%s configure -value %d", c.ui.bannerProgress, int(math.Round(s.ErrorProgress)))
	}
	if !c.state.bannerVisible {
		tkutil.EvalOrLog("grid %s", c.ui.banner)
		c.state.bannerVisible = true
	}
}

func (c *Controller) renderActions(s model.Snapshot) {
	loaded := s.HasRepository()
	selected := s.Selected
	setEnabled(c.ui.closeButton, loaded)
	setEnabled(c.ui.reloadButton, loaded)
	setEnabled(c.ui.stageButton, selected != nil && !selected.IsStaged)
	setEnabled(c.ui.unstageButton, selected != nil && selected.IsStaged)
	setEnabled(c.ui.checkoutButton, loaded && len(s.Branches) > 0)
	setEnabled(c.ui.commitButton, loaded)
	c.ui.status.Configure(Txt(statusText(s)))
}

func setEnabled(btn *TButtonWidget, enabled bool) {
	if btn == nil {
		return
	}
	if enabled {
		btn.Configure(State(NORMAL))
		return
	}
	btn.Configure(State("disabled"))
}
