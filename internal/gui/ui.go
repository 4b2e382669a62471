package gui

import (
	"fmt"
	"log/slog"

	"github.com/thiagokokada/branchy/internal/gui/tkutil"
	"github.com/thiagokokada/branchy/internal/model"
	. "modernc.org/tk9.0"
)

func (c *Controller) buildUI() {
	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 2, Weight(1))

	c.buildControls()
	c.buildErrorBanner()

	pane := App.TPanedwindow(Orient(HORIZONTAL))
	Grid(pane, Row(2), Column(0), Sticky(NEWS), Padx("4p"), Pady("4p"))
	sidebar := pane.TPanedwindow(Orient(VERTICAL))
	diffArea := pane.TFrame()
	pane.Add(sidebar.Window)
	pane.Add(diffArea.Window)
	configurePane(pane.Window, sidebar.Window, "-weight 2")
	configurePane(pane.Window, diffArea.Window, "-weight 3")

	changesArea := sidebar.TFrame()
	branchesArea := sidebar.TFrame()
	sidebar.Add(changesArea.Window)
	sidebar.Add(branchesArea.Window)
	configurePane(sidebar.Window, changesArea.Window, "-weight 3")
	configurePane(sidebar.Window, branchesArea.Window, "-weight 1")

	c.buildChanges(changesArea)
	c.buildBranches(branchesArea)
	c.buildDiff(diffArea)
	c.buildCommit()

	c.ui.status = App.TLabel(Anchor(W), Relief(SUNKEN), Padding("4p"))
	Grid(c.ui.status, Row(4), Column(0), Sticky(WE))

	c.bindShortcuts()
}

func configurePane(pane, window *Window, options string) {
	if _, err := tkutil.Eval("%s pane %s %s", pane, window, options); err != nil {
		slog.Debug("configure pane", slog.String("options", options), slog.Any("error", err))
	}
}

func (c *Controller) buildControls() {
	controls := App.TFrame(Padding("8p"))
	Grid(controls, Row(0), Column(0), Sticky(WE))
	GridColumnConfigure(controls.Window, 1, Weight(1))

	Grid(controls.TLabel(Txt("Repository:"), Anchor(E)), Row(0), Column(0), Sticky(E))
	c.ui.pathEntry = controls.TEntry(Width(60), Textvariable(""))
	Grid(c.ui.pathEntry, Row(0), Column(1), Sticky(WE), Padx("4p"))
	Bind(c.ui.pathEntry, "<KeyPress-Return>", Command(c.openTypedPath))

	c.ui.openButton = controls.TButton(Txt("Open"), Command(c.openTypedPath))
	Grid(c.ui.openButton, Row(0), Column(2), Padx("2p"))
	c.ui.browseButton = controls.TButton(Txt("Browse..."), Command(c.browse))
	Grid(c.ui.browseButton, Row(0), Column(3), Padx("2p"))
	c.ui.closeButton = controls.TButton(Txt("Close"), Command(c.closeRepository))
	Grid(c.ui.closeButton, Row(0), Column(4), Padx("2p"))
	c.ui.reloadButton = controls.TButton(Txt("Reload"), Command(c.reload))
	Grid(c.ui.reloadButton, Row(0), Column(5), Padx("2p"))
	c.ui.autoButton = controls.TButton(Txt(autoReloadLabel(false)), Command(c.toggleAutoReload))
	Grid(c.ui.autoButton, Row(0), Column(6), Sticky(E))

	c.ui.branchLabel = controls.TLabel(Txt(branchLabel(model.Snapshot{})), Anchor(W))
	Grid(c.ui.branchLabel, Row(1), Column(0), Columnspan(7), Sticky(W), Pady("4p 0"))
}

func (c *Controller) buildErrorBanner() {
	banner := App.TFrame(Padding("6p"))
	Grid(banner, Row(1), Column(0), Sticky(WE), Padx("8p"))
	GridColumnConfigure(banner.Window, 0, Weight(1))

	c.ui.bannerLabel = banner.TLabel(
		Anchor(W),
		Background(c.theme.palette.ErrorBg),
		Foreground(c.theme.palette.ErrorFg),
		Padding("6p"),
	)
	Grid(c.ui.bannerLabel, Row(0), Column(0), Sticky(WE))

	progress := fmt.Sprintf("%s.progress", banner)
	if _, err := tkutil.Eval("ttk::progressbar %s -orient horizontal -mode determinate -maximum 100 -length 120", progress); err != nil {
		slog.Error("create error progress bar", slog.Any("error", err))
	} else {
		c.ui.bannerProgress = progress
		tkutil.EvalOrLog("grid %s -row 0 -column 1 -padx 6p", progress)
	}

	dismiss := banner.TButton(Txt("Dismiss"), Command(c.dismissError))
	Grid(dismiss, Row(0), Column(2), Sticky(E))

	c.ui.banner = banner
	tkutil.EvalOrLog("grid remove %s", banner)
}

func (c *Controller) buildChanges(area *TFrameWidget) {
	GridRowConfigure(area.Window, 1, Weight(1))
	GridColumnConfigure(area.Window, 0, Weight(1))

	Grid(area.TLabel(Txt("Changes"), Anchor(W)), Row(0), Column(0), Columnspan(2), Sticky(W))

	scroll := area.TScrollbar()
	c.ui.changes = area.TTreeview(
		Show("headings"),
		Columns("status staged path"),
		Selectmode("browse"),
		Height(14),
		Yscrollcommand(func(e *Event) { e.ScrollSet(scroll) }),
	)
	c.ui.changes.Column("status", Anchor(W), Width(110))
	c.ui.changes.Column("staged", Anchor("center"), Width(60))
	c.ui.changes.Column("path", Anchor(W), Width(320))
	c.ui.changes.Heading("status", Txt("Status"))
	c.ui.changes.Heading("staged", Txt("Staged"))
	c.ui.changes.Heading("path", Txt("Path"))
	c.ui.changes.TagConfigure(stagedRowTag, Background(c.theme.palette.StagedRow))
	c.ui.changes.TagConfigure(unstagedRowTag, Background(c.theme.palette.UnstagedRow))
	Grid(c.ui.changes, Row(1), Column(0), Sticky(NEWS))
	Grid(scroll, Row(1), Column(1), Sticky(NS))
	scroll.Configure(Command(func(e *Event) { e.Yview(c.ui.changes) }))

	Bind(c.ui.changes, "<<TreeviewSelect>>", Command(c.onChangeSelected))
	Bind(c.ui.changes, "<Double-Button-1>", Command(c.toggleStaged))

	buttons := area.TFrame(Padding("0 4p 0 0"))
	Grid(buttons, Row(2), Column(0), Columnspan(2), Sticky(E))
	c.ui.stageButton = buttons.TButton(Txt("Stage"), Command(c.stageSelected))
	c.ui.unstageButton = buttons.TButton(Txt("Unstage"), Command(c.unstageSelected))
	Grid(c.ui.stageButton, Row(0), Column(0), Padx("2p"))
	Grid(c.ui.unstageButton, Row(0), Column(1), Padx("2p"))
}

func (c *Controller) buildBranches(area *TFrameWidget) {
	GridRowConfigure(area.Window, 1, Weight(1))
	GridColumnConfigure(area.Window, 0, Weight(1))

	Grid(area.TLabel(Txt("Branches"), Anchor(W)), Row(0), Column(0), Columnspan(2), Sticky(W))

	scroll := area.TScrollbar()
	c.ui.branches = area.Listbox(Exportselection(false), Height(8))
	c.ui.branches.Configure(Yscrollcommand(func(e *Event) { e.ScrollSet(scroll) }))
	Grid(c.ui.branches, Row(1), Column(0), Sticky(NEWS))
	Grid(scroll, Row(1), Column(1), Sticky(NS))
	scroll.Configure(Command(func(e *Event) { e.Yview(c.ui.branches) }))
	Bind(c.ui.branches, "<Double-Button-1>", Command(c.checkoutSelected))

	c.ui.checkoutButton = area.TButton(Txt("Checkout"), Command(c.checkoutSelected))
	Grid(c.ui.checkoutButton, Row(2), Column(0), Columnspan(2), Sticky(E), Pady("4p 0"))
}

func (c *Controller) buildDiff(area *TFrameWidget) {
	GridRowConfigure(area.Window, 0, Weight(1))
	GridColumnConfigure(area.Window, 0, Weight(1))

	yScroll := area.TScrollbar(Command(func(e *Event) { e.Yview(c.ui.diff) }))
	xScroll := area.TScrollbar(Orient(HORIZONTAL), Command(func(e *Event) { e.Xview(c.ui.diff) }))
	c.ui.diff = area.Text(Wrap(NONE), Font(CourierFont(), 11), Exportselection(false), Tabs("1c"))
	c.ui.diff.Configure(Yscrollcommand(func(e *Event) { e.ScrollSet(yScroll) }))
	c.ui.diff.Configure(Xscrollcommand(func(e *Event) { e.ScrollSet(xScroll) }))
	for tag, color := range c.theme.palette.diffTagColors() {
		c.ui.diff.TagConfigure(tag, Background(color))
	}
	Grid(c.ui.diff, Row(0), Column(0), Sticky(NEWS))
	Grid(yScroll, Row(0), Column(1), Sticky(NS))
	Grid(xScroll, Row(1), Column(0), Sticky(WE))
	c.ui.diff.Configure(State("disabled"))
}

func (c *Controller) buildCommit() {
	frame := App.TFrame(Padding("8p 4p"))
	Grid(frame, Row(3), Column(0), Sticky(WE))
	GridColumnConfigure(frame.Window, 1, Weight(1))

	Grid(frame.TLabel(Txt("Message:"), Anchor(E)), Row(0), Column(0), Sticky(E))
	c.ui.commitEntry = frame.TEntry(Textvariable(""))
	Grid(c.ui.commitEntry, Row(0), Column(1), Sticky(WE), Padx("4p"))
	Bind(c.ui.commitEntry, "<KeyRelease>", Command(func() {
		c.repo.SetCommitMessage(c.ui.commitEntry.Textvariable())
	}))

	c.ui.commitButton = frame.TButton(Txt("Commit"), Command(c.commit))
	Grid(c.ui.commitButton, Row(0), Column(2), Sticky(E))
}
