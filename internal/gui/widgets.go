package gui

import (
	. "modernc.org/tk9.0"
)

type appWidgets struct {
	pathEntry    *TEntryWidget
	openButton   *TButtonWidget
	browseButton *TButtonWidget
	closeButton  *TButtonWidget
	reloadButton *TButtonWidget
	autoButton   *TButtonWidget
	branchLabel  *TLabelWidget

	banner         *TFrameWidget
	bannerLabel    *TLabelWidget
	bannerProgress string

	changes       *TTreeviewWidget
	stageButton   *TButtonWidget
	unstageButton *TButtonWidget

	branches       *ListboxWidget
	checkoutButton *TButtonWidget

	diff *TextWidget

	commitEntry  *TEntryWidget
	commitButton *TButtonWidget

	status *TLabelWidget
}
