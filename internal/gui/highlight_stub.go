//go:build nosyntaxhighlight

package gui

import "github.com/alecthomas/chroma/v2"

const syntaxHighlightAvailable = false

type syntaxSpan struct {
	Line  int
	Start int
	End   int
	Color string
}

func syntaxSpans(content string, style *chroma.Style) []syntaxSpan { return nil }

func styleForPalette(p colorPalette) *chroma.Style { return nil }
