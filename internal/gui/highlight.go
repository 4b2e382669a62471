//go:build !nosyntaxhighlight

package gui

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const syntaxHighlightAvailable = true

// syntaxSpan colors runes [Start, End) of a text widget line.
type syntaxSpan struct {
	Line  int
	Start int
	End   int
	Color string
}

// syntaxSpans tokenizes the code part of every hunk line with the lexer
// matching the file named by the preceding "diff --git" header.
func syntaxSpans(content string, style *chroma.Style) []syntaxSpan {
	if content == "" || style == nil {
		return nil
	}
	var (
		spans        []syntaxSpan
		currentLexer chroma.Lexer
	)
	for i, line := range strings.Split(content, "\n") {
		if path, ok := diffPathFromLine(line); ok {
			currentLexer = lexerForPath(path)
			continue
		}
		if currentLexer == nil || strings.HasPrefix(line, "@@") {
			continue
		}
		code, offset, ok := diffLineCode(line)
		if !ok || code == "" {
			continue
		}
		spans = append(spans, lineSpans(currentLexer, style, code, i+1, offset)...)
	}
	return spans
}

func lineSpans(lexer chroma.Lexer, style *chroma.Style, code string, lineNo, offset int) []syntaxSpan {
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}
	var spans []syntaxSpan
	col := offset
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		length := utf8.RuneCountInString(token.Value)
		if color := colorFromEntry(style.Get(token.Type)); color != "" && strings.TrimSpace(token.Value) != "" {
			spans = append(spans, syntaxSpan{Line: lineNo, Start: col, End: col + length, Color: color})
		}
		col += length
	}
	return spans
}

func styleForPalette(p colorPalette) *chroma.Style {
	name := "github"
	if p.isDark() {
		name = "github-dark"
	}
	if st := styles.Get(name); st != nil {
		return st
	}
	return styles.Fallback
}

func colorFromEntry(entry chroma.StyleEntry) string {
	if !entry.Colour.IsSet() {
		return ""
	}
	return "#" + strings.TrimPrefix(strings.ToLower(entry.Colour.String()), "#")
}

func lexerForPath(path string) chroma.Lexer {
	if path == "" {
		return nil
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}
