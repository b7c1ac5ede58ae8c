package readme

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is one heading of a markdown document.
type Heading struct {
	Level int
	Text  string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Outline returns every heading of a markdown document in document order.
func Outline(source []byte) []Heading {
	if len(source) == 0 {
		return nil
	}

	doc := markdown.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{
			Level: heading.Level,
			Text:  nodeText(heading, source),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// Title returns the first level-1 heading, falling back to the first heading
// of any level, or "" when the document has none.
func Title(source []byte) string {
	headings := Outline(source)
	for _, h := range headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	if len(headings) > 0 {
		return headings[0].Text
	}
	return ""
}

// nodeText concatenates the text segments below n, code spans included.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
