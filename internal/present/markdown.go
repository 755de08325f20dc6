// Package present renders a commit or tag message body for terminal
// display. Messages may contain Markdown (emphasis, lists, headings); this
// package walks the parsed document and reflows it into plain text instead
// of showing raw asterisks and list markers, the way `show` and the default
// (non-`--oneline`) `log` format present them.
package present

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Render parses source as Markdown and reflows it into plain text: emphasis
// and code-span markers are stripped, list items get a "- " bullet, headings
// get a trailing blank line, and code blocks are indented by four spaces.
// It never emits HTML — show and log are terminal commands, not a browser.
func Render(source string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var buf strings.Builder
	renderBlock(&buf, doc, src, 0)
	return strings.TrimSpace(buf.String())
}

func renderBlock(buf *strings.Builder, n ast.Node, src []byte, depth int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			renderInline(buf, c, src)
			buf.WriteString("\n\n")
		case ast.KindHeading:
			renderInline(buf, c, src)
			buf.WriteString("\n\n")
		case ast.KindList:
			renderList(buf, c, src, depth)
		case ast.KindBlockquote:
			var inner strings.Builder
			renderBlock(&inner, c, src, depth)
			for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
				buf.WriteString("> " + line + "\n")
			}
			buf.WriteString("\n")
		case ast.KindCodeBlock, ast.KindFencedCodeBlock:
			lines := c.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.WriteString("    " + string(seg.Value(src)))
			}
			buf.WriteString("\n")
		case ast.KindThematicBreak:
			buf.WriteString(strings.Repeat("-", 40) + "\n\n")
		default:
			renderBlock(buf, c, src, depth)
		}
	}
}

func renderList(buf *strings.Builder, list ast.Node, src []byte, depth int) {
	indent := strings.Repeat("  ", depth)
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		buf.WriteString(indent + "- ")
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Kind() == ast.KindList {
				buf.WriteString("\n")
				renderList(buf, c, src, depth+1)
				continue
			}
			renderInline(buf, c, src)
		}
		buf.WriteString("\n")
	}
}

func renderInline(buf *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(src))
			if v.SoftLineBreak() {
				buf.WriteString(" ")
			}
			if v.HardLineBreak() {
				buf.WriteString("\n")
			}
		case *ast.String:
			buf.Write(v.Value)
		case *ast.CodeSpan:
			renderInline(buf, c, src)
		case *ast.Link:
			renderInline(buf, c, src)
			if len(v.Destination) > 0 {
				buf.WriteString(" (" + string(v.Destination) + ")")
			}
		default:
			renderInline(buf, c, src)
		}
	}
}
