// Package markdown converts Markdown documents into decks. Headings open
// new slides, lists become bullet lines, fenced code becomes code listings
// and pipe tables become slide tables.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	godeck "github.com/VantageDataChat/GoDeck"
)

// contentBox is the element area below the title placeholder.
var contentBox = godeck.NewTransform(
	godeck.Inches(0.5), godeck.Inches(1.75),
	godeck.Inches(9), godeck.Inches(4.5),
)

// Convert parses Markdown source and builds a presentation from it.
func Convert(src []byte) (*godeck.Presentation, error) {
	pres := godeck.New()
	if err := ConvertInto(pres, src); err != nil {
		return nil, err
	}
	return pres, nil
}

// ConvertInto appends the slides produced from src to an existing deck.
func ConvertInto(pres *godeck.Presentation, src []byte) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	c := converter{pres: pres, src: src}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := c.topLevel(n); err != nil {
			return err
		}
	}
	return nil
}

type converter struct {
	pres  *godeck.Presentation
	src   []byte
	slide *godeck.Slide
}

// current returns the slide under construction, opening an untitled one
// when content appears before the first heading.
func (c *converter) current() *godeck.Slide {
	if c.slide == nil {
		c.slide = c.pres.AddSlide(godeck.LayoutTitleAndContent)
	}
	return c.slide
}

func (c *converter) topLevel(n ast.Node) error {
	switch node := n.(type) {
	case *ast.Heading:
		if node.Level <= 2 {
			c.slide = c.pres.AddSlide(godeck.LayoutTitleAndContent)
			c.slide.SetTitle(c.inlineText(node))
		} else {
			c.current().AddBullet(c.inlineText(node))
		}
	case *ast.ThematicBreak:
		c.slide = c.pres.AddSlide(godeck.LayoutTitleAndContent)
	case *ast.Paragraph:
		c.current().AddBullet(c.inlineText(node))
	case *ast.List:
		c.list(node, 0)
	case *ast.FencedCodeBlock:
		cb := godeck.NewCodeBlock(c.blockLines(node), contentBox)
		if lang := node.Language(c.src); len(lang) > 0 {
			cb.SetLanguage(string(lang))
		}
		c.current().AddElement(cb)
	case *ast.CodeBlock:
		c.current().AddElement(godeck.NewCodeBlock(c.blockLines(node), contentBox))
	case *east.Table:
		c.table(node)
	case *ast.Blockquote:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			c.current().AddBullet(c.inlineText(child))
		}
	}
	return nil
}

func (c *converter) list(l *ast.List, depth int) {
	indent := strings.Repeat("  ", depth)
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if nested, ok := child.(*ast.List); ok {
				c.list(nested, depth+1)
				continue
			}
			c.current().AddBullet(indent + c.inlineText(child))
		}
	}
}

func (c *converter) table(t *east.Table) {
	var rows [][]string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, c.inlineText(cell))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return
	}
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	tbl := c.current().AddTable(len(rows), cols, contentBox)
	for i, r := range rows {
		for j, cellText := range r {
			tbl.GetCell(i, j).SetText(cellText)
		}
	}
}

// inlineText flattens the inline content of a node to plain text.
func (c *converter) inlineText(n ast.Node) string {
	var buf bytes.Buffer
	c.collectText(n, &buf)
	return buf.String()
}

func (c *converter) collectText(n ast.Node, buf *bytes.Buffer) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(c.src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			c.collectText(child, buf)
		}
	}
}

// blockLines joins the raw source lines of a code block.
func (c *converter) blockLines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(c.src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
