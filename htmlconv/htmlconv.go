// Package htmlconv converts HTML documents into decks. It works on an
// already-parsed document: h1/h2 open new slides, paragraphs and list items
// become bullet lines, tables map to slide tables and data-URI images embed
// as pictures. Nothing is fetched from the network.
package htmlconv

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	godeck "github.com/VantageDataChat/GoDeck"
)

// contentBox is the element area below the title placeholder.
var contentBox = godeck.NewTransform(
	godeck.Inches(0.5), godeck.Inches(1.75),
	godeck.Inches(9), godeck.Inches(4.5),
)

// Convert parses an HTML document and builds a presentation from its body.
func Convert(r io.Reader) (*godeck.Presentation, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	pres := godeck.New()
	c := converter{pres: pres}
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		c.element(sel)
	})
	return pres, c.err
}

type converter struct {
	pres  *godeck.Presentation
	slide *godeck.Slide
	err   error
}

func (c *converter) current() *godeck.Slide {
	if c.slide == nil {
		c.slide = c.pres.AddSlide(godeck.LayoutTitleAndContent)
	}
	return c.slide
}

func (c *converter) element(sel *goquery.Selection) {
	if c.err != nil {
		return
	}
	switch goquery.NodeName(sel) {
	case "h1", "h2":
		c.slide = c.pres.AddSlide(godeck.LayoutTitleAndContent)
		c.slide.SetTitle(cleanText(sel.Text()))
	case "h3", "h4", "h5", "h6":
		c.current().AddBullet(cleanText(sel.Text()))
	case "hr":
		c.slide = c.pres.AddSlide(godeck.LayoutTitleAndContent)
	case "p":
		if text := cleanText(sel.Text()); text != "" {
			c.current().AddBullet(text)
		}
	case "ul", "ol":
		sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			c.current().AddBullet(cleanText(li.Text()))
		})
	case "pre":
		c.current().AddElement(godeck.NewCodeBlock(strings.TrimRight(sel.Text(), "\n"), contentBox))
	case "table":
		c.table(sel)
	case "img":
		c.image(sel)
	case "div", "section", "article", "main":
		sel.Children().Each(func(_ int, child *goquery.Selection) {
			c.element(child)
		})
	}
}

func (c *converter) table(sel *goquery.Selection) {
	var rows [][]string
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, cleanText(td.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
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
		for j, text := range r {
			tbl.GetCell(i, j).SetText(text)
		}
	}
}

// image embeds a data-URI image. Other src schemes are skipped since the
// converter never fetches.
func (c *converter) image(sel *goquery.Selection) {
	src, ok := sel.Attr("src")
	if !ok || !strings.HasPrefix(src, "data:image/") {
		return
	}
	idx := strings.Index(src, ",")
	if idx < 0 || !strings.Contains(src[:idx], "base64") {
		return
	}
	data, err := base64.StdEncoding.DecodeString(src[idx+1:])
	if err != nil {
		return
	}
	if _, err := c.current().AddPicture(data, contentBox); err != nil {
		c.err = err
	}
}

// cleanText collapses the whitespace runs HTML sources are full of.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
