// Package document renders a template (title, subject, body) into DOCX or PDF
// bytes. The PDF path does full manual layout: a layout engine turns the text
// into pages of positioned runs, which the drawing backend then paints.
package document

import (
	"html"
	"regexp"
	"strings"
)

// Style describes the font of a text run.
type Style struct {
	Size float64
	Bold bool
}

// Run is a single positioned line of text on a page. X and Y are in page
// units with Y at the text baseline.
type Run struct {
	Text  string
	X, Y  float64
	Style Style
}

// Page holds the runs drawn on one page.
type Page struct {
	Runs []Run
}

// MeasureFunc reports the rendered width and line height of text in a style.
type MeasureFunc func(text string, style Style) (w, h float64)

// Layout lays text out onto fixed-size pages.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Measure    MeasureFunc
}

var (
	titleStyle   = Style{Size: 24, Bold: true}
	subjectStyle = Style{Size: 16}
	bodyStyle    = Style{Size: 12}
)

// Render produces the page description for a template: centered title,
// centered subject, then the body paragraphs word-wrapped and paginated.
// The body must already be plain text (see PlainText).
func (l Layout) Render(title, subject, body string) []Page {
	pages := []Page{{}}
	page := &pages[0]
	y := l.Margin

	titleW, titleH := l.Measure(title, titleStyle)
	page.Runs = append(page.Runs, Run{Text: title, X: (l.PageWidth - titleW) / 2, Y: y, Style: titleStyle})
	y += titleH + 20

	subjectW, subjectH := l.Measure(subject, subjectStyle)
	page.Runs = append(page.Runs, Run{Text: subject, X: (l.PageWidth - subjectW) / 2, Y: y, Style: subjectStyle})
	y += subjectH + 30

	maxWidth := l.PageWidth - 2*l.Margin
	for _, paragraph := range strings.Split(body, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		for _, line := range l.wrap(paragraph, maxWidth) {
			_, lineH := l.Measure(line, bodyStyle)
			if y+lineH > l.PageHeight-l.Margin {
				pages = append(pages, Page{})
				page = &pages[len(pages)-1]
				y = l.Margin
			}
			page.Runs = append(page.Runs, Run{Text: line, X: l.Margin, Y: y, Style: bodyStyle})
			y += lineH + 2
		}

		// gap between paragraphs
		y += 8
	}

	return pages
}

// wrap packs words greedily into lines whose measured width stays within
// maxWidth. A line exactly at the limit is kept; the first word over the
// limit starts the next line.
func (l Layout) wrap(text string, maxWidth float64) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		w, _ := l.Measure(candidate, bodyStyle)
		if w > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

var (
	blockTags = strings.NewReplacer(
		"<br />", "\n",
		"<br/>", "\n",
		"<br>", "\n",
		"<p>", "",
		"</p>", "\n\n",
		"<div>", "",
		"</div>", "\n",
	)
	anyTag    = regexp.MustCompile(`<[^>]*>`)
	blankRuns = regexp.MustCompile(`\n\s*\n`)
)

// PlainText converts a stored HTML template body into the plain text fed to
// the layout engine: entities decoded, block-level tags turned into line
// breaks, every remaining tag dropped, blank-line runs collapsed to one.
func PlainText(body string) string {
	text := html.UnescapeString(body)
	text = blockTags.Replace(text)
	text = anyTag.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
