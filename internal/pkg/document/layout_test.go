package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasure gives every character a width of 10 and every line a height
// equal to the style size, which makes wrap and pagination deterministic.
func fixedMeasure(text string, style Style) (float64, float64) {
	return float64(len(text)) * 10, style.Size
}

func testLayout() Layout {
	return Layout{
		PageWidth:  600,
		PageHeight: 800,
		Margin:     50,
		Measure:    fixedMeasure,
	}
}

func TestRenderTitleAndSubjectCentered(t *testing.T) {
	pages := testLayout().Render("Title", "Subject", "body")
	require.Len(t, pages, 1)
	require.GreaterOrEqual(t, len(pages[0].Runs), 3)

	title := pages[0].Runs[0]
	assert.Equal(t, "Title", title.Text)
	assert.True(t, title.Style.Bold)
	// 5 chars * 10 = 50 wide, centered on a 600pt page
	assert.Equal(t, 275.0, title.X)
	assert.Equal(t, 50.0, title.Y)

	subject := pages[0].Runs[1]
	assert.Equal(t, "Subject", subject.Text)
	assert.False(t, subject.Style.Bold)
	// below the title: margin + titleH + 20
	assert.Equal(t, 94.0, subject.Y)
}

func TestRenderWrapBoundary(t *testing.T) {
	l := testLayout()
	// usable width 500 = 50 chars; two 30-char words cannot share a line
	word := strings.Repeat("x", 30)
	pages := l.Render("T", "S", word+" "+word)

	require.Len(t, pages, 1)
	var bodyRuns []Run
	for _, r := range pages[0].Runs[2:] {
		bodyRuns = append(bodyRuns, r)
	}
	require.Len(t, bodyRuns, 2)
	assert.Equal(t, word, bodyRuns[0].Text)
	assert.Equal(t, word, bodyRuns[1].Text)

	// a line exactly at the limit stays together: 50 chars = 500 wide
	exact := strings.Repeat("y", 24) + " " + strings.Repeat("z", 25)
	pages = l.Render("T", "S", exact)
	require.Len(t, pages[0].Runs, 3)
	assert.Equal(t, exact, pages[0].Runs[2].Text)
}

func TestRenderPagination(t *testing.T) {
	l := testLayout()
	// each body line takes 12+2 pt; enough short paragraphs overflow page one
	var b strings.Builder
	for i := 0; i < 80; i++ {
		b.WriteString("line\n\n")
	}
	pages := l.Render("T", "S", b.String())

	require.Greater(t, len(pages), 1)
	for _, page := range pages {
		for _, run := range page.Runs {
			assert.LessOrEqual(t, run.Y+run.Style.Size, l.PageHeight-l.Margin)
		}
	}
	// the continuation page starts at the top margin
	assert.Equal(t, l.Margin, pages[1].Runs[0].Y)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			// decoded placeholder tokens look like tags and are stripped
			// from PDF body text along with everything else in brackets
			name:     "entities decoded",
			body:     "Cena: &lt;cena_celkem&gt; Kč",
			expected: "Cena:  Kč",
		},
		{
			name:     "br variants become newlines",
			body:     "a<br>b<br/>c<br />d",
			expected: "a\nb\nc\nd",
		},
		{
			name:     "paragraph tags become blank lines",
			body:     "<p>first</p><p>second</p>",
			expected: "first\n\nsecond",
		},
		{
			name:     "unknown tags dropped",
			body:     "<span>kept</span> text",
			expected: "kept text",
		},
		{
			name:     "blank runs collapse",
			body:     "a\n\n\n\nb",
			expected: "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.body))
		})
	}
}
