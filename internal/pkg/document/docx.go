package document

import (
	"bytes"

	"github.com/fumiama/go-docx"
)

// DOCX run sizes are in half-points: 48 = 24pt, 32 = 16pt.
const (
	docxTitleSize   = "48"
	docxSubjectSize = "32"
)

// RenderDocx renders a template as a word-processing document: a centered
// bold title, a centered subject line and one paragraph with the body text
// verbatim. Word wrap is left to the viewer, and no placeholder decoding
// happens here.
func RenderDocx(name, subject, body string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText(name).Size(docxTitleSize).Bold()

	subjectPara := doc.AddParagraph().Justification("center")
	subjectPara.AddText(subject).Size(docxSubjectSize)

	doc.AddParagraph().AddText(body)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
