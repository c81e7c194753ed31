package summarizer

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx writes the transcript, and the summary when present, as a
// styled Word document. The summary section carries the same "SUMMARY:"
// marker as the text-file output.
func WriteDocx(title, transcript, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	addTextBlock(doc, transcript)

	if summary != "" {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "SUMMARY:", true, 14)
		addTextBlock(doc, summary)
	}

	return doc.SaveTo(outputPath)
}

func addTextBlock(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
