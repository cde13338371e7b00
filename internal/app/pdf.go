package app

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// markdownLink matches [text](url).
var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// writeSummaryPDF renders the Markdown summary into a simple PDF: headings
// sized by level, bullet lines marked, links clickable. It does not attempt
// full Markdown layout; summaries are short and mostly flat.
func writeSummaryPDF(markdown, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			pdf.Ln(5)
		case strings.HasPrefix(line, "#"):
			writeHeading(pdf, line)
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			writeBodyLine(pdf, "• "+line[2:])
		default:
			writeBodyLine(pdf, line)
		}
	}
	return pdf.OutputFileAndClose(outPath)
}

func writeHeading(pdf *gofpdf.Fpdf, line string) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	text := strings.TrimSpace(line[level:])
	if text == "" {
		return
	}
	size := 16.0
	switch {
	case level == 2:
		size = 13.0
	case level > 2:
		size = 12.0
	}
	pdf.SetFont("Helvetica", "B", size)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

// writeBodyLine writes one line, turning Markdown links into clickable
// spans. Intra-document anchors stay plain text.
func writeBodyLine(pdf *gofpdf.Fpdf, line string) {
	matches := markdownLink.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		pdf.MultiCell(0, 5, line, "", "L", false)
		return
	}
	pos := 0
	for _, m := range matches {
		if m[0] > pos {
			pdf.Write(5, line[pos:m[0]])
		}
		text, url := line[m[2]:m[3]], line[m[4]:m[5]]
		if strings.HasPrefix(url, "#") {
			pdf.Write(5, text)
		} else {
			pdf.WriteLinkString(5, text, url)
		}
		pos = m[1]
	}
	if pos < len(line) {
		pdf.Write(5, line[pos:])
	}
	pdf.Ln(6)
}
