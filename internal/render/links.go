package render

import (
	"fmt"
	"strings"

	"github.com/qzhang/pubgen/internal/bibtex"
)

// Entry fields that feed the links block.
const (
	FieldPaperURL = "publisherurl"
	FieldCodeURL  = "code"
	FieldCitation = "bibtex"
)

// FormatLinks renders the Paper and Code links of an entry followed by a
// collapsible block holding its verbatim citation. Missing or empty fields are
// left out; an entry with none of them yields "".
func FormatLinks(e bibtex.Entry) string {
	var links []string
	if e.Has(FieldPaperURL) {
		links = append(links, fmt.Sprintf("[Paper](%s)", e.Get(FieldPaperURL)))
	}
	if e.Has(FieldCodeURL) {
		links = append(links, fmt.Sprintf("[Code](%s)", e.Get(FieldCodeURL)))
	}

	citation := ""
	if e.Has(FieldCitation) {
		citation = citationBlock(e.Get(FieldCitation))
	}

	if len(links) == 0 {
		return citation
	}
	return strings.Join(links, " | ") + "\n" + citation
}

// citationBlock wraps a BibTeX record in an HTML details element. Newlines
// become Markdown hard breaks (two trailing spaces).
func citationBlock(record string) string {
	content := strings.ReplaceAll(record, "\n", "  \n")
	return "<details>\n<summary>BibTeX</summary>\n\n```bibtex\n" + content + "\n```\n</details>"
}
