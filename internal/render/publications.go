package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/qzhang/pubgen/internal/bibtex"
	"github.com/qzhang/pubgen/internal/reference"
)

// PublicationsTitle is the top-level heading of the publications document.
const PublicationsTitle = "Publications"

// SectionHeading returns the display heading for a section, e.g. "Preprints".
func SectionHeading(s reference.Section) string {
	return cases.Title(language.Und).String(string(s))
}

// GroupBySection assigns every entry to its section, keeping bibliography
// order within each section. Every section has a key, even when empty.
func GroupBySection(entries []bibtex.Entry) map[reference.Section][]bibtex.Entry {
	groups := make(map[reference.Section][]bibtex.Entry, len(reference.Sections))
	for _, s := range reference.Sections {
		groups[s] = nil
	}
	for _, e := range entries {
		s := reference.Classify(e.Get("keywords"))
		groups[s] = append(groups[s], e)
	}
	return groups
}

// FormatEntry renders one list item: bold title, authors, "venue, year" and
// the optional links block. Missing fields render as empty strings.
func FormatEntry(e bibtex.Entry, self string) string {
	notes := reference.ParseNote(e.Get("note"))

	var b strings.Builder
	fmt.Fprintf(&b, "- **%s**  \n", e.Get("title"))
	fmt.Fprintf(&b, "   %s     \n", FormatAuthors(e.Get("author"), notes, self))
	fmt.Fprintf(&b, "   %s, %s     \n", e.Venue(), e.Get("year"))
	if links := FormatLinks(e); links != "" {
		fmt.Fprintf(&b, "  %s\n", links)
	}
	return b.String()
}

// PublicationsMarkdown renders the whole publications document.
func PublicationsMarkdown(entries []bibtex.Entry, self string) string {
	return GroupedPublicationsMarkdown(GroupBySection(entries), self)
}

// GroupedPublicationsMarkdown renders the publications document from entries
// already grouped by GroupBySection.
func GroupedPublicationsMarkdown(groups map[reference.Section][]bibtex.Entry, self string) string {
	var b strings.Builder
	b.WriteString("# " + PublicationsTitle + "\n\n")
	for _, s := range reference.Sections {
		b.WriteString("## " + SectionHeading(s) + "\n\n")
		for _, e := range groups[s] {
			b.WriteString(FormatEntry(e, self))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// WritePublications writes the publications document to w.
func WritePublications(w io.Writer, entries []bibtex.Entry, self string) error {
	_, err := io.WriteString(w, PublicationsMarkdown(entries, self))
	return err
}
