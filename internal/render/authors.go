// Package render turns bibliography entries into the Markdown documents
// published on the research page.
package render

import (
	"strings"

	"github.com/qzhang/pubgen/internal/reference"
)

// Markers appended to annotated author names.
const (
	EqualContribMark  = "†"
	SupervisedMark    = "*"
	CorrespondingMark = "✉"
)

// FormatAuthors renders a BibTeX author list as "First Last, First Last, ...".
//
// The self-identity author (named by self, or marked self in the note) is
// bolded; equal contribution, supervision and corresponding authorship append
// their markers in that order.
func FormatAuthors(authors string, notes reference.Annotations, self string) string {
	names := reference.SplitAuthors(authors)
	formatted := make([]string, len(names))
	for i, name := range names {
		formatted[i] = formatAuthor(name, notes.Roles(name), self)
	}
	return strings.Join(formatted, ", ")
}

func formatAuthor(name string, roles reference.Roles, self string) string {
	out := name
	if roles.Self || (self != "" && name == self) {
		out = "**" + name + "**"
	}
	if roles.EqualContrib {
		out += EqualContribMark
	}
	if roles.Supervised {
		out += SupervisedMark
	}
	if roles.Corresponding {
		out += CorrespondingMark
	}
	return out
}
