// Package reference holds the bibliography rules shared by every output:
// author name normalization, note annotations and section classification.
package reference

import "strings"

// Section is one of the fixed publication categories.
type Section string

const (
	Published      Section = "published"
	Preprints      Section = "preprints"
	WorkInProgress Section = "workinprogress"
	Thesis         Section = "thesis"
)

// Sections lists every section in priority and output order.
var Sections = []Section{Published, Preprints, WorkInProgress, Thesis}

// DefaultSection is used when no keyword names a section.
const DefaultSection = Published

// Classify returns the section for a comma-separated keyword list.
// Keywords are compared case-insensitively; the first section in Sections
// present among the keywords wins. Keywords are trimmed before comparison, so
// "ml, preprints" is a preprint; the original generator compared untrimmed
// tokens and would have filed it as published.
func Classify(keywords string) Section {
	present := make(map[string]bool)
	for _, kw := range strings.Split(strings.ToLower(keywords), ",") {
		present[strings.TrimSpace(kw)] = true
	}

	for _, s := range Sections {
		if present[string(s)] {
			return s
		}
	}
	return DefaultSection
}
