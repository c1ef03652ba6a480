package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/qzhang/pubgen/internal/bibtex"
	"github.com/qzhang/pubgen/internal/reference"
)

// CollaboratorsTitle is the top-level heading of the collaborators document.
const CollaboratorsTitle = "Collaborators"

// Collaborator is a co-author and the number of entries shared with them.
type Collaborator struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TallyCollaborators counts co-authored entries per author across all
// entries, leaving out self. The result is sorted by count, highest first;
// ties keep the order in which authors were first seen.
func TallyCollaborators(entries []bibtex.Entry, self string) []Collaborator {
	index := make(map[string]int)
	var collabs []Collaborator

	for _, e := range entries {
		for _, name := range reference.SplitAuthors(e.Get("author")) {
			if name == self {
				continue
			}
			i, seen := index[name]
			if !seen {
				i = len(collabs)
				index[name] = i
				collabs = append(collabs, Collaborator{Name: name})
			}
			collabs[i].Count++
		}
	}

	sort.SliceStable(collabs, func(i, j int) bool {
		return collabs[i].Count > collabs[j].Count
	})
	return collabs
}

// CollaboratorsMarkdown renders the collaborators document.
func CollaboratorsMarkdown(collabs []Collaborator) string {
	var b strings.Builder
	b.WriteString("# " + CollaboratorsTitle + "\n\n")
	for _, c := range collabs {
		fmt.Fprintf(&b, "- %s (%d papers)\n", c.Name, c.Count)
	}
	return b.String()
}

// WriteCollaborators writes the collaborators document to w.
func WriteCollaborators(w io.Writer, collabs []Collaborator) error {
	_, err := io.WriteString(w, CollaboratorsMarkdown(collabs))
	return err
}
