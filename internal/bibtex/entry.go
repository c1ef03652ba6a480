// Package bibtex reads BibTeX bibliography files into ordered entry records.
package bibtex

// Entry is one bibliography record. Field names and the entry type are
// lowercase; values keep their inner text verbatim, minus the outer braces
// or quotes.
type Entry struct {
	Type   string            // article, inproceedings, phdthesis, ...
	Key    string            // citation key
	Fields map[string]string // field name -> value
	Line   int               // line of the opening "@"
}

// Get returns the value of a field, or "" if the entry does not have it.
func (e Entry) Get(name string) string {
	return e.Fields[name]
}

// Has reports whether the entry defines a non-empty value for the field.
func (e Entry) Has(name string) bool {
	return e.Fields[name] != ""
}

// Venue returns the journal, falling back to the booktitle.
func (e Entry) Venue() string {
	if v := e.Get("journal"); v != "" {
		return v
	}
	return e.Get("booktitle")
}
