package reference

import "strings"

// AuthorSeparator is the literal BibTeX separator between names in an author list.
const AuthorSeparator = " and "

// NormalizeName converts a raw author name to "First Last" form.
// "Last, First" is reordered at the first comma; names without a comma are
// only trimmed. Applying it to an already normalized name is a no-op.
func NormalizeName(raw string) string {
	last, first, found := strings.Cut(raw, ",")
	if !found {
		return strings.TrimSpace(raw)
	}
	last = strings.TrimSpace(last)
	first = strings.TrimSpace(first)
	if first == "" {
		return last
	}
	if last == "" {
		return first
	}
	return first + " " + last
}

// SplitAuthors splits a BibTeX author list into normalized names.
// Line breaks inside the field are treated as spaces. Empty names are dropped.
func SplitAuthors(list string) []string {
	list = strings.ReplaceAll(list, "\r\n", " ")
	list = strings.ReplaceAll(list, "\n", " ")

	var names []string
	for _, raw := range strings.Split(list, AuthorSeparator) {
		if name := NormalizeName(raw); name != "" {
			names = append(names, name)
		}
	}
	return names
}
