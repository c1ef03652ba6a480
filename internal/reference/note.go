package reference

import "strings"

// Note keys recognized in the annotation field.
const (
	NoteSelf          = "self"
	NoteEqualContrib  = "equalcontrib"
	NoteSupervised    = "supervised"
	NoteCorresponding = "corresponding"
)

// Roles holds the annotation flags attached to one author of an entry.
type Roles struct {
	Self          bool // the document's author
	EqualContrib  bool // equal contribution
	Supervised    bool // supervised student
	Corresponding bool // corresponding author
}

// Annotations maps normalized author names to their roles for one entry.
type Annotations map[string]Roles

// Roles returns the flags for name, or the zero Roles if it is not annotated.
func (a Annotations) Roles(name string) Roles {
	return a[name]
}

// ParseNote decodes a note field of the form "key=Name One|Name Two,key2=Name".
//
// Parts without "=" and unknown keys are ignored. When a key appears more than
// once the later list replaces the earlier one.
func ParseNote(note string) Annotations {
	lists := make(map[string][]string)
	for _, part := range strings.Split(note, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		var names []string
		for _, v := range strings.Split(value, "|") {
			names = append(names, NormalizeName(v))
		}
		lists[strings.TrimSpace(key)] = names
	}

	notes := make(Annotations)
	mark := func(key string, set func(*Roles)) {
		for _, name := range lists[key] {
			r := notes[name]
			set(&r)
			notes[name] = r
		}
	}
	mark(NoteSelf, func(r *Roles) { r.Self = true })
	mark(NoteEqualContrib, func(r *Roles) { r.EqualContrib = true })
	mark(NoteSupervised, func(r *Roles) { r.Supervised = true })
	mark(NoteCorresponding, func(r *Roles) { r.Corresponding = true })
	return notes
}
