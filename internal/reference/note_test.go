package reference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name string
		note string
		want Annotations
	}{
		{
			name: "empty",
			note: "",
			want: Annotations{},
		},
		{
			name: "self and corresponding",
			note: "self=Qiong Zhang,corresponding=John Smith",
			want: Annotations{
				"Qiong Zhang": {Self: true},
				"John Smith":  {Corresponding: true},
			},
		},
		{
			name: "comma inside a value splits the note",
			note: "equalcontrib=Zhang, Qiong|Amy Lee",
			// The comma splits the note, so "Qiong|Amy Lee" has no "=" and is dropped.
			want: Annotations{
				"Zhang": {EqualContrib: true},
			},
		},
		{
			name: "several roles on one name",
			note: "self=Qiong Zhang, corresponding = Qiong Zhang|Amy Lee, supervised=Amy Lee",
			want: Annotations{
				"Qiong Zhang": {Self: true, Corresponding: true},
				"Amy Lee":     {Supervised: true, Corresponding: true},
			},
		},
		{
			name: "parts without equals are ignored",
			note: "In press,self=Qiong Zhang",
			want: Annotations{
				"Qiong Zhang": {Self: true},
			},
		},
		{
			name: "unknown keys are ignored",
			note: "doi=10.1/abc,supervised=Amy Lee",
			want: Annotations{
				"Amy Lee": {Supervised: true},
			},
		},
		{
			name: "value split on first equals only",
			note: "equalcontrib=A=B",
			want: Annotations{
				"A=B": {EqualContrib: true},
			},
		},
		{
			name: "later key replaces earlier list",
			note: "supervised=Amy Lee,supervised=Bob Brown",
			want: Annotations{
				"Bob Brown": {Supervised: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNote(tt.note)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseNote(%q) mismatch (-want +got):\n%s", tt.note, diff)
			}
		})
	}
}

func TestAnnotations_RolesUnknownName(t *testing.T) {
	notes := ParseNote("self=Qiong Zhang")
	if got := notes.Roles("Nobody"); got != (Roles{}) {
		t.Errorf("Roles(unknown) = %+v, want zero value", got)
	}

	var nilNotes Annotations
	if got := nilNotes.Roles("Qiong Zhang"); got != (Roles{}) {
		t.Errorf("nil Annotations Roles() = %+v, want zero value", got)
	}
}
