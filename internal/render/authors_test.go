package render

import (
	"testing"

	"github.com/qzhang/pubgen/internal/reference"
)

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors string
		note    string
		self    string
		want    string
	}{
		{
			name:    "self and corresponding",
			authors: "Zhang, Qiong and Smith, John",
			note:    "self=Qiong Zhang,corresponding=John Smith",
			want:    "**Qiong Zhang**, John Smith✉",
		},
		{
			name:    "no annotations",
			authors: "Lee, Amy and Bob Brown",
			want:    "Amy Lee, Bob Brown",
		},
		{
			name:    "markers stack in fixed order",
			authors: "Lee, Amy",
			note:    "corresponding=Amy Lee,supervised=Amy Lee,equalcontrib=Amy Lee",
			want:    "Amy Lee†*✉",
		},
		{
			name:    "self with every marker",
			authors: "Qiong Zhang",
			note:    "self=Qiong Zhang,equalcontrib=Qiong Zhang,supervised=Qiong Zhang,corresponding=Qiong Zhang",
			want:    "**Qiong Zhang**†*✉",
		},
		{
			name:    "configured self bolded without note",
			authors: "Lee, Amy and Zhang, Qiong",
			self:    "Qiong Zhang",
			want:    "Amy Lee, **Qiong Zhang**",
		},
		{
			name:    "equal contribution pair",
			authors: "Lee, Amy and Brown, Bob and Zhang, Qiong",
			note:    "equalcontrib=Amy Lee|Bob Brown,supervised=Bob Brown",
			self:    "Qiong Zhang",
			want:    "Amy Lee†, Bob Brown†*, **Qiong Zhang**",
		},
		{
			name:    "note names must match exactly",
			authors: "Lee, Amy",
			note:    "corresponding=Amy  Lee",
			want:    "Amy Lee",
		},
		{
			name:    "empty author field",
			authors: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAuthors(tt.authors, reference.ParseNote(tt.note), tt.self)
			if got != tt.want {
				t.Errorf("FormatAuthors() = %q, want %q", got, tt.want)
			}
		})
	}
}
