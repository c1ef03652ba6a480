package render

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/qzhang/pubgen/internal/bibtex"
)

func TestTallyCollaborators(t *testing.T) {
	entries := []bibtex.Entry{
		entry("a", "author", "Zhang, Qiong and Lee, Amy"),
		entry("b", "author", "Zhang, Qiong and Lee, Amy"),
		entry("c", "author", "Brown, Bob and Qiong Zhang and Chen, Wei"),
		entry("d", "author", "Chen, Wei and\nZhang, Qiong"),
		entry("e", "title", "No authors"),
	}

	got := TallyCollaborators(entries, "Qiong Zhang")
	want := []Collaborator{
		{Name: "Amy Lee", Count: 2},
		{Name: "Wei Chen", Count: 2},
		{Name: "Bob Brown", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TallyCollaborators() mismatch (-want +got):\n%s", diff)
	}
}

func TestTallyCollaborators_ExcludesSelf(t *testing.T) {
	entries := []bibtex.Entry{
		entry("a", "author", "Zhang, Qiong"),
		entry("b", "author", "Qiong Zhang and Zhang, Qiong"),
		entry("c", "author", "  Zhang,   Qiong  and Lee, Amy"),
	}

	for _, c := range TallyCollaborators(entries, "Qiong Zhang") {
		if c.Name == "Qiong Zhang" {
			t.Errorf("self-identity name counted as collaborator: %+v", c)
		}
	}
}

func TestTallyCollaborators_TiesKeepEncounterOrder(t *testing.T) {
	entries := []bibtex.Entry{
		entry("a", "author", "Zed, Zoe and Alpha, Al"),
		entry("b", "author", "Mid, Mo"),
		entry("c", "author", "Mid, Mo"),
	}

	got := TallyCollaborators(entries, "Qiong Zhang")
	want := []Collaborator{
		{Name: "Mo Mid", Count: 2},
		{Name: "Zoe Zed", Count: 1},
		{Name: "Al Alpha", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TallyCollaborators() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCollaborators(t *testing.T) {
	var buf bytes.Buffer
	collabs := []Collaborator{{Name: "Amy Lee", Count: 2}, {Name: "Bob Brown", Count: 1}}
	if err := WriteCollaborators(&buf, collabs); err != nil {
		t.Fatalf("WriteCollaborators() error = %v", err)
	}

	want := "# Collaborators\n\n- Amy Lee (2 papers)\n- Bob Brown (1 papers)\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteCollaborators() = %q, want %q", got, want)
	}
}

func TestCollaboratorsMarkdown_Empty(t *testing.T) {
	if got := CollaboratorsMarkdown(nil); got != "# Collaborators\n\n" {
		t.Errorf("CollaboratorsMarkdown(nil) = %q", got)
	}
}
