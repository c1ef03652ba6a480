package reference

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		keywords string
		want     Section
	}{
		{"workinprogress,ml", WorkInProgress},
		{"", Published},
		{"ml,statistics", Published},
		{"preprints", Preprints},
		{"Thesis", Thesis},
		{"ml, PrePrints", Preprints},
		// Priority follows section order, not keyword order.
		{"thesis,preprints", Preprints},
		{"thesis,workinprogress,published", Published},
		{"preprint", Published},
	}

	for _, tt := range tests {
		t.Run(tt.keywords, func(t *testing.T) {
			if got := Classify(tt.keywords); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.keywords, got, tt.want)
			}
		})
	}
}

func TestClassify_AlwaysKnownSection(t *testing.T) {
	inputs := []string{"", ",", "misc", "thesis", "a,b,c", "WORKINPROGRESS", " , preprints , "}

	for _, in := range inputs {
		got := Classify(in)
		known := false
		for _, s := range Sections {
			if got == s {
				known = true
			}
		}
		if !known {
			t.Errorf("Classify(%q) = %q, not one of %v", in, got, Sections)
		}
	}
}
