package stringlib

import (
	"strings"
	"testing"
)

func TestRmNewLines(t *testing.T) {
	if got := RmNewLines("1\n2\n\n3"); got != "123" {
		t.Errorf("RmNewLines = %q, want %q", got, "123")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"pipe joined", "the|and|was", []string{"the", "and", "was"}},
		{"newlines and blanks", "the|\nand| |was|", []string{"the", "and", "was"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in, "|")
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"b", "", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Unique = %v, want %v", got, want)
	}
}

func TestStripHTML(t *testing.T) {
	plain := "Great location, friendly staff."
	got, err := StripHTML(plain)
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}
	if got != plain {
		t.Errorf("plain text changed: %q", got)
	}

	got, err = StripHTML("<p>Lovely <b>pool</b></p>")
	if err != nil {
		t.Fatalf("StripHTML: %v", err)
	}
	if strings.Contains(got, "<") || !strings.Contains(got, "Lovely") || !strings.Contains(got, "pool") {
		t.Errorf("StripHTML kept markup or lost text: %q", got)
	}
}
