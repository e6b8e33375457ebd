package reviewlib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = "\ufeffPos/Neg,PositiveReview,NegativeReview,Topic\n" +
	"Positive,\"The room was clean, and spacious.\",,Room\n" +
	"Negative,,The wifi was slow.,Internet\n" +
	"positive ,Friendly staff. Great pool!,NA,Staff\n" +
	"Mixed,Nice view,Noisy street,View\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		in   string
		want Sentiment
	}{
		{"Positive", Positive},
		{" negative ", Negative},
		{"POSITIVE", Positive},
		{"Mixed", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		if got := ParseSentiment(tt.in); got != tt.want {
			t.Errorf("ParseSentiment(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleCSV), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if ds.Len() != 4 {
		t.Fatalf("Len = %d, want 4", ds.Len())
	}

	reviews := ds.Reviews()
	first := reviews[0]
	if first.Row != 0 || first.Sentiment != Positive || first.PositiveText != "The room was clean, and spacious." || first.NegativeText != "" {
		t.Errorf("unexpected first review %+v", first)
	}
	if reviews[2].NegativeText != "" {
		t.Errorf("NA cell read as %q", reviews[2].NegativeText)
	}
	if reviews[1].Text() != "The wifi was slow." {
		t.Errorf("negative review Text() = %q", reviews[1].Text())
	}
	if reviews[3].Text() != "" {
		t.Errorf("unknown sentiment Text() = %q", reviews[3].Text())
	}

	pos := ds.BySentiment(Positive)
	if len(pos) != 2 || pos[0].Row != 0 || pos[1].Row != 2 {
		t.Errorf("BySentiment(Positive) = %+v", pos)
	}
}

func TestDataset_Column(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleCSV), Options{})
	if err != nil {
		t.Fatal(err)
	}

	neg, err := ds.Column("NegativeReview")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"The wifi was slow.", "Noisy street"}
	if strings.Join(neg, "|") != strings.Join(want, "|") {
		t.Errorf("Column = %q, want %q", neg, want)
	}

	if _, err := ds.Column("Rating"); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeCSV(t, "Pos/Neg,PositiveReview\nPositive,Great\n")
	_, err := Load(path, Options{})
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoad_CustomColumns(t *testing.T) {
	path := writeCSV(t, "label,good,bad\nNegative,,Dirty towels\n")
	ds, err := Load(path, Options{Columns: Columns{Sentiment: "label", Positive: "good", Negative: "bad"}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Reviews()[0].Text(); got != "Dirty towels" {
		t.Errorf("Text() = %q", got)
	}
}

func TestLoad_StripHTML(t *testing.T) {
	path := writeCSV(t, "Pos/Neg,PositiveReview,NegativeReview\nPositive,<p>Lovely pool</p>,\n")
	ds, err := Load(path, Options{StripHTML: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Reviews()[0].PositiveText; got != "Lovely pool" {
		t.Errorf("PositiveText = %q, want %q", got, "Lovely pool")
	}
}

func TestLoad_LanguageFilter(t *testing.T) {
	english := "The staff were very friendly and the breakfast was excellent every single morning of our stay."
	path := writeCSV(t, "Pos/Neg,PositiveReview,NegativeReview\nPositive,"+english+",\n")

	lang := newDetector()(english)
	ds, err := Load(path, Options{Language: lang})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Reviews()[0].PositiveText; got != english {
		t.Errorf("text in the detected language dropped: %q", got)
	}

	ds, err = Load(path, Options{Language: "no-such-language"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Reviews()[0].PositiveText; got != "" {
		t.Errorf("text in another language kept: %q", got)
	}
}

func TestRead_BOM(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"with BOM", "\ufeffPos/Neg,PositiveReview,NegativeReview\nPositive,Quiet room,\n"},
		{"without BOM", "Pos/Neg,PositiveReview,NegativeReview\nPositive,Quiet room,\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Read(strings.NewReader(tt.data), Options{})
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !ds.HasColumn("Pos/Neg") {
				t.Fatal("sentiment column not found after the header")
			}
			pos := ds.BySentiment(Positive)
			if len(pos) != 1 || pos[0].PositiveText != "Quiet room" {
				t.Errorf("BySentiment(Positive) = %+v", pos)
			}
		})
	}
}

type splitter []string

func (s splitter) Sentences(text string) ([]string, error) {
	return s, nil
}

func TestFirstSentence(t *testing.T) {
	got, err := FirstSentence("x", splitter{"One.", "Two."})
	if err != nil || got != "One." {
		t.Errorf("FirstSentence = %q, %v", got, err)
	}

	got, err = FirstSentence("", splitter(nil))
	if err != nil || got != "" {
		t.Errorf("FirstSentence(empty) = %q, %v", got, err)
	}
}
