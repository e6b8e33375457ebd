// Package reviewlib loads the hotel review dataset
package reviewlib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/ssor/bom"

	"goReviewLab/iolib"
	"goReviewLab/stringlib"
	"goReviewLab/taglib"
)

var (
	// ErrDatasetNotFound is returned when the CSV file does not exist
	ErrDatasetNotFound = errors.New("dataset not found")
	// ErrMissingColumn is returned when a required column is absent from the header
	ErrMissingColumn = errors.New("missing column")
)

// Sentiment is the review polarity recorded in the dataset
type Sentiment int

// Sentiments
const (
	Unknown Sentiment = iota
	Positive
	Negative
)

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	}
	return "Unknown"
}

// ParseSentiment reads "Positive" or "Negative", ignoring case and surrounding spaces
func ParseSentiment(s string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return Positive
	case "negative":
		return Negative
	}
	return Unknown
}

// Columns names the dataset columns read by the tools
type Columns struct {
	Sentiment string
	Positive  string
	Negative  string
}

// DefaultColumns are the column names of the hotel review export
func DefaultColumns() Columns {
	return Columns{
		Sentiment: "Pos/Neg",
		Positive:  "PositiveReview",
		Negative:  "NegativeReview",
	}
}

// Options control loading. Language, when set, keeps only text cells detected
// as that language (e.g. "english"); other cells read as missing.
type Options struct {
	Columns   Columns
	StripHTML bool
	Language  string
}

// Review is one dataset row
type Review struct {
	Row          int
	Sentiment    Sentiment
	PositiveText string
	NegativeText string
}

// Text returns the text column matching the review sentiment
func (r Review) Text() string {
	switch r.Sentiment {
	case Positive:
		return r.PositiveText
	case Negative:
		return r.NegativeText
	}
	return ""
}

// Dataset is the loaded review table
type Dataset struct {
	df      dataframe.DataFrame
	opts    Options
	detect  func(string) string
	reviews []Review
}

// Load reads the CSV file at path
func Load(path string, opts Options) (*Dataset, error) {
	if !iolib.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Read(f, opts)
}

// Read parses CSV data with a header row. Every column is read as text.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	if opts.Columns == (Columns{}) {
		opts.Columns = DefaultColumns()
	}

	br, err := bom.NewReaderWithoutBom(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	df := dataframe.ReadCSV(br,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return nil, fmt.Errorf("read dataset: %w", df.Err)
	}

	ds := &Dataset{df: df, opts: opts}
	if opts.Language != "" {
		ds.detect = newDetector()
	}

	for _, name := range []string{opts.Columns.Sentiment, opts.Columns.Positive, opts.Columns.Negative} {
		if !ds.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	sentiments := df.Col(opts.Columns.Sentiment).Records()
	positives := df.Col(opts.Columns.Positive).Records()
	negatives := df.Col(opts.Columns.Negative).Records()

	ds.reviews = make([]Review, len(sentiments))
	for i := range sentiments {
		pos, err := ds.clean(positives[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		neg, err := ds.clean(negatives[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ds.reviews[i] = Review{
			Row:          i,
			Sentiment:    ParseSentiment(sentiments[i]),
			PositiveText: pos,
			NegativeText: neg,
		}
	}

	return ds, nil
}

// Len is the number of data rows
func (ds *Dataset) Len() int {
	return len(ds.reviews)
}

// HasColumn tells whether the header names column
func (ds *Dataset) HasColumn(name string) bool {
	for _, n := range ds.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Reviews returns every row in file order
func (ds *Dataset) Reviews() []Review {
	return ds.reviews
}

// BySentiment returns the rows with sentiment s in file order
func (ds *Dataset) BySentiment(s Sentiment) []Review {
	var out []Review
	for _, r := range ds.reviews {
		if r.Sentiment == s {
			out = append(out, r)
		}
	}
	return out
}

// Column returns the non-missing cells of column name in row order
func (ds *Dataset) Column(name string) ([]string, error) {
	if !ds.HasColumn(name) {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	var cells []string
	for i, v := range ds.df.Col(name).Records() {
		text, err := ds.clean(v)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if text != "" {
			cells = append(cells, text)
		}
	}
	return cells, nil
}

// missing cell markers, as written by spreadsheet and dataframe exports
var missingValues = map[string]bool{
	"": true, "NA": true, "N/A": true, "NaN": true, "nan": true,
	"NULL": true, "null": true, "<NA>": true,
}

// clean maps a raw cell to review text, "" meaning missing
func (ds *Dataset) clean(v string) (string, error) {
	if missingValues[strings.TrimSpace(v)] {
		return "", nil
	}
	if ds.opts.StripHTML {
		plain, err := stringlib.StripHTML(v)
		if err != nil {
			return "", err
		}
		v = plain
	}
	if ds.detect != nil && !strings.EqualFold(ds.detect(v), ds.opts.Language) {
		return "", nil
	}
	return v, nil
}

// FirstSentence returns the first sentence of text, "" when there is none
func FirstSentence(text string, splitter taglib.SentenceSplitter) (string, error) {
	sentences, err := splitter.Sentences(text)
	if err != nil {
		return "", err
	}
	if len(sentences) == 0 {
		return "", nil
	}
	return sentences[0], nil
}
