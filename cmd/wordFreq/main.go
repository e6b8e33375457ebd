// ranks the most frequent words of positive and negative hotel reviews
package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"goReviewLab/clilib"
	"goReviewLab/configlib"
	"goReviewLab/freqlib"
	"goReviewLab/iolib"
	"goReviewLab/reviewlib"
	"goReviewLab/stringlib"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wordFreq",
	Short: "Rank the most frequent words of positive and negative reviews",
	Long: `wordFreq counts the lowercase words of at least --min-len letters in the
positive and the negative review columns, skipping stopwords, and prints the
--top most frequent ones of each. Repeated reviews are counted once.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	clilib.AddCommonFlags(flags, &cfgFile)
	flags.Int("top", 50, "number of terms reported per sentiment, 0 for all")
	flags.Int("min-len", freqlib.DefaultMinLen, "shortest word counted")
	flags.Bool("stem", false, "count Snowball stems instead of words")
	flags.String("output", configlib.OutputPlain, "term list format: plain or table")

	rootCmd.AddCommand(clilib.NewConfigCommand(&cfgFile))
}

func main() {
	clilib.Execute(rootCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, logger, err := clilib.LoadConfig(cmd, cfgFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	clilib.Report(out, run(cfg, logger, out))
	return nil
}

type ranking struct {
	title  string
	column string
	terms  []freqlib.Term
}

func run(cfg *configlib.Config, logger *log.Logger, w io.Writer) (err error) {
	ds, err := reviewlib.Load(cfg.Dataset, cfg.ReviewOptions())
	if err != nil {
		return err
	}

	rankings := []*ranking{
		{title: "Positive", column: cfg.Columns.Positive},
		{title: "Negative", column: cfg.Columns.Negative},
	}
	for _, r := range rankings {
		texts, err := ds.Column(r.column)
		if err != nil {
			return err
		}
		unique := stringlib.Unique(texts)
		logger.Printf("%s: %d reviews, %d unique", r.column, len(texts), len(unique))
		r.terms = freqlib.Top(unique, cfg.TopN, cfg.FreqOptions())
	}

	for i, r := range rankings {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s Reviews - %s:\n", r.title, heading(cfg.TopN))
		if err := writeTerms(w, cfg.Output, r.terms); err != nil {
			return err
		}
	}

	if cfg.OutFile == "" {
		return nil
	}
	tsv, err := iolib.CreateTSV(cfg.OutFile, "sentiment", "rank", "term", "frequency")
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutFile, err)
	}
	defer func() {
		cerr := tsv.Close()
		if err == nil {
			err = cerr
		}
	}()
	for _, r := range rankings {
		for i, t := range r.terms {
			row := []string{r.title, strconv.Itoa(i + 1), t.Word, strconv.Itoa(t.Count)}
			if err := tsv.Write(row); err != nil {
				return fmt.Errorf("write %s: %w", cfg.OutFile, err)
			}
		}
	}
	return nil
}

// heading names the ranking size; n <= 0 ranks every term
func heading(n int) string {
	if n <= 0 {
		return "All"
	}
	return fmt.Sprintf("Top %d", n)
}

func writeTerms(w io.Writer, format string, terms []freqlib.Term) error {
	if format == configlib.OutputTable {
		freqlib.WriteTable(w, terms)
		return nil
	}
	return freqlib.WritePlain(w, terms)
}
