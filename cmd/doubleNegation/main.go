// generates double negation paraphrases of positive hotel reviews
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goReviewLab/clilib"
	"goReviewLab/configlib"
	"goReviewLab/iolib"
	"goReviewLab/lexiconlib"
	"goReviewLab/negationlib"
	"goReviewLab/reviewlib"
	"goReviewLab/taglib"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "doubleNegation",
	Short: "Rewrite review sentences with a negated antonym",
	Long: `doubleNegation takes the first sentence of the first positive reviews of the
dataset and replaces its first adjective with "not" and one of its WordNet
antonyms: "The room was clean." becomes "The room was not dirty."

The WordNet dictionary is downloaded into --wordnet-dir on first use.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	clilib.AddCommonFlags(flags, &cfgFile)
	flags.Int("sample-size", 25, "number of positive reviews to paraphrase")
	flags.String("wordnet-dir", "./wordnet", "WordNet dict directory")
	flags.String("wordnet-url", lexiconlib.DefaultSource, "WordNet dict tarball downloaded when --wordnet-dir is empty")

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

	if err := prepareLexicon(cmd.Context(), cfg, clilib.NewStatusLogger()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	clilib.Report(out, run(cfg, logger, out))
	return nil
}

// prepareLexicon downloads the WordNet dict when missing, reporting progress on status
func prepareLexicon(ctx context.Context, cfg *configlib.Config, status *log.Logger) error {
	client := lexiconlib.NewHTTPClient(cfg.Timeout(), cfg.Proxy())
	if err := lexiconlib.Ensure(ctx, cfg.WordNet.Dir, cfg.WordNet.URL, client, status); err != nil {
		return err
	}
	status.Println("Lexical data is ready.")
	return nil
}

func run(cfg *configlib.Config, logger *log.Logger, w io.Writer) error {
	wn, err := lexiconlib.OpenWordNet(cfg.WordNet.Dir)
	if err != nil {
		return err
	}
	tagger := taglib.NewProseTagger()
	neg := negationlib.New(tagger, lexiconlib.NewCached(wn, cfg.TTL()))

	return generate(cfg, tagger, neg, logger, w)
}

// generate prints the paraphrase of the first sentence of each sampled positive review
func generate(cfg *configlib.Config, splitter taglib.SentenceSplitter, neg *negationlib.Negator, logger *log.Logger, w io.Writer) (err error) {
	ds, err := reviewlib.Load(cfg.Dataset, cfg.ReviewOptions())
	if err != nil {
		return err
	}

	positives := ds.BySentiment(reviewlib.Positive)
	fmt.Fprintf(w, "\n--- Found %d positive reviews. ---\n", len(positives))
	fmt.Fprint(w, "Applying double negation to the first sentence of a few examples:\n\n")

	var tsv *iolib.TSVFile
	if cfg.OutFile != "" {
		tsv, err = iolib.CreateTSV(cfg.OutFile, "row", "original", "generated", "replaced")
		if err != nil {
			return fmt.Errorf("create %s: %w", cfg.OutFile, err)
		}
		defer func() {
			cerr := tsv.Close()
			if err == nil {
				err = cerr
			}
		}()
	}

	sample := positives
	if cfg.SampleSize < len(sample) {
		sample = sample[:cfg.SampleSize]
	}

	replaced := 0
	for _, review := range sample {
		first, err := reviewlib.FirstSentence(review.PositiveText, splitter)
		if err != nil {
			return fmt.Errorf("row %d: %w", review.Row, err)
		}
		if first == "" {
			logger.Printf("row %d: no positive text, skipped", review.Row)
			continue
		}

		r, err := neg.NegateDetailed(first)
		if err != nil {
			return fmt.Errorf("row %d: %w", review.Row, err)
		}
		if r.Replaced {
			replaced++
			logger.Printf("row %d: %q -> %q", review.Row, r.Adjective, r.Replacement)
		}

		fmt.Fprintf(w, "Original:  '%s'\n", first)
		fmt.Fprintf(w, "Generated: '%s'\n%s\n", r.Generated, strings.Repeat("-", 25))

		if tsv != nil {
			row := []string{strconv.Itoa(review.Row), first, r.Generated, strconv.FormatBool(r.Replaced)}
			if err := tsv.Write(row); err != nil {
				return fmt.Errorf("write %s: %w", cfg.OutFile, err)
			}
		}
	}

	logger.Printf("%d of %d sampled sentences rewritten", replaced, len(sample))
	return nil
}
