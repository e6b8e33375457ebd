// Package configlib reads the tools' settings from flags, REVIEWLAB_* environment
// variables, an optional reviewlab.yaml and built-in defaults, in that priority.
package configlib

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"goReviewLab/freqlib"
	"goReviewLab/iolib"
	"goReviewLab/lexiconlib"
	"goReviewLab/reviewlib"
	"goReviewLab/stringlib"
)

// DefaultDataset is the review export the tools were written for
const DefaultDataset = "Original ABA Dataset for Version 3 [May 30] - 1. hotel in Larnaca-Cyprus - Topic.csv"

// Output formats for ranked terms
const (
	OutputPlain = "plain"
	OutputTable = "table"
)

// EnvPrefix prefixes every environment variable read
const EnvPrefix = "REVIEWLAB"

// Columns names the dataset columns
type Columns struct {
	Sentiment string `yaml:"sentiment"`
	Positive  string `yaml:"positive"`
	Negative  string `yaml:"negative"`
}

// WordNet locates the lexical database
type WordNet struct {
	Dir string `yaml:"dir"`
	URL string `yaml:"url"`
}

// Config holds every setting of both tools
type Config struct {
	Dataset         string   `yaml:"dataset"`
	Columns         Columns  `yaml:"columns"`
	SampleSize      int      `yaml:"sampleSize"`
	TopN            int      `yaml:"topN"`
	MinWordLen      int      `yaml:"minWordLen"`
	Stopwords       []string `yaml:"stopwords"`
	Stem            bool     `yaml:"stem"`
	StripHTML       bool     `yaml:"stripHTML"`
	Language        string   `yaml:"language"`
	Output          string   `yaml:"output"`
	OutFile         string   `yaml:"outFile"`
	WordNet         WordNet  `yaml:"wordnet"`
	DownloadTimeout int      `yaml:"downloadTimeout"` // seconds
	ProxyHost       string   `yaml:"proxyHost"`
	ProxyUser       string   `yaml:"proxyUser"`
	ProxyPass       string   `yaml:"-"`
	CacheTTL        int      `yaml:"cacheTTL"` // seconds, 0 keeps lookups for the whole run
	Verbose         bool     `yaml:"verbose"`
	Debug           bool     `yaml:"debug"`
}

// flagKeys maps command line flag names to config keys
var flagKeys = map[string]string{
	"dataset":     "dataset",
	"sample-size": "sampleSize",
	"top":         "topN",
	"min-len":     "minWordLen",
	"stem":        "stem",
	"strip-html":  "stripHTML",
	"language":    "language",
	"output":      "output",
	"out":         "outFile",
	"wordnet-dir": "wordnet.dir",
	"wordnet-url": "wordnet.url",
	"verbose":     "verbose",
	"debug":       "debug",
}

// SetDefaults registers the built-in values on v
func SetDefaults(v *viper.Viper) {
	cols := reviewlib.DefaultColumns()

	v.SetDefault("dataset", DefaultDataset)
	v.SetDefault("columns.sentiment", cols.Sentiment)
	v.SetDefault("columns.positive", cols.Positive)
	v.SetDefault("columns.negative", cols.Negative)
	v.SetDefault("sampleSize", 25)
	v.SetDefault("topN", 50)
	v.SetDefault("minWordLen", freqlib.DefaultMinLen)
	v.SetDefault("stopwords", freqlib.DefaultStopwords)
	v.SetDefault("stem", false)
	v.SetDefault("stripHTML", false)
	v.SetDefault("language", "")
	v.SetDefault("output", OutputPlain)
	v.SetDefault("outFile", "")
	v.SetDefault("wordnet.dir", "./wordnet")
	v.SetDefault("wordnet.url", lexiconlib.DefaultSource)
	v.SetDefault("downloadTimeout", 120)
	v.SetDefault("proxyHost", "")
	v.SetDefault("proxyUser", "")
	v.SetDefault("proxyPass", "")
	v.SetDefault("cacheTTL", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("debug", false)
}

// Load resolves the configuration. cfgFile may be empty, in which case
// reviewlab.yaml is looked up in the working directory and skipped when absent.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("reviewlab") // name of config file (without extension)
		v.AddConfigPath(".")         // look for config in the working directory
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of an env file when it exists
func LoadDotEnv(path string) error {
	if !iolib.FileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Dataset: v.GetString("dataset"),
		Columns: Columns{
			Sentiment: v.GetString("columns.sentiment"),
			Positive:  v.GetString("columns.positive"),
			Negative:  v.GetString("columns.negative"),
		},
		SampleSize:      v.GetInt("sampleSize"),
		TopN:            v.GetInt("topN"),
		MinWordLen:      v.GetInt("minWordLen"),
		Stopwords:       stopwords(v),
		Stem:            v.GetBool("stem"),
		StripHTML:       v.GetBool("stripHTML"),
		Language:        v.GetString("language"),
		Output:          strings.ToLower(v.GetString("output")),
		OutFile:         v.GetString("outFile"),
		WordNet:         WordNet{Dir: v.GetString("wordnet.dir"), URL: v.GetString("wordnet.url")},
		DownloadTimeout: v.GetInt("downloadTimeout"),
		ProxyHost:       v.GetString("proxyHost"),
		ProxyUser:       v.GetString("proxyUser"),
		ProxyPass:       v.GetString("proxyPass"),
		CacheTTL:        v.GetInt("cacheTTL"),
		Verbose:         v.GetBool("verbose"),
		Debug:           v.GetBool("debug"),
	}
}

// stopwords accepts either a list or a "|"-joined string, as in
// `stopwords: the|and|was`
func stopwords(v *viper.Viper) []string {
	if s, ok := v.Get("stopwords").(string); ok {
		return stringlib.SplitList(s, "|")
	}
	return v.GetStringSlice("stopwords")
}

// Validate rejects settings no command can run with
func (c *Config) Validate() error {
	switch c.Output {
	case OutputPlain, OutputTable:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputPlain, OutputTable, c.Output)
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("sampleSize must not be negative, got %d", c.SampleSize)
	}
	if c.TopN < 0 {
		return fmt.Errorf("topN must not be negative, got %d", c.TopN)
	}
	if c.Dataset == "" {
		return errors.New("dataset path is empty")
	}
	return nil
}

// ReviewOptions returns the dataset loading options
func (c *Config) ReviewOptions() reviewlib.Options {
	return reviewlib.Options{
		Columns: reviewlib.Columns{
			Sentiment: c.Columns.Sentiment,
			Positive:  c.Columns.Positive,
			Negative:  c.Columns.Negative,
		},
		StripHTML: c.StripHTML,
		Language:  c.Language,
	}
}

// FreqOptions returns the frequency counter options
func (c *Config) FreqOptions() freqlib.Options {
	return freqlib.Options{
		Stopwords: c.Stopwords,
		MinLen:    c.MinWordLen,
		Stem:      c.Stem,
	}
}

// Proxy returns the HTTP proxy settings for downloads
func (c *Config) Proxy() lexiconlib.Proxy {
	return lexiconlib.Proxy{Host: c.ProxyHost, User: c.ProxyUser, Pass: c.ProxyPass}
}

// Timeout is the download timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.DownloadTimeout) * time.Second
}

// TTL is the antonym cache entry lifetime
func (c *Config) TTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// YAML renders the configuration, secrets left out
func (c *Config) YAML() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return b, nil
}
