package clilib

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"goReviewLab/reviewlib"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"missing dataset", fmt.Errorf("%w: reviews.csv", reviewlib.ErrDatasetNotFound), "Error: The CSV file was not found.\n"},
		{"anything else", errors.New("boom"), "An error occurred: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Report(&buf, tt.err)
			if buf.String() != tt.want {
				t.Errorf("Report = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if NewLogger(false).Writer() == os.Stderr {
		t.Error("quiet logger writes to stderr")
	}
	if NewLogger(true).Writer() != os.Stderr {
		t.Error("verbose logger does not write to stderr")
	}
}

func TestNewStatusLogger(t *testing.T) {
	if NewStatusLogger().Writer() != os.Stderr {
		t.Error("status logger does not write to stderr")
	}
}

func newRoot(cfgFile *string) *cobra.Command {
	root := &cobra.Command{Use: "tool", SilenceErrors: true, SilenceUsage: true}
	AddCommonFlags(root.PersistentFlags(), cfgFile)
	root.AddCommand(NewConfigCommand(cfgFile))
	return root
}

func TestConfigCommand(t *testing.T) {
	var cfgFile string
	root := newRoot(&cfgFile)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--dataset", "other.csv", "--language", "english"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, want := range []string{"dataset: other.csv", "language: english", "topN: 50"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("config output misses %q:\n%s", want, out.String())
		}
	}
}

func TestConfigCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("topN: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var cfgFile string
	root := newRoot(&cfgFile)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), "topN: 7") {
		t.Errorf("config file ignored:\n%s", out.String())
	}
}

func TestLoadConfig(t *testing.T) {
	var cfgFile string
	root := newRoot(&cfgFile)
	if err := root.ParseFlags([]string{"--verbose", "--strip-html"}); err != nil {
		t.Fatal(err)
	}

	cfg, logger, err := LoadConfig(root, cfgFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Verbose || !cfg.StripHTML {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if logger.Writer() != os.Stderr {
		t.Error("verbose config should log to stderr")
	}
}
