package lexiconlib

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"goReviewLab/iolib"
)

// DefaultSource is the WordNet 3.1 dict tarball published by Princeton
const DefaultSource = "https://wordnetcode.princeton.edu/wn3.1.dict.tar.gz"

// Proxy holds optional HTTP proxy settings; an empty Host means direct connections
type Proxy struct {
	Host string
	User string
	Pass string
}

// NewHTTPClient returns a client with timeout, going through proxy when set
func NewHTTPClient(timeout time.Duration, proxy Proxy) *http.Client {
	if proxy.Host == "" {
		return &http.Client{Timeout: timeout}
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{Proxy: http.ProxyURL(&url.URL{
			Scheme: "http",
			User:   url.UserPassword(proxy.User, proxy.Pass),
			Host:   proxy.Host,
		})},
	}
}

var reDictFile = regexp.MustCompile(`^((index|data)\.(adj|adv|noun|verb)|(adj|adv|noun|verb)\.exc)$`)

// Ensure downloads and unpacks the WordNet dict files into dir unless they are
// already there. Download failures are returned as is.
func Ensure(ctx context.Context, dir, source string, client *http.Client, logger *log.Logger) error {
	if Installed(dir) {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if client == nil {
		client = http.DefaultClient
	}

	logger.Printf("Downloading WordNet dictionary for antonym lookup from %s ...", source)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return fmt.Errorf("wordnet download: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("wordnet download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wordnet download: %s: %s", source, resp.Status)
	}

	if !iolib.DirExists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("wordnet download: %w", err)
		}
	}
	n, err := unpackDict(resp.Body, dir)
	if err != nil {
		return fmt.Errorf("wordnet unpack: %w", err)
	}
	if !Installed(dir) {
		return fmt.Errorf("wordnet unpack: %s holds no adjective files", source)
	}

	logger.Printf("WordNet dictionary ready in %s (%d files)", dir, n)
	return nil
}

// unpackDict copies the dict files of a gzipped tarball flat into dir
func unpackDict(r io.Reader, dir string) (int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return 0, err
	}
	defer gz.Close()

	n := 0
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		name := filepath.Base(hdr.Name)
		if !reDictFile.MatchString(name) {
			continue
		}
		if err := writeFile(filepath.Join(dir, name), tr); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

func writeFile(filename string, r io.Reader) (err error) {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, r)
	return err
}
