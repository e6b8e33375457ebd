package lexiconlib

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"goReviewLab/iolib"
)

// ErrNotInstalled is returned when the dict directory lacks the WordNet files
var ErrNotInstalled = errors.New("wordnet dictionary not installed")

const antonymPointer = "!"

// Installed tells whether dir holds the adjective index and data files
func Installed(dir string) bool {
	return iolib.FileExists(filepath.Join(dir, "index.adj")) &&
		iolib.FileExists(filepath.Join(dir, "data.adj"))
}

// WordNet reads antonyms from a WordNet dict directory. Files for a part of
// speech are loaded on first use.
type WordNet struct {
	dir string

	mu    sync.Mutex
	files map[POS]*posFiles
}

type posFiles struct {
	index      map[string][]string // lemma -> synset offsets, most frequent sense first
	data       map[string]string   // synset offset -> data line
	exceptions map[string][]string // inflected form -> base forms
}

type synset struct {
	offset   string
	words    []string
	pointers []pointer
}

type pointer struct {
	symbol string
	offset string
	pos    POS
	source int // 1-based word number in the source synset, 0 for semantic pointers
	target int
}

// OpenWordNet checks dir and returns a lazily loaded lexicon over it
func OpenWordNet(dir string) (*WordNet, error) {
	if !Installed(dir) {
		return nil, fmt.Errorf("%w in %s", ErrNotInstalled, dir)
	}
	return &WordNet{dir: dir, files: make(map[POS]*posFiles)}, nil
}

// Antonyms collects, for every sense of word, the first antonym of each word
// of the sense's synset. Inflected forms ("cleaner") are reduced to their base
// form first. Repeated candidates keep their first position.
func (wn *WordNet) Antonyms(word string, pos POS) ([]string, error) {
	files, err := wn.load(pos)
	if err != nil {
		return nil, err
	}

	var antonyms []string
	seen := make(map[string]bool)
	visited := make(map[string]bool)

	for _, form := range files.morphy(normalize(word), pos) {
		for _, offset := range files.index[form] {
			if visited[offset] {
				continue
			}
			visited[offset] = true

			ss, err := files.synset(offset)
			if err != nil {
				return nil, err
			}
			for i := range ss.words {
				name, err := wn.firstAntonym(ss, i+1)
				if err != nil {
					return nil, err
				}
				if name == "" || seen[name] {
					continue
				}
				seen[name] = true
				antonyms = append(antonyms, name)
			}
		}
	}

	return antonyms, nil
}

// firstAntonym resolves the first antonym pointer leaving word number n of ss
func (wn *WordNet) firstAntonym(ss *synset, n int) (string, error) {
	for _, p := range ss.pointers {
		if p.symbol != antonymPointer || p.source != n {
			continue
		}
		files, err := wn.load(p.pos)
		if err != nil {
			return "", err
		}
		target, err := files.synset(p.offset)
		if err != nil {
			return "", err
		}
		if p.target < 1 || p.target > len(target.words) {
			return "", fmt.Errorf("wordnet: synset %s has no word %d", p.offset, p.target)
		}
		return target.words[p.target-1], nil
	}
	return "", nil
}

func (wn *WordNet) load(pos POS) (*posFiles, error) {
	wn.mu.Lock()
	defer wn.mu.Unlock()

	if f, ok := wn.files[pos]; ok {
		return f, nil
	}

	suffix := pos.fileSuffix()
	if suffix == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPOS, rune(pos))
	}

	index, err := readIndex(filepath.Join(wn.dir, "index."+suffix))
	if err != nil {
		return nil, err
	}
	data, err := readData(filepath.Join(wn.dir, "data."+suffix))
	if err != nil {
		return nil, err
	}
	exceptions, err := readExceptions(filepath.Join(wn.dir, suffix+".exc"))
	if err != nil {
		return nil, err
	}

	f := &posFiles{index: index, data: data, exceptions: exceptions}
	wn.files[pos] = f
	return f, nil
}

/***************************************************************************************************************
****************************************************************************************************************
* Dict file parsing ********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Lines starting with two spaces hold the license text
func isLicenseLine(l string) bool {
	return strings.HasPrefix(l, "  ")
}

func scanLines(filename string, fn func(line string) error) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("wordnet: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" || isLicenseLine(l) {
			continue
		}
		if err := fn(l); err != nil {
			return fmt.Errorf("wordnet: %s: %w", filepath.Base(filename), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wordnet: %s: %w", filepath.Base(filename), err)
	}
	return nil
}

// index line: lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset...
func readIndex(filename string) (map[string][]string, error) {
	index := make(map[string][]string)
	err := scanLines(filename, func(l string) error {
		f := strings.Fields(l)
		if len(f) < 4 {
			return fmt.Errorf("malformed index line %q", l)
		}
		n, err := strconv.Atoi(f[2])
		if err != nil || n < 0 || n > len(f)-4 {
			return fmt.Errorf("malformed synset count in %q", l)
		}
		index[f[0]] = f[len(f)-n:]
		return nil
	})
	return index, err
}

func readData(filename string) (map[string]string, error) {
	data := make(map[string]string)
	err := scanLines(filename, func(l string) error {
		sp := strings.IndexByte(l, ' ')
		if sp <= 0 {
			return fmt.Errorf("malformed data line %q", l)
		}
		data[l[:sp]] = l
		return nil
	})
	return data, err
}

// exception line: inflected base [base...]
func readExceptions(filename string) (map[string][]string, error) {
	exceptions := make(map[string][]string)
	if !iolib.FileExists(filename) {
		return exceptions, nil
	}
	err := scanLines(filename, func(l string) error {
		f := strings.Fields(l)
		if len(f) >= 2 {
			exceptions[f[0]] = f[1:]
		}
		return nil
	})
	return exceptions, err
}

// adjective syntactic markers: good(a), galore(ip), afraid(p)
var reAdjMarker = regexp.MustCompile(`\((a|p|ip)\)$`)

func (f *posFiles) synset(offset string) (*synset, error) {
	l, ok := f.data[offset]
	if !ok {
		return nil, fmt.Errorf("wordnet: unknown synset %s", offset)
	}
	ss, err := parseSynset(l)
	if err != nil {
		return nil, fmt.Errorf("wordnet: synset %s: %w", offset, err)
	}
	return ss, nil
}

// data line: offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] ... | gloss
func parseSynset(l string) (*synset, error) {
	if i := strings.Index(l, " | "); i >= 0 {
		l = l[:i]
	}
	f := strings.Fields(l)
	if len(f) < 4 {
		return nil, errors.New("truncated line")
	}

	wCnt, err := strconv.ParseInt(f[3], 16, 0)
	if err != nil {
		return nil, fmt.Errorf("word count: %w", err)
	}
	pos := 4 + 2*int(wCnt)
	if len(f) <= pos {
		return nil, errors.New("truncated word list")
	}

	ss := &synset{offset: f[0]}
	for i := 0; i < int(wCnt); i++ {
		ss.words = append(ss.words, reAdjMarker.ReplaceAllString(f[4+2*i], ""))
	}

	pCnt, err := strconv.Atoi(f[pos])
	if err != nil {
		return nil, fmt.Errorf("pointer count: %w", err)
	}
	pos++
	if len(f) < pos+4*pCnt {
		return nil, errors.New("truncated pointer list")
	}
	for i := 0; i < pCnt; i++ {
		p := f[pos+4*i : pos+4*i+4]
		if len(p[3]) != 4 {
			return nil, fmt.Errorf("bad source/target %q", p[3])
		}
		src, err := strconv.ParseInt(p[3][:2], 16, 0)
		if err != nil {
			return nil, fmt.Errorf("pointer source: %w", err)
		}
		dst, err := strconv.ParseInt(p[3][2:], 16, 0)
		if err != nil {
			return nil, fmt.Errorf("pointer target: %w", err)
		}
		ss.pointers = append(ss.pointers, pointer{
			symbol: p[0],
			offset: p[1],
			pos:    pointerPOS(p[2]),
			source: int(src),
			target: int(dst),
		})
	}

	return ss, nil
}

// satellite adjectives live in the adjective files
func pointerPOS(s string) POS {
	if s == "s" {
		return Adjective
	}
	if s == "" {
		return 0
	}
	return POS(s[0])
}

/***************************************************************************************************************
****************************************************************************************************************
* Base forms ***************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

type detachment struct {
	suffix, ending string
}

var detachments = map[POS][]detachment{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// morphy returns the indexed lemmas form may be an inflection of, the form itself first
func (f *posFiles) morphy(form string, pos POS) []string {
	if form == "" {
		return nil
	}

	candidates := []string{form}
	if bases, ok := f.exceptions[form]; ok {
		candidates = append(candidates, bases...)
	} else {
		for _, d := range detachments[pos] {
			if strings.HasSuffix(form, d.suffix) && len(form) > len(d.suffix) {
				candidates = append(candidates, strings.TrimSuffix(form, d.suffix)+d.ending)
			}
		}
	}

	var forms []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		if _, ok := f.index[c]; ok {
			forms = append(forms, c)
		}
	}

	return forms
}
