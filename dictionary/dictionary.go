// Package dictionary loads word lists, one word per line, into a store.Store.
//
// Lines are trimmed of surrounding whitespace (so CRLF files load cleanly) and
// blank lines are ignored. WithLength keeps only words of one length, which is
// all a single ladder query can use. Words that cannot be encoded faithfully
// (longer than word.MaxLen bytes, or containing NUL) abort the load with
// ErrInvalidWord rather than being silently truncated.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/wordladder/log"
	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/word"
)

// ErrInvalidWord is returned when a dictionary line cannot be encoded as a word.
var ErrInvalidWord = errors.New("dictionary: invalid word")

// Stats reports what a load did with each line.
type Stats struct {
	Lines      int // lines read
	Loaded     int // distinct words added
	Duplicates int // words already present
	Skipped    int // blank lines and length mismatches
}

type options struct {
	length    int
	lowercase bool
	storeOpts []store.Option
	logger    log.Logger
}

// Option configures a load.
type Option func(*options)

// WithLength keeps only words of exactly n bytes. n <= 0 keeps every word.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithLowercase folds ASCII letters to lower case before encoding.
func WithLowercase() Option {
	return func(o *options) { o.lowercase = true }
}

// WithPatternIndex builds the store with store.WithPatternIndex.
func WithPatternIndex() Option {
	return func(o *options) { o.storeOpts = append(o.storeOpts, store.WithPatternIndex()) }
}

// WithLogger reports skipped lines at debug level and a summary at info level.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*store.Store, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	s, stats, err := Load(f, opts...)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}

	return s, stats, nil
}

// Load reads r line by line and adds every accepted word to a new store.
func Load(r io.Reader, opts ...Option) (*store.Store, Stats, error) {
	o := options{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	var stats Stats
	s := store.New(o.storeOpts...)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		stats.Lines++
		line := strings.TrimSpace(sc.Text())
		if o.lowercase {
			line = lowerASCII(line)
		}
		if line == "" || (o.length > 0 && len(line) != o.length) {
			stats.Skipped++
			continue
		}

		w, err := word.Parse(line)
		if err != nil {
			return nil, stats, fmt.Errorf("%w at line %d: %w", ErrInvalidWord, stats.Lines, err)
		}
		if s.Contains(w) {
			stats.Duplicates++
			o.logger.Debugw("duplicate word", "line", stats.Lines, "word", line)
			continue
		}
		s.AddWord(w)
		stats.Loaded++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("dictionary: read: %w", err)
	}

	o.logger.Infow("dictionary loaded",
		"lines", stats.Lines,
		"words", stats.Loaded,
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped,
		"indexed", s.Indexed(),
	)

	return s, stats, nil
}

// lowerASCII lowercases A-Z only, keeping the byte length unchanged.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}
