package coder

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyLexicon is returned when a lexicon would contain no words.
var ErrEmptyLexicon = errors.New("lexicon has no words")

// Lexicon is an immutable, ordered list of lowercase coded words.
type Lexicon struct {
	name    string
	words   []string
	set     map[string]struct{}
	version string
}

// NewLexicon builds a lexicon from words. Each word is trimmed and lowercased,
// blanks are skipped and duplicates keep their first position.
func NewLexicon(name string, words []string) (*Lexicon, error) {
	l := &Lexicon{
		name: name,
		set:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		tokens := Normalize(w)
		if len(tokens) != 1 {
			return nil, fmt.Errorf("lexicon %s: %q is not a single word", name, w)
		}
		word := tokens[0]
		if _, dup := l.set[word]; dup {
			continue
		}
		l.set[word] = struct{}{}
		l.words = append(l.words, word)
	}
	if len(l.words) == 0 {
		return nil, fmt.Errorf("lexicon %s: %w", name, ErrEmptyLexicon)
	}

	sum := sha256.Sum256([]byte(strings.Join(l.words, "\n")))
	l.version = hex.EncodeToString(sum[:8])
	return l, nil
}

// ParseLexicon reads one word per line. Blank lines and lines starting with
// '#' are ignored.
func ParseLexicon(name string, r io.Reader) (*Lexicon, error) {
	var words []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if len(Normalize(text)) != 1 {
			return nil, fmt.Errorf("lexicon %s: line %d: %q is not a single word", name, line, text)
		}
		words = append(words, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon %s: read: %w", name, err)
	}
	return NewLexicon(name, words)
}

// LoadLexiconFile parses the lexicon stored at path.
func LoadLexiconFile(name, path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", name, err)
	}
	defer f.Close()
	return ParseLexicon(name, f)
}

// Name returns the lexicon name, e.g. "masculine".
func (l *Lexicon) Name() string { return l.name }

// Len returns the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }

// Version is a short content hash, stable for the same word list.
func (l *Lexicon) Version() string { return l.version }

// Words returns a copy of the words in their original order.
func (l *Lexicon) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Contains reports whether word is in the lexicon. word must already be
// normalised.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.set[word]
	return ok
}

// With returns a new lexicon holding l's words followed by extra.
func (l *Lexicon) With(extra []string) (*Lexicon, error) {
	if len(extra) == 0 {
		return l, nil
	}
	return NewLexicon(l.name, append(l.Words(), extra...))
}

// CountMatches returns how many of words are in lex, along with the matching
// words in order. Every occurrence counts, so repeated words are repeated in
// the returned slice.
func CountMatches(words []string, lex *Lexicon) (int, []string) {
	matched := []string{}
	for _, w := range words {
		if lex.Contains(w) {
			matched = append(matched, w)
		}
	}
	return len(matched), matched
}
