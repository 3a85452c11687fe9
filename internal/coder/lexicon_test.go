package coder

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewLexicon(t *testing.T) {
	lex, err := NewLexicon("test", []string{" Lead ", "", "trust", "lead", "CO-OPERATE"})
	if err != nil {
		t.Fatalf("NewLexicon() error = %v", err)
	}

	want := []string{"lead", "trust", "co-operate"}
	if got := lex.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
	if lex.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lex.Len())
	}
	if !lex.Contains("co-operate") {
		t.Error("Contains(co-operate) = false, want true")
	}
	if lex.Contains("Lead") {
		t.Error("Contains(Lead) = true, want false for unnormalised input")
	}
}

func TestNewLexicon_Errors(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"empty", nil},
		{"blank only", []string{" ", "\t"}},
		{"two words", []string{"team player"}},
		{"separator", []string{"and/or"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLexicon("test", tt.words); err == nil {
				t.Errorf("NewLexicon(%q) error = nil, want error", tt.words)
			}
		})
	}

	_, err := NewLexicon("test", nil)
	if !errors.Is(err, ErrEmptyLexicon) {
		t.Errorf("NewLexicon(nil) error = %v, want ErrEmptyLexicon", err)
	}
}

func TestLexicon_WordsIsACopy(t *testing.T) {
	lex, err := NewLexicon("test", []string{"lead", "trust"})
	if err != nil {
		t.Fatalf("NewLexicon() error = %v", err)
	}
	words := lex.Words()
	words[0] = "mutated"
	if lex.Words()[0] != "lead" {
		t.Error("mutating Words() result changed the lexicon")
	}
}

func TestLexicon_Version(t *testing.T) {
	a, _ := NewLexicon("a", []string{"lead", "trust"})
	b, _ := NewLexicon("b", []string{"LEAD", "trust", "lead"})
	c, _ := NewLexicon("c", []string{"trust", "lead"})

	if a.Version() != b.Version() {
		t.Errorf("same words gave versions %s and %s", a.Version(), b.Version())
	}
	if a.Version() == c.Version() {
		t.Error("different order gave the same version")
	}
}

func TestLexicon_With(t *testing.T) {
	lex, _ := NewLexicon("test", []string{"lead"})

	same, err := lex.With(nil)
	if err != nil || same != lex {
		t.Errorf("With(nil) = %p, %v; want original lexicon", same, err)
	}

	more, err := lex.With([]string{"Trust"})
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if !more.Contains("trust") || !more.Contains("lead") {
		t.Errorf("With() words = %q", more.Words())
	}
	if lex.Contains("trust") {
		t.Error("With() mutated the original lexicon")
	}
}

func TestParseLexicon(t *testing.T) {
	input := "# comment\n\nlead\n  trust  \n#another\nlead\n"
	lex, err := ParseLexicon("test", strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseLexicon() error = %v", err)
	}
	if got, want := lex.Words(), []string{"lead", "trust"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
}

func TestParseLexicon_BadLine(t *testing.T) {
	_, err := ParseLexicon("test", strings.NewReader("lead\nteam player\n"))
	if err == nil {
		t.Fatal("ParseLexicon() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name line 2", err)
	}
}

func TestLoadLexiconFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("lead\ntrust\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexiconFile("file", path)
	if err != nil {
		t.Fatalf("LoadLexiconFile() error = %v", err)
	}
	if lex.Name() != "file" || lex.Len() != 2 {
		t.Errorf("got name %q len %d", lex.Name(), lex.Len())
	}

	if _, err := LoadLexiconFile("missing", filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadLexiconFile() on missing file error = nil, want error")
	}
}

func TestCountMatches(t *testing.T) {
	lex, _ := NewLexicon("test", []string{"lead", "trust"})

	tests := []struct {
		name      string
		words     []string
		wantCount int
		want      []string
	}{
		{"no words", nil, 0, []string{}},
		{"no matches", []string{"apply", "now"}, 0, []string{}},
		{"in order", []string{"trust", "and", "lead"}, 2, []string{"trust", "lead"}},
		{"repeats counted", []string{"lead", "lead", "trust", "lead"}, 4, []string{"lead", "lead", "trust", "lead"}},
		{"no prefix matching", []string{"leadership", "trusty"}, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, matched := CountMatches(tt.words, lex)
			if count != tt.wantCount {
				t.Errorf("count = %d, want %d", count, tt.wantCount)
			}
			if !reflect.DeepEqual(matched, tt.want) {
				t.Errorf("matched = %q, want %q", matched, tt.want)
			}
			if count != len(matched) {
				t.Errorf("count %d != len(matched) %d", count, len(matched))
			}
		})
	}
}
