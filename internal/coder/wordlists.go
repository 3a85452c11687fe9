package coder

import (
	"bytes"
	_ "embed"
	"fmt"
)

var (
	//go:embed wordlists/masculine.txt
	masculineWords []byte

	//go:embed wordlists/feminine.txt
	feminineWords []byte
)

// DefaultMasculine parses the built-in masculine lexicon.
func DefaultMasculine() (*Lexicon, error) {
	return ParseLexicon("masculine", bytes.NewReader(masculineWords))
}

// DefaultFeminine parses the built-in feminine lexicon.
func DefaultFeminine() (*Lexicon, error) {
	return ParseLexicon("feminine", bytes.NewReader(feminineWords))
}

// Default returns a Coder using the built-in lexicons.
func Default() (*Coder, error) {
	m, err := DefaultMasculine()
	if err != nil {
		return nil, fmt.Errorf("coder: %w", err)
	}
	f, err := DefaultFeminine()
	if err != nil {
		return nil, fmt.Errorf("coder: %w", err)
	}
	return New(m, f)
}

// Sources says where the lexicons come from. Empty file paths fall back to
// the built-in lists; extra words are appended after loading.
type Sources struct {
	MasculineFile  string
	FeminineFile   string
	ExtraMasculine []string
	ExtraFeminine  []string
}

// Load builds a Coder from src.
func Load(src Sources) (*Coder, error) {
	m, err := loadOne("masculine", src.MasculineFile, DefaultMasculine)
	if err != nil {
		return nil, err
	}
	if m, err = m.With(src.ExtraMasculine); err != nil {
		return nil, err
	}

	f, err := loadOne("feminine", src.FeminineFile, DefaultFeminine)
	if err != nil {
		return nil, err
	}
	if f, err = f.With(src.ExtraFeminine); err != nil {
		return nil, err
	}

	return New(m, f)
}

func loadOne(name, path string, builtin func() (*Lexicon, error)) (*Lexicon, error) {
	if path == "" {
		return builtin()
	}
	return LoadLexiconFile(name, path)
}
