// Package coder scores job advertisement text for gender-coded language.
//
// Text is normalised into lowercase words, matched against a masculine and a
// feminine lexicon, and the two match counts are turned into a Coding verdict.
// Everything here is pure; a Coder is safe for concurrent use.
package coder

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Coding is the verdict for a piece of text.
type Coding string

// Coding verdicts.
const (
	CodingEmpty             Coding = "empty"
	CodingNeutral           Coding = "neutral"
	CodingMasculine         Coding = "masculine-coded"
	CodingStronglyMasculine Coding = "strongly masculine-coded"
	CodingFeminine          Coding = "feminine-coded"
	CodingStronglyFeminine  Coding = "strongly feminine-coded"
)

// StrongThreshold is the count difference at which a coding becomes strong.
const StrongThreshold = 4

// Codings lists every verdict, most masculine first.
var Codings = []Coding{
	CodingStronglyMasculine,
	CodingMasculine,
	CodingNeutral,
	CodingEmpty,
	CodingFeminine,
	CodingStronglyFeminine,
}

// Valid reports whether c is one of the known verdicts.
func (c Coding) Valid() bool {
	for _, known := range Codings {
		if c == known {
			return true
		}
	}
	return false
}

// AssessCoding turns masculine and feminine match counts into a verdict.
func AssessCoding(masculine, feminine int) Coding {
	switch {
	case masculine == 0 && feminine == 0:
		return CodingEmpty
	case masculine == feminine:
		return CodingNeutral
	case masculine > feminine && masculine-feminine >= StrongThreshold:
		return CodingStronglyMasculine
	case masculine > feminine:
		return CodingMasculine
	case feminine-masculine >= StrongThreshold:
		return CodingStronglyFeminine
	default:
		return CodingFeminine
	}
}

// Coder holds the two lexicons used for scoring.
type Coder struct {
	masculine *Lexicon
	feminine  *Lexicon
	version   string
}

// New creates a Coder. The lexicons must not share a word.
func New(masculine, feminine *Lexicon) (*Coder, error) {
	if masculine == nil || feminine == nil {
		return nil, fmt.Errorf("coder: both lexicons are required")
	}
	for _, w := range masculine.words {
		if feminine.Contains(w) {
			return nil, fmt.Errorf("coder: %q is in both the %s and %s lexicons", w, masculine.Name(), feminine.Name())
		}
	}

	sum := sha256.Sum256([]byte(masculine.Version() + ":" + feminine.Version()))
	return &Coder{
		masculine: masculine,
		feminine:  feminine,
		version:   hex.EncodeToString(sum[:6]),
	}, nil
}

// Masculine returns the masculine lexicon.
func (c *Coder) Masculine() *Lexicon { return c.masculine }

// Feminine returns the feminine lexicon.
func (c *Coder) Feminine() *Lexicon { return c.feminine }

// Version identifies the lexicon pair. Results computed by Coders with the
// same version are identical.
func (c *Coder) Version() string { return c.version }

// Result is the analysis of one job ad. All fields are computed up front by
// Analyse.
type Result struct {
	Text           string
	Words          []string
	MasculineWords []string
	FeminineWords  []string
	MasculineCount int
	FeminineCount  int
	Coding         Coding
}

// Analyse scores text.
func (c *Coder) Analyse(text string) Result {
	words := Normalize(text)
	mc, mw := CountMatches(words, c.masculine)
	fc, fw := CountMatches(words, c.feminine)
	return Result{
		Text:           text,
		Words:          words,
		MasculineWords: mw,
		FeminineWords:  fw,
		MasculineCount: mc,
		FeminineCount:  fc,
		Coding:         AssessCoding(mc, fc),
	}
}

// MasculineCodedWords returns the masculine matches joined with commas.
func (r Result) MasculineCodedWords() string {
	return strings.Join(r.MasculineWords, ",")
}

// FeminineCodedWords returns the feminine matches joined with commas.
func (r Result) FeminineCodedWords() string {
	return strings.Join(r.FeminineWords, ",")
}
