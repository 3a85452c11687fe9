package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"genderdecoder/internal/coder"
)

// JobAd is an analysed job advertisement as stored in the database.
type JobAd struct {
	ID                  uuid.UUID `json:"id"`
	Text                string    `json:"text"`
	MasculineWordCount  int       `json:"masculine_word_count"`
	FeminineWordCount   int       `json:"feminine_word_count"`
	MasculineCodedWords string    `json:"masculine_coded_words"`
	FeminineCodedWords  string    `json:"feminine_coded_words"`
	Coding              string    `json:"coding"`
	LexiconVersion      string    `json:"lexicon_version"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewJobAd builds an unsaved JobAd from an analysis.
func NewJobAd(r coder.Result, lexiconVersion string) *JobAd {
	ad := &JobAd{Text: r.Text}
	ad.Apply(r, lexiconVersion)
	return ad
}

// Apply overwrites the derived fields with r. Counts, word lists and coding
// always come from a single analysis.
func (a *JobAd) Apply(r coder.Result, lexiconVersion string) {
	a.MasculineWordCount = r.MasculineCount
	a.FeminineWordCount = r.FeminineCount
	a.MasculineCodedWords = r.MasculineCodedWords()
	a.FeminineCodedWords = r.FeminineCodedWords()
	a.Coding = string(r.Coding)
	a.LexiconVersion = lexiconVersion
}

// MasculineWords splits the stored masculine matches.
func (a *JobAd) MasculineWords() []string {
	return splitWords(a.MasculineCodedWords)
}

// FeminineWords splits the stored feminine matches.
func (a *JobAd) FeminineWords() []string {
	return splitWords(a.FeminineCodedWords)
}

// IsStale reports whether the ad was scored with a different lexicon.
func (a *JobAd) IsStale(lexiconVersion string) bool {
	return a.LexiconVersion != lexiconVersion
}

func splitWords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// CodingCount is the number of stored ads with a given coding.
type CodingCount struct {
	Coding string
	Count  int64
}
