package models

import (
	"genderdecoder/internal/coder"
)

// AnalysisResponse is the JSON form of an analysis.
type AnalysisResponse struct {
	Text                string `json:"text"`
	Coding              string `json:"coding"`
	Explanation         string `json:"explanation"`
	MasculineWordCount  int    `json:"masculine_word_count"`
	FeminineWordCount   int    `json:"feminine_word_count"`
	MasculineCodedWords string `json:"masculine_coded_words"`
	FeminineCodedWords  string `json:"feminine_coded_words"`
}

// NewAnalysisResponse converts an analysis for the API.
func NewAnalysisResponse(r coder.Result, explanation string) AnalysisResponse {
	return AnalysisResponse{
		Text:                r.Text,
		Coding:              string(r.Coding),
		Explanation:         explanation,
		MasculineWordCount:  r.MasculineCount,
		FeminineWordCount:   r.FeminineCount,
		MasculineCodedWords: r.MasculineCodedWords(),
		FeminineCodedWords:  r.FeminineCodedWords(),
	}
}

// JobAdResponse is a stored ad together with its explanation.
type JobAdResponse struct {
	*JobAd
	Explanation string `json:"explanation"`
}

// LexiconResponse describes one word list.
type LexiconResponse struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Words   []string `json:"words"`
}

// LexiconsResponse describes both word lists.
type LexiconsResponse struct {
	Version   string          `json:"version"`
	Masculine LexiconResponse `json:"masculine"`
	Feminine  LexiconResponse `json:"feminine"`
}

// NewLexiconsResponse describes the lexicons a Coder uses.
func NewLexiconsResponse(c *coder.Coder) LexiconsResponse {
	return LexiconsResponse{
		Version:   c.Version(),
		Masculine: lexiconResponse(c.Masculine()),
		Feminine:  lexiconResponse(c.Feminine()),
	}
}

func lexiconResponse(l *coder.Lexicon) LexiconResponse {
	return LexiconResponse{Name: l.Name(), Version: l.Version(), Words: l.Words()}
}
