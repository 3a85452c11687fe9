package models

import (
	"reflect"
	"testing"

	"genderdecoder/internal/coder"
)

func TestNewJobAd(t *testing.T) {
	c, err := coder.Default()
	if err != nil {
		t.Fatalf("coder.Default() error = %v", err)
	}
	text := "Ambition:competition–decisiveness, empathy&kindness"

	ad := NewJobAd(c.Analyse(text), c.Version())
	if ad.Text != text {
		t.Errorf("Text = %q, want %q", ad.Text, text)
	}
	if ad.Coding != string(coder.CodingMasculine) {
		t.Errorf("Coding = %q, want %q", ad.Coding, coder.CodingMasculine)
	}
	if ad.MasculineWordCount != 3 || ad.FeminineWordCount != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", ad.MasculineWordCount, ad.FeminineWordCount)
	}
	if got, want := ad.MasculineWords(), []string{"ambition", "competition", "decisiveness"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MasculineWords() = %q, want %q", got, want)
	}
	if got, want := ad.FeminineCodedWords, "empathy,kindness"; got != want {
		t.Errorf("FeminineCodedWords = %q, want %q", got, want)
	}
	if ad.IsStale(c.Version()) {
		t.Error("IsStale() = true for the version it was scored with")
	}
	if !ad.IsStale("older") {
		t.Error("IsStale() = false for a different version")
	}
}

func TestJobAd_Apply(t *testing.T) {
	ad := &JobAd{
		Text:                "lead",
		MasculineWordCount:  9,
		MasculineCodedWords: "stale",
		Coding:              string(coder.CodingStronglyMasculine),
		LexiconVersion:      "v1",
	}

	ad.Apply(coder.Result{Text: "lead", Coding: coder.CodingEmpty}, "v2")
	if ad.MasculineWordCount != 0 || ad.MasculineCodedWords != "" {
		t.Errorf("Apply() kept stale masculine data: %+v", ad)
	}
	if ad.Coding != string(coder.CodingEmpty) || ad.LexiconVersion != "v2" {
		t.Errorf("Apply() coding/version = %q/%q", ad.Coding, ad.LexiconVersion)
	}
	if ad.MasculineWords() != nil {
		t.Errorf("MasculineWords() = %q, want nil", ad.MasculineWords())
	}
}

func TestNewAnalysisResponse(t *testing.T) {
	r := coder.Result{
		Text:           "sharing versus aggression",
		MasculineWords: []string{"aggression"},
		FeminineWords:  []string{"sharing"},
		MasculineCount: 1,
		FeminineCount:  1,
		Coding:         coder.CodingNeutral,
	}

	resp := NewAnalysisResponse(r, "balanced")
	want := AnalysisResponse{
		Text:                "sharing versus aggression",
		Coding:              "neutral",
		Explanation:         "balanced",
		MasculineWordCount:  1,
		FeminineWordCount:   1,
		MasculineCodedWords: "aggression",
		FeminineCodedWords:  "sharing",
	}
	if resp != want {
		t.Errorf("NewAnalysisResponse() = %+v, want %+v", resp, want)
	}
}
