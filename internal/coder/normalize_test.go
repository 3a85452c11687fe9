package coder

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"mixed case", "Sharing is as important as ambition", []string{"sharing", "is", "as", "important", "as", "ambition"}},
		{"tab and colon", "Qualities: sharing\tambition", []string{"qualities", "sharing", "ambition"}},
		{"semicolon", "Sharing;ambitious", []string{"sharing", "ambitious"}},
		{"slash", "Sharing/ambitious", []string{"sharing", "ambitious"}},
		{"hyphen kept", "Sharing, co-operative", []string{"sharing", "co-operative"}},
		{"em dash", "Sharing—ambitious", []string{"sharing", "ambitious"}},
		{"en dash", "Ambition:competition–decisiveness", []string{"ambition", "competition", "decisiveness"}},
		{"bracket", "Sharing(ambitious", []string{"sharing", "ambitious"}},
		{"trailing space", "Sharing ambitious ", []string{"sharing", "ambitious"}},
		{"ampersand and trailing comma", "Sharing&ambitious, empathy&kindness,", []string{"sharing", "ambitious", "empathy", "kindness"}},
		{"sentence punctuation", "Are you driven? Apply now!", []string{"are", "you", "driven", "apply", "now"}},
		{"curly quotes", "“Trust” is ‘key’", []string{"trust", "is", "key"}},
		{"newlines", "lead\n\nthe\r\nteam", []string{"lead", "the", "team"}},
		{"duplicates kept", "lead, lead; LEAD", []string{"lead", "lead", "lead"}},
		{"non-ascii letters kept", "Équipe DYNAMIQUE", []string{"équipe", "dynamique"}},
		{"only separators", " ,;/&()–— ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalize_Empty(t *testing.T) {
	got := Normalize("")
	if got == nil || len(got) != 0 {
		t.Errorf("Normalize(\"\") = %#v, want empty non-nil slice", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Sharing is as important as ambition",
		"Ambition:competition–decisiveness&leadership, decisiveness, stubborness, sharing and empathy",
		"Sharing, co-operative\tteam (remote)",
		"",
	}

	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(strings.Join(first, " "))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, first, second)
		}
	}
}

func TestNormalize_HyphenNeverSplits(t *testing.T) {
	for _, w := range []string{"co-operative", "self-reliant", "well-known", "-leading", "trailing-"} {
		got := Normalize(w)
		if len(got) != 1 || got[0] != w {
			t.Errorf("Normalize(%q) = %q, want single token", w, got)
		}
	}
}
