package coder

var explanations = map[Coding]string{
	CodingEmpty: "This job ad doesn't use any words that are subtly coded as masculine or " +
		"feminine. It probably won't be off-putting to men or women applicants.",
	CodingNeutral: "This job ad uses an equal number of words that are subtly coded as " +
		"masculine and feminine. It probably won't be off-putting to men or women applicants.",
	CodingMasculine: "This job ad uses more words that are subtly coded as masculine than " +
		"words that are subtly coded as feminine. It risks putting women off applying, but " +
		"will probably encourage men to apply.",
	CodingStronglyMasculine: "This job ad uses a lot more words that are subtly coded as " +
		"masculine than words that are subtly coded as feminine. It risks putting women off " +
		"applying, but will probably encourage men to apply.",
	CodingFeminine: "This job ad uses more words that are subtly coded as feminine than words " +
		"that are subtly coded as masculine. It will probably encourage women to apply, and " +
		"research suggests it won't put men off.",
	CodingStronglyFeminine: "This job ad uses a lot more words that are subtly coded as " +
		"feminine than words that are subtly coded as masculine. It will probably encourage " +
		"women to apply, and research suggests it won't put men off.",
}

// Explanation returns a short reader-facing description of c.
func Explanation(c Coding) string {
	return explanations[c]
}
