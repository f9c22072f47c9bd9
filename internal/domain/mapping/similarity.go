package mapping

// Similarity returns the Dice coefficient over character bigrams of two
// strings, in [0,1]. Callers pass already-normalized strings.
//
// The overlap is a membership filter, not a multiset intersection: every
// bigram of a that occurs anywhere in b counts, so repeated bigrams in a can
// each match the same bigram of b. Scores produced by earlier versions depend
// on this, so the filter semantics must not be tightened to a true set
// intersection.
func Similarity(a, b string) float64 {
	aGrams := bigrams(a)
	bGrams := bigrams(b)
	if len(aGrams) == 0 || len(bGrams) == 0 {
		return 0
	}

	inB := make(map[string]struct{}, len(bGrams))
	for _, g := range bGrams {
		inB[g] = struct{}{}
	}

	shared := 0
	for _, g := range aGrams {
		if _, ok := inB[g]; ok {
			shared++
		}
	}

	return 2 * float64(shared) / float64(len(aGrams)+len(bGrams))
}

// bigrams returns the overlapping 2-character substrings of s.
// Strings shorter than 2 characters have no bigrams.
func bigrams(s string) []string {
	if len(s) < 2 {
		return nil
	}
	grams := make([]string, 0, len(s)-1)
	for i := 0; i+2 <= len(s); i++ {
		grams = append(grams, s[i:i+2])
	}
	return grams
}
