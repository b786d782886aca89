package tfidf

import (
	"sort"

	"github.com/deanrtaylor1/docrank/lexer"
)

// Vocabulary is the set of reference terms every document is scored against,
// with their occurrence counts in the reference document. It is immutable once built.
type Vocabulary struct {
	counts lexer.TermFreq
	terms  []string
}

// NewVocabulary builds the vocabulary from the words of a single document
func NewVocabulary(document string) Vocabulary {
	return VocabularyFromTermFreq(lexer.Tokenize(document))
}

// VocabularyFromTermFreq copies tf so later changes to it do not leak into the vocabulary
func VocabularyFromTermFreq(tf lexer.TermFreq) Vocabulary {
	counts := make(lexer.TermFreq, len(tf))
	terms := make([]string, 0, len(tf))
	for term, freq := range tf {
		counts[term] = freq
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return Vocabulary{counts: counts, terms: terms}
}

// Terms returns the reference terms in sorted order
func (v Vocabulary) Terms() []string {
	terms := make([]string, len(v.terms))
	copy(terms, v.terms)
	return terms
}

func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Counts returns a copy of the term to count mapping
func (v Vocabulary) Counts() lexer.TermFreq {
	counts := make(lexer.TermFreq, len(v.counts))
	for term, freq := range v.counts {
		counts[term] = freq
	}
	return counts
}
