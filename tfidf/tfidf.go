package tfidf

import (
	"math"

	"github.com/deanrtaylor1/docrank/lexer"
)

// TermScores maps a reference term to a score for one document
type TermScores map[string]float64

// TFTable holds one TermScores per document, in input order
type TFTable []TermScores

// IDFTable maps a reference term to its inverse document frequency
type IDFTable map[string]float64

// TFIDFTable holds one TermScores per document, in input order
type TFIDFTable []TermScores

// Corpus is the word histogram of every document, in input order. Building it once
// lets TF and IDF share the histograms instead of re-tokenizing each document.
type Corpus []lexer.TermFreq

// NewCorpus tokenizes every document once, keeping input order
func NewCorpus(documents []string) Corpus {
	corpus := make(Corpus, len(documents))
	for i, doc := range documents {
		corpus[i] = lexer.Tokenize(doc)
	}
	return corpus
}

// ComputeTF computes the term frequency of every reference term in every document,
// tf(t,d) = freq(t,d) / |d| where |d| counts every word occurrence in d
func ComputeTF(vocab Vocabulary, corpus Corpus) (TFTable, error) {
	table := make(TFTable, 0, len(corpus))

	for i, doc := range corpus {
		n := doc.Total()
		if n == 0 {
			return nil, &EmptyDocumentError{Index: i}
		}

		scores := make(TermScores, vocab.Len())
		for _, term := range vocab.terms {
			scores[term] = ComputeTermTF(term, n, doc)
		}
		table = append(table, scores)
	}
	return table, nil
}

// ComputeTermTF returns the frequency of t among the n word occurrences of d
func ComputeTermTF(t string, n int, d lexer.TermFreq) float64 {
	if freq, ok := d[t]; ok {
		return float64(freq) / float64(n)
	}
	return 0
}

// ComputeIDF computes idf(t,D) = ln(|D| / |{d in D : t in d}|) for every reference term
func ComputeIDF(vocab Vocabulary, corpus Corpus) (IDFTable, error) {
	table := make(IDFTable, vocab.Len())

	for _, term := range vocab.terms {
		m := DocFreq(term, corpus)
		if m == 0 {
			return nil, &VocabularyTermAbsentEverywhereError{Term: term}
		}
		table[term] = math.Log(float64(len(corpus)) / float64(m))
	}
	return table, nil
}

// DocFreq counts the documents whose histogram contains t
func DocFreq(t string, corpus Corpus) int {
	m := 0
	for _, doc := range corpus {
		if _, ok := doc[t]; ok {
			m += 1
		}
	}
	return m
}

// ComputeTFIDF multiplies each document's term frequencies by the term's IDF
func ComputeTFIDF(vocab Vocabulary, tf TFTable, idf IDFTable) TFIDFTable {
	table := make(TFIDFTable, 0, len(tf))

	for _, doc := range tf {
		scores := make(TermScores, vocab.Len())
		for _, term := range vocab.terms {
			scores[term] = doc[term] * idf[term]
		}
		table = append(table, scores)
	}
	return table
}
