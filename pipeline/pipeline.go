// Package pipeline runs the normalize, TF, IDF, TF-IDF and ranking stages over an
// ordered document set and reports the document most similar to the reference.
package pipeline

import (
	"fmt"

	"github.com/deanrtaylor1/docrank/rank"
	"github.com/deanrtaylor1/docrank/tfidf"
)

type Report struct {
	Reference   int
	Vocabulary  tfidf.Vocabulary
	TF          tfidf.TFTable
	IDF         tfidf.IDFTable
	TFIDF       tfidf.TFIDFTable
	Results     []rank.ResultsMap
	MostSimilar int
}

// BuildVocabulary derives the reference vocabulary from a single document
func BuildVocabulary(document string) tfidf.Vocabulary {
	return tfidf.NewVocabulary(document)
}

// RunPipeline scores documents against vocab and returns the 1-based position of the
// document most similar to the first one
func RunPipeline(vocab tfidf.Vocabulary, documents []string) (int, error) {
	report, err := run(vocab, documents, 0)
	if err != nil {
		return 0, err
	}
	return report.MostSimilar, nil
}

// Analyze builds the vocabulary from documents[reference] and returns every
// intermediate table along with the ranking
func Analyze(documents []string, reference int) (*Report, error) {
	if len(documents) < 2 {
		return nil, &tfidf.InsufficientDocumentsError{Count: len(documents)}
	}
	if reference < 0 || reference >= len(documents) {
		return nil, fmt.Errorf("reference document %d out of range [0,%d)", reference, len(documents))
	}
	return run(BuildVocabulary(documents[reference]), documents, reference)
}

func run(vocab tfidf.Vocabulary, documents []string, reference int) (*Report, error) {
	if len(documents) < 2 {
		return nil, &tfidf.InsufficientDocumentsError{Count: len(documents)}
	}

	corpus := tfidf.NewCorpus(documents)

	tf, err := tfidf.ComputeTF(vocab, corpus)
	if err != nil {
		return nil, fmt.Errorf("computing term frequencies: %w", err)
	}

	idf, err := tfidf.ComputeIDF(vocab, corpus)
	if err != nil {
		return nil, fmt.Errorf("computing inverse document frequencies: %w", err)
	}

	table := tfidf.ComputeTFIDF(vocab, tf, idf)

	mostSimilar, err := rank.MostSimilar(vocab, table, reference)
	if err != nil {
		return nil, fmt.Errorf("ranking documents: %w", err)
	}

	return &Report{
		Reference:   reference,
		Vocabulary:  vocab,
		TF:          tf,
		IDF:         idf,
		TFIDF:       table,
		Results:     rank.Scores(vocab, table, reference),
		MostSimilar: mostSimilar,
	}, nil
}
